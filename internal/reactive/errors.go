package reactive

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when an operation needs a collection path
	// and the store has none.
	ErrConfiguration = errors.New("collection path is not configured")

	// ErrState is returned when a write is attempted before the mirror has
	// been synchronized at least once.
	ErrState = errors.New("collection is not synchronized")

	// ErrRemote matches every *RemoteError with errors.Is.
	ErrRemote = errors.New("remote collection request failed")
)

// RemoteError wraps a failed request: transport failure, non-2xx status or
// an undecodable body.
type RemoteError struct {
	Op   string
	Path string
	Err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrRemote so callers need not know the concrete type.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
