package reactive

import (
	"errors"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

// Config carries the per-store settings. Sinks are optional; nil sinks
// discard their events.
type Config[T any] struct {
	// Path is the collection resource path, e.g. "accounts".
	Path string
	// APIPrefix is the API root the path is normalized against, e.g. "api".
	APIPrefix string
	// OnError receives every failure exactly once before it is returned.
	OnError func(error)
	// OnInfo receives read/add/edit/delete events with the affected entity.
	OnInfo func(op models.Operation, entity T)
}

// LogSinks returns error and info sinks writing to log.
func LogSinks[T models.Entity[T]](log *logger.Logger) (onError func(error), onInfo func(models.Operation, T)) {
	onError = func(err error) {
		event := log.Error().Err(err)

		var remoteErr *RemoteError
		if errors.As(err, &remoteErr) {
			event = event.Str("op", remoteErr.Op).Str("path", remoteErr.Path)
		}

		event.Msg("collection operation failed")
	}

	onInfo = func(op models.Operation, entity T) {
		log.Info().
			Str("op", op.String()).
			Int64("id", entity.EntityID()).
			Msg("collection changed")
	}

	return onError, onInfo
}
