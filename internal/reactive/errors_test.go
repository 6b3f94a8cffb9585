package reactive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RemoteError{Op: "fetch all", Path: "api/accounts", Err: cause}

	assert.Equal(t, "fetch all api/accounts: connection refused", err.Error())
	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrState)
}
