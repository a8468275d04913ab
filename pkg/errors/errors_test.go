package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/skymentor/skymentor-client/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_UnwrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"not found", http.StatusNotFound, errors.ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, errors.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, errors.ErrAccessDenied},
		{"conflict", http.StatusConflict, errors.ErrConflict},
		{"bad request", http.StatusBadRequest, errors.ErrInvalidInput},
		{"server error", http.StatusBadGateway, errors.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.NewAPIError(tt.status, http.StatusText(tt.status), "/api/v1/mentor/getMentorById/x1")
			assert.True(t, stderrors.Is(err, tt.sentinel))
		})
	}
}

func TestAPIError_Message(t *testing.T) {
	err := errors.NewAPIError(404, "Not Found", "/api/v1/mentor/getMentorById/x1")
	assert.Contains(t, err.Error(), "404 Not Found")
	assert.Contains(t, err.Error(), "/api/v1/mentor/getMentorById/x1")
}

func TestAPIError_UnmappedStatus(t *testing.T) {
	err := errors.NewAPIError(http.StatusTeapot, "I'm a teapot", "/tea")
	assert.False(t, stderrors.Is(err, errors.ErrNotFound))
	assert.False(t, stderrors.Is(err, errors.ErrInternal))
}

func TestDecodeError_Unwrap(t *testing.T) {
	cause := stderrors.New("missing field id")
	err := errors.NewDecodeError("/api/v1/mentee/loginMentee", cause)
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "/api/v1/mentee/loginMentee")
}

func TestNotFoundError(t *testing.T) {
	err := errors.NotFoundError("mentor")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Equal(t, "mentor not found", err.Error())
}
