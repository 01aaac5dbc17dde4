package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"tourdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("invalid date")), wantCode: http.StatusBadRequest, wantMsg: "invalid date"},
		{name: "bad request from string", err: failure.BadRequestFromString("departure date is required"), wantCode: http.StatusBadRequest, wantMsg: "departure date is required"},
		{name: "unauthorized", err: failure.Unauthorized("Token has expired"), wantCode: http.StatusUnauthorized, wantMsg: "Token has expired"},
		{name: "forbidden", err: failure.Forbidden("guide can only edit own trips"), wantCode: http.StatusForbidden, wantMsg: "guide can only edit own trips"},
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound, wantMsg: "booking not found"},
		{name: "conflict", err: failure.Conflict("tour instance is full"), wantCode: http.StatusConflict, wantMsg: "tour instance is full"},
		{name: "internal", err: failure.InternalError(errors.New("db down")), wantCode: http.StatusInternalServerError, wantMsg: "db down"},
		{name: "forbidden sentinel", err: failure.ForbiddenError, wantCode: http.StatusForbidden, wantMsg: "You don't have the required permissions"},
		{name: "invalid page", err: failure.InvalidPageParam, wantCode: http.StatusBadRequest, wantMsg: "invalid page parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestValidation(t *testing.T) {
	err := failure.Validation("validation failed", map[string]string{"email": "email is required"})

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, map[string]string{"email": "email is required"}, failure.GetFields(err))
}

func TestGetCodeAndFields_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", failure.Conflict("booking code already exists"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	assert.Nil(t, failure.GetFields(wrapped))

	plain := errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(plain))
	assert.Nil(t, failure.GetFields(plain))
}
