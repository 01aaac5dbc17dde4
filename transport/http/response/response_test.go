package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourdesk/shared/failure"
	"tourdesk/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantFields bool
	}{
		{
			name:     "plain error is internal",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "not found failure",
			err:      failure.NotFound("booking not found"),
			wantCode: http.StatusNotFound,
		},
		{
			name:       "validation failure carries fields",
			err:        failure.Validation("name is required", map[string]string{"name": "name is required"}),
			wantCode:   http.StatusBadRequest,
			wantFields: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.err.Error(), *body.Error)
			assert.Equal(t, tt.wantFields, len(body.Fields) > 0)
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]int{"total": 2})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"total":2}}`, rec.Body.String())
}

func TestWithFile(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithFile(rec, "application/pdf", "manifest.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "manifest.pdf")
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}
