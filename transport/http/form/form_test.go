package form_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"tourdesk/shared/failure"
	"tourdesk/transport/http/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, fields map[string]string, file string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if file != "" {
		part, err := writer.CreateFormFile(file, "thumb.png")
		require.NoError(t, err)

		_, err = part.Write([]byte("png"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestParse(t *testing.T) {
	req := multipartRequest(t, map[string]string{
		"title":       " Ha Long Bay ",
		"day":         "3",
		"price_adult": "4500000",
		"is_active":   "false",
		"description": "",
	}, "thumbnail")

	values, err := form.Parse(req)
	require.NoError(t, err)

	assert.Equal(t, "Ha Long Bay", values.String("title"))
	assert.Equal(t, 3, values.Int("day"))
	assert.Nil(t, values.IntPtr("night"))
	assert.InDelta(t, 4500000, *values.FloatPtr("price_adult"), 0.001)
	assert.False(t, *values.BoolPtr("is_active"))

	description := values.StringPtr("description")
	require.NotNil(t, description)
	assert.Empty(t, *description)
	assert.Nil(t, values.StringPtr("note"))

	file, header, err := values.File("thumbnail")
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, "thumb.png", header.Filename)

	file, header, err = values.File("icon")
	assert.NoError(t, err)
	assert.Nil(t, file)
	assert.Nil(t, header)
}

func TestParse_RejectsJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	_, err := form.Parse(req)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
