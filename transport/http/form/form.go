// Package form reads multipart request fields into the optional types the
// request DTOs use.
package form

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	"tourdesk/shared/failure"
)

type Values struct {
	request *http.Request
}

// Parse accepts multipart and urlencoded bodies.
func Parse(r *http.Request) (Values, error) {
	contentType := r.Header.Get(constant.RequestHeaderContentType)

	switch {
	case strings.HasPrefix(contentType, constant.ContentTypeMultipartFormData):
		if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			return Values{}, failure.BadRequest(err)
		}
	case strings.HasPrefix(contentType, constant.ContentTypeFormURLEncoded):
		if err := r.ParseForm(); err != nil {
			return Values{}, failure.BadRequest(err)
		}
	default:
		return Values{}, failure.BadRequestFromString("request must be multipart/form-data")
	}

	return Values{request: r}, nil
}

func (v Values) has(key string) bool {
	if _, ok := v.request.Form[key]; ok {
		return true
	}

	if v.request.MultipartForm != nil {
		_, ok := v.request.MultipartForm.Value[key]

		return ok
	}

	return false
}

func (v Values) String(key string) string {
	return strings.TrimSpace(v.request.FormValue(key))
}

// StringPtr is nil when the field was not sent, so an explicit empty value
// still clears the column.
func (v Values) StringPtr(key string) *string {
	if !v.has(key) {
		return nil
	}

	value := v.String(key)

	return &value
}

func (v Values) Int(key string) int {
	if value := shared.ConvertStringToIntPtr(v.String(key)); value != nil {
		return *value
	}

	return 0
}

func (v Values) IntPtr(key string) *int {
	return shared.ConvertStringToIntPtr(v.String(key))
}

func (v Values) FloatPtr(key string) *float64 {
	return shared.ConvertStringToFloatPtr(v.String(key))
}

func (v Values) BoolPtr(key string) *bool {
	return shared.ConvertStringToBool(v.String(key))
}

// File returns nil values when no file was attached under key.
func (v Values) File(key string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := v.request.FormFile(key)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}

	if err != nil {
		return nil, nil, failure.BadRequest(err)
	}

	return file, header, nil
}
