package validator_test

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourdesk/shared/failure"
	"tourdesk/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Age      int    `validate:"gte=0,lte=120" json:"age"`
	Category string `validate:"oneof=user admin guest" json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        interface{}
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      150,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "invalid",
			},
			expectError: true,
		},
		{
			name: "negative age",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      -1,
				Category: "user",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct[ValidTestStruct](tt.data.(*ValidTestStruct))

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "admin",
			tag:         "oneof=user admin guest",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "invalid",
			tag:         "oneof=user admin guest",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","age":25,"category":"user"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","age":25,"category":"user"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data ValidTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

// Test custom validation messages
func TestValidationMessages(t *testing.T) {
	validator.SetLocale("en")
	defer validator.SetLocale("vi")

	data := &ValidTestStruct{}
	err := validator.ValidateStruct[ValidTestStruct](data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	// Check that error message contains field name and is descriptive
	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}

type paymentUpload struct {
	Receipt *multipart.FileHeader `json:"receipt" validate:"omitempty,mimetypes=image/png application/pdf,maxfilesize=1"`
}

func upload(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{Filename: "receipt", Header: header, Size: size}
}

func TestFileValidation(t *testing.T) {
	validator.SetLocale("vi")

	tests := []struct {
		name    string
		receipt *multipart.FileHeader
		wantMsg string
	}{
		{name: "no file", receipt: nil},
		{name: "pdf within limit", receipt: upload("application/pdf", 512*1024)},
		{name: "content type with parameters", receipt: upload("image/PNG; charset=binary", 1024)},
		{name: "exactly the limit", receipt: upload("image/png", 1024*1024)},
		{name: "gif rejected", receipt: upload("image/gif", 1024), wantMsg: "receipt chỉ chấp nhận định dạng image/png application/pdf"},
		{name: "too large", receipt: upload("application/pdf", 1024*1024+1), wantMsg: "receipt không được lớn hơn 1 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&paymentUpload{Receipt: tt.receipt})

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, failure.GetFields(err)["receipt"])
		})
	}
}

// Test validation error handling
func TestValidationErrorHandling(t *testing.T) {
	// Test with multiple validation errors
	data := &ValidTestStruct{
		Name:     "",        // required violation
		Email:    "invalid", // email violation
		Age:      -1,        // gte violation
		Category: "invalid", // oneof violation
	}

	err := validator.ValidateStruct[ValidTestStruct](data)
	if err == nil {
		t.Fatal("expected validation error")
	}

	// The error should be descriptive and contain information about the failure
	errorMsg := err.Error()
	if errorMsg == "" {
		t.Error("expected non-empty error message")
	}

	t.Logf("Error message: %s", errorMsg)
}

// Test that the validator package initializes correctly
func TestValidatorInitialization(t *testing.T) {
	// Test that we can validate basic structs without panic
	// This indirectly tests that the init() function worked correctly
	data := &ValidTestStruct{
		Name:     "Test",
		Email:    "test@example.com",
		Age:      25,
		Category: "user",
	}

	err := validator.ValidateStruct[ValidTestStruct](data)
	if err != nil {
		t.Errorf("expected no validation error for valid struct, got: %v", err)
	}
}

type status int

func (s status) Valid() bool {
	return s >= 0 && s <= 3
}

type passenger struct {
	Fullname string `json:"fullname" validate:"required,max=255"`
	Type     status `json:"type"     validate:"enum"`
}

type bookingRequest struct {
	ClientName string      `json:"client_name" validate:"required"`
	Status     status      `json:"status"      validate:"enum"`
	Passengers []passenger `json:"passengers"  validate:"dive"`
}

func TestValidateStructFields(t *testing.T) {
	validator.SetLocale("vi")

	err := validator.ValidateStruct(&bookingRequest{
		Status:     7,
		Passengers: []passenger{{Fullname: "Nguyễn Văn An"}, {Type: 9}},
	})
	require.Error(t, err)

	var fail *failure.Failure
	require.True(t, errors.As(err, &fail))

	assert.Equal(t, "client_name là bắt buộc", fail.Fields["client_name"])
	assert.Equal(t, "status không hợp lệ", fail.Fields["status"])
	assert.Contains(t, fail.Fields, "passengers[1].fullname")
	assert.Contains(t, fail.Fields, "passengers[1].type")
	assert.NotContains(t, fail.Fields, "passengers[0].fullname")
	assert.Equal(t, fail.Message, fail.Fields["client_name"])
}

func TestValidateStructEnglishLocale(t *testing.T) {
	validator.SetLocale("en")
	defer validator.SetLocale("vi")

	err := validator.ValidateStruct(&bookingRequest{Status: 1})
	require.Error(t, err)

	assert.Equal(t, "client_name is required", err.Error())
}

func TestEnumValidation(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&bookingRequest{ClientName: "Trần Thị Bình", Status: 0}))
	assert.Error(t, validator.ValidateStruct(&bookingRequest{ClientName: "Trần Thị Bình", Status: -1}))
}
