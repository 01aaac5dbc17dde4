package validator

import (
	"errors"
	"strings"

	"tourdesk/shared/constant"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]map[string]string{
		constant.LocaleEnglish: {
			"required":    "{field} is required",
			"required_if": "{field} is required",
			"gt":          "{field} must be greater than {param}",
			"gte":         "{field} must be greater than or equal to {param}",
			"lte":         "{field} must be less than or equal to {param}",
			"gtefield":    "{field} must be greater than or equal to {param}",
			"oneof":       "{field} must be one of {param}",
			"max":         "{field} must be less than or equal to {param}",
			"min":         "{field} must be greater than or equal to {param}",
			"email":       "{field} must be a valid email address",
			"uuid":        "{field} must be a valid UUID",
			"datetime":    "{field} must match the format {param}",
			"mimetypes":   "{field} must be one of the types {param}",
			"maxfilesize": "{field} must not be larger than {param} MB",
			"enum":        "{field} is not a valid value",
			"dive":        "{field} is invalid",
		},
		constant.LocaleVietnamese: {
			"required":    "{field} là bắt buộc",
			"required_if": "{field} là bắt buộc",
			"gt":          "{field} phải lớn hơn {param}",
			"gte":         "{field} phải lớn hơn hoặc bằng {param}",
			"lte":         "{field} phải nhỏ hơn hoặc bằng {param}",
			"gtefield":    "{field} phải lớn hơn hoặc bằng {param}",
			"oneof":       "{field} phải là một trong các giá trị: {param}",
			"max":         "{field} không được vượt quá {param}",
			"min":         "{field} phải tối thiểu {param}",
			"email":       "{field} phải là địa chỉ email hợp lệ",
			"uuid":        "{field} phải là mã UUID hợp lệ",
			"datetime":    "{field} phải theo định dạng {param}",
			"mimetypes":   "{field} chỉ chấp nhận định dạng {param}",
			"maxfilesize": "{field} không được lớn hơn {param} MB",
			"enum":        "{field} không hợp lệ",
			"dive":        "{field} không hợp lệ",
		},
	}
)

func catalog(locale string) map[string]string {
	if msgs, ok := messages[locale]; ok {
		return msgs
	}

	return messages[constant.LocaleVietnamese]
}

// fieldKey strips the root struct name so nested errors read "passengers[0].fullname".
func fieldKey(valErr val.FieldError) string {
	namespace := valErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return valErr.Field()
}

func translate(valErr val.FieldError, locale string) string {
	errStr := catalog(locale)[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

// message returns the first translated message plus every failing field keyed by its json path.
func message(err error, locale string) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error(), nil
	}

	first := constant.Empty
	fields := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		msg := translate(valErr, locale)

		if first == constant.Empty {
			first = msg
		}

		key := fieldKey(valErr)
		if _, exists := fields[key]; !exists {
			fields[key] = msg
		}
	}

	return first, fields
}
