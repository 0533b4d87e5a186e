package resumes

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	mimePDF     = "application/pdf"
	MaxFileSize = 10 << 20 // 10MB
)

type upload struct {
	FileName    string `validate:"required"`
	ContentType string `validate:"required,oneof=application/pdf"`
	Size        int64  `validate:"gt=0,lte=10485760"`
}

var validate = validator.New()

// Validate checks an upload before anything is stored or sent to the model.
func Validate(fileName, contentType string, size int64) error {
	in := upload{
		FileName:    strings.TrimSpace(fileName),
		ContentType: normalizeContentType(contentType),
		Size:        size,
	}
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return fmt.Errorf("%w: %s", ErrValidation, message(verrs[0]))
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "FileName":
		return "file name is required"
	case "ContentType":
		return "Only PDF files are supported"
	case "Size":
		if fe.Tag() == "gt" {
			return "file is empty"
		}
		return "File size must be less than 10MB"
	default:
		return fe.Error()
	}
}

// detectContentType prefers the declared type and sniffs the payload when the
// client sent nothing useful.
func detectContentType(declared string, data []byte) string {
	ct := normalizeContentType(declared)
	if ct != "" && ct != "application/octet-stream" {
		return ct
	}
	return normalizeContentType(http.DetectContentType(data))
}

func normalizeContentType(raw string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(raw, ";")[0]))
}
