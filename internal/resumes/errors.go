package resumes

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrNoText     = errors.New("no extractable text")
	ErrUnreadable = errors.New("unreadable pdf")
	ErrNotFound   = errors.New("not found")
)
