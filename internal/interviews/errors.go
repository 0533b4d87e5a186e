package interviews

import "errors"

var (
	ErrValidation = errors.New("validation failed")
)
