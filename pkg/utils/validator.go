package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps go-playground/validator for request structs.
type RequestValidator struct {
	validate *validator.Validate
}

var (
	validatorOnce     sync.Once
	validatorInstance *RequestValidator
)

// GetValidator returns the process-wide validator.
func GetValidator() *RequestValidator {
	validatorOnce.Do(func() {
		validatorInstance = &RequestValidator{validate: validator.New()}
	})
	return validatorInstance
}

// Validate checks struct tags and returns the first validation error.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
