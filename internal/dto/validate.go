package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct against its validate tags.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
