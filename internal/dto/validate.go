package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a request DTO against its validate tags. Invalid user
// input is a caller error surfaced as 400, never a pipeline failure.
func Validate(s any) error {
	return validate.Struct(s)
}
