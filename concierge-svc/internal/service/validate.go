package service

import (
	"fmt"

	"hotel-concierge/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInput, err)
	}
	return nil
}
