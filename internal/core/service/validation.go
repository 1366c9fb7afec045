package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
)

var validate = validator.New()

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
