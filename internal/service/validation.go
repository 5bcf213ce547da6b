package service

import (
	"errors"
	"fmt"

	"go-medisales-api/pkg/validator"
)

// ErrValidation marks request-shape failures so handlers can map them to
// 400 instead of treating them like persistence errors.
var ErrValidation = errors.New("validation failed")

func validationError(errs []*validator.ErrorResponse) error {
	firstErr := errs[0]
	return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
}
