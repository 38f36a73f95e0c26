package usecase

import (
	"strings"

	"hirerevops-backend/pkg/apperror"
	"hirerevops-backend/pkg/validation"
)

// invalidInput converts validator failures into a 400 with one readable
// message per offending field.
func invalidInput(err error) *apperror.AppError {
	return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
}
