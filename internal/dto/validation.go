package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

// RegisterCustomValidations adds the application's custom binding tags to the
// validator engine. Must run before any request binding.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("attendance_state", func(fl validator.FieldLevel) bool {
		return domain.AttendanceState(fl.Field().String()).IsValid()
	})
}
