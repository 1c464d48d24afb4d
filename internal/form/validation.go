package form

import (
	"github.com/go-playground/validator/v10"
)

// NewValidator создает валидатор с правилами для формы сообщения об опасности
func NewValidator() *validator.Validate {
	validate := validator.New()
	RegisterValidations(validate)
	return validate
}

func RegisterValidations(validate *validator.Validate) {
	_ = validate.RegisterValidation("hazard_type", func(fl validator.FieldLevel) bool {
		return IsHazardType(fl.Field().String())
	})
	_ = validate.RegisterValidation("severity", func(fl validator.FieldLevel) bool {
		return IsSeverity(fl.Field().String())
	})
	_ = validate.RegisterValidation("decimal_latitude", func(fl validator.FieldLevel) bool {
		_, err := parseCoordinate(fl.Field().String(), 90)
		return err == nil
	})
	_ = validate.RegisterValidation("decimal_longitude", func(fl validator.FieldLevel) bool {
		_, err := parseCoordinate(fl.Field().String(), 180)
		return err == nil
	})
}
