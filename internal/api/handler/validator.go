package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pjecz/hercules-api-key/internal/core/safe"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Besides the built-in tags it understands "clave", a catalog code. Fields
// are reported by their query parameter name.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("query"), ","); name != "" {
			return name
		}
		return f.Name
	})
	_ = v.RegisterValidation("clave", func(fl validator.FieldLevel) bool {
		_, err := safe.Clave(fl.Field().String())
		return err == nil
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a message shown to API
// clients.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "Falta el parámetro " + field
	case "gte":
		return fmt.Sprintf("El parámetro %s debe ser mayor o igual a %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("El parámetro %s debe ser menor o igual a %s", field, fe.Param())
	case "clave":
		return fmt.Sprintf("Es inválida la clave en %s", field)
	default:
		return fmt.Sprintf("Es inválido el parámetro %s (%s)", field, fe.Tag())
	}
}
