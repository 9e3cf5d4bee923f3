package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/catalog-admin/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Los errores se reportan con el nombre del campo del formulario.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
	})
	return validate
}

// validateStruct ejecuta las reglas `validate` del formulario y acumula los errores por campo.
func validateStruct(form interface{}) *domain.ValidationError {
	ve := &domain.ValidationError{}
	err := validatorInstance().Struct(form)
	if err == nil {
		return ve
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Add("__all__", err.Error())
		return ve
	}
	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), messageFor(fe))
	}
	return ve
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "este campo es obligatorio"
	case "max":
		return "máximo " + fe.Param() + " caracteres"
	case "min":
		return "mínimo " + fe.Param() + " caracteres"
	case "email":
		return "introduzca un email válido"
	case "numeric", "number":
		return "introduzca un número"
	case "username":
		return "solo letras, dígitos y @/./+/-/_"
	default:
		return "valor inválido"
	}
}

// ErrorResponse cuerpo de error para clientes que piden JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
