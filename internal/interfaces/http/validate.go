package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; los nombres de campo en los mensajes salen
// del tag json o form del DTO.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// validateStruct corre las reglas del DTO y devuelve errores por campo.
// nil cuando la entrada es válida.
func validateStruct(in any) map[string]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = "entrada inválida"
		return fields
	}
	for _, fe := range verrs {
		fields[fe.Field()] = mensajePara(fe)
	}
	return fields
}

func mensajePara(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "el campo es requerido"
	case "min":
		return "valor por debajo del mínimo (" + fe.Param() + ")"
	case "max":
		return "valor por encima del máximo (" + fe.Param() + ")"
	case "eqfield":
		return "la confirmación no coincide"
	case "datetime":
		return "fecha inválida, formato esperado " + fe.Param()
	default:
		return "valor inválido"
	}
}
