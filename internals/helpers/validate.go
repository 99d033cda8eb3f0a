package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validate aplica as tags `validate:` do DTO e responde 422 com erros por campo.
// Retorna nil quando o struct é válido.
func Validate(c *fiber.Ctx, s any) error {
	if err := validate.Struct(s); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return JsonError(c, fiber.StatusBadRequest, "Payload inválido")
		}
		fieldErrors := make(map[string][]string, len(ve))
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
		}
		return JsonValidationError(c, fieldErrors)
	}
	return nil
}
