// Package validacao centraliza a validação síncrona dos formulários.
// Erros saem com a chave do campo e nunca chegam ao banco.
package validacao

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validar roda as tags de validação e devolve um mapa campo -> mensagem.
// Mapa vazio significa formulário válido.
func Validar(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	erros := make(map[string]string)
	valErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		erros["_geral"] = "Dados inválidos"
		return erros
	}

	for _, fe := range valErrs {
		campo := strings.ToLower(fe.Field())
		erros[campo] = mensagem(fe)
	}
	return erros
}

// Responder envia o mapa de erros como 422, no formato que o painel
// renderiza embaixo de cada campo.
func Responder(c *fiber.Ctx, erros map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"erros": erros})
}

func mensagem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "Email inválido"
	case "gt":
		return fmt.Sprintf("Deve ser maior que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Deve ser maior ou igual a %s", fe.Param())
	case "min":
		return fmt.Sprintf("Mínimo de %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("Máximo de %s caracteres", fe.Param())
	case "oneof":
		return fmt.Sprintf("Valor deve ser um de: %s", fe.Param())
	default:
		return "Valor inválido"
	}
}
