package auth

import (
	"fmt"
	"strings"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUsuarioIDKey   = "usuario_id"
	CtxUsuarioNomeKey = "usuario_nome"
	CtxCargoKey       = "cargo"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Header Authorization ausente")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Formato deve ser 'Bearer <token>'")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inválido")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido ou expirado")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token não pôde ser decodificado")
		}

		c.Locals(CtxUsuarioIDKey, claims.UsuarioID)
		c.Locals(CtxCargoKey, claims.Cargo)

		return c.Next()
	}
}

// RequireCargo barra o acesso de quem não tem um dos papéis exigidos.
// O painel redireciona; a API responde 403.
func RequireCargo(permitidos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cargo, ok := c.Locals(CtxCargoKey).(string)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Cargo não identificado")
		}

		for _, p := range permitidos {
			if p == cargo {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Você não tem permissão para esta operação")
	}
}
