package auth

import (
	"errors"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/config"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RegistrarPrimeiroAdminRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// POST /api/auth/registrar-primeiro-admin
// Só funciona enquanto nenhum usuário admin existir.
func RegistrarPrimeiroAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegistrarPrimeiroAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = NormalizarEmail(body.Email)
		body.Senha = NormalizarSenha(body.Senha)

		if body.Email == "" || body.Senha == "" || body.Nome == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome, email e senha são obrigatórios")
		}

		var cargoAdmin models.Cargo
		if err := database.DB.Where("nome = ?", models.CargoAdmin).First(&cargoAdmin).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Cargo admin não encontrado")
		}

		var count int64
		database.DB.Model(&models.Usuario{}).
			Where("cargo_id = ?", cargoAdmin.ID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "Já existe um administrador cadastrado")
		}

		hash, err := GerarHash(body.Senha)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
		}

		usuario := models.Usuario{
			Nome:    body.Nome,
			Email:   body.Email,
			Senha:   hash,
			CargoID: &cargoAdmin.ID,
		}

		if err := database.DB.Create(&usuario).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar usuário")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    usuario.ID,
			"email": usuario.Email,
			"cargo": models.CargoAdmin,
		})
	}
}

// POST /api/auth/login
// Qualquer falha de credencial (usuário inexistente ou senha errada)
// responde a mesma mensagem genérica; só falha de conexão vira 500.
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = NormalizarEmail(body.Email)
		body.Senha = NormalizarSenha(body.Senha)

		var usuario models.Usuario
		if err := database.DB.Preload("Cargo").Where("email = ?", body.Email).First(&usuario).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro de conexão com o banco")
		}

		if !VerificarSenha(usuario.Senha, body.Senha) {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}

		// Migração silenciosa: senha legada em texto puro vira hash
		// no primeiro login bem-sucedido.
		if !SenhaEHash(usuario.Senha) {
			if hash, err := GerarHash(body.Senha); err == nil {
				if err := database.DB.Model(&usuario).Update("senha", hash).Error; err != nil {
					zap.L().Warn("migração de senha falhou",
						zap.Uint("usuario_id", usuario.ID),
						zap.Error(err),
					)
				}
			}
		}

		cargo := ""
		if usuario.Cargo != nil {
			cargo = usuario.Cargo.Nome
		}

		token, err := GenerateToken(cfg.JWTSecret, &usuario, cargo)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    usuario.ID,
				"nome":  usuario.Nome,
				"email": usuario.Email,
				"cargo": cargo,
			},
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		usuarioID, ok := c.Locals(CtxUsuarioIDKey).(uint)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida")
		}

		var usuario models.Usuario
		if err := database.DB.Preload("Cargo").First(&usuario, usuarioID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida")
		}

		cargo := ""
		if usuario.Cargo != nil {
			cargo = usuario.Cargo.Nome
		}

		return c.JSON(fiber.Map{
			"id":    usuario.ID,
			"nome":  usuario.Nome,
			"email": usuario.Email,
			"cargo": cargo,
		})
	}
}
