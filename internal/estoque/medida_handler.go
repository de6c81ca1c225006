package estoque

import (
	"fmt"
	"strings"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/audit"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/validacao"

	"github.com/gofiber/fiber/v2"
)

type MedidaResponse struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Sigla string `json:"sigla"`
}

type CreateMedidaRequest struct {
	Nome  string `json:"nome" validate:"required,min=1,max=50"`
	Sigla string `json:"sigla" validate:"required,min=1,max=10"`
}

// GET /api/medidas
func ListMedidasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var medidas []models.Medida
		if err := database.DB.Order("nome asc").Find(&medidas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar medidas")
		}

		res := make([]MedidaResponse, 0, len(medidas))
		for _, m := range medidas {
			res = append(res, MedidaResponse{ID: m.ID, Nome: m.Nome, Sigla: m.Sigla})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/medidas (somente admin)
func CreateMedidaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMedidaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		body.Sigla = strings.TrimSpace(body.Sigla)

		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		m := models.Medida{Nome: body.Nome, Sigla: body.Sigla}
		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar medida")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "medida",
				EntidadeID:  m.ID,
				Acao:        models.AuditCriar,
				Descricao:   fmt.Sprintf("Medida criada: %s (%s)", m.Nome, m.Sigla),
				Depois:      m,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(MedidaResponse{ID: m.ID, Nome: m.Nome, Sigla: m.Sigla})
	}
}

// DELETE /api/admin/medidas/:id
func DeleteMedidaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var m models.Medida
		if err := database.DB.First(&m, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Medida não encontrada")
		}

		// Medida em uso não pode sair
		var emUso int64
		database.DB.Model(&models.Produto{}).Where("medida_id = ?", m.ID).Count(&emUso)
		if emUso > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Medida em uso por produtos")
		}

		if err := database.DB.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir medida")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "medida",
				EntidadeID:  m.ID,
				Acao:        models.AuditExcluir,
				Descricao:   fmt.Sprintf("Medida excluída: %s (%s)", m.Nome, m.Sigla),
				Antes:       m,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
