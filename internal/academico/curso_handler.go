// Package academico cuida dos cadastros de cursos e turmas.
package academico

import (
	"fmt"
	"strings"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/audit"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/validacao"

	"github.com/gofiber/fiber/v2"
)

type CursoResponse struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

type CreateCursoRequest struct {
	Nome string `json:"nome" validate:"required,min=2,max=100"`
}

// GET /api/cursos
func ListCursosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cursos []models.Curso
		if err := database.DB.Order("nome asc").Find(&cursos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar cursos")
		}

		res := make([]CursoResponse, 0, len(cursos))
		for _, cu := range cursos {
			res = append(res, CursoResponse{ID: cu.ID, Nome: cu.Nome})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/cursos
func CreateCursoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCursoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		curso := models.Curso{Nome: body.Nome}
		if err := database.DB.Create(&curso).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar curso")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "curso",
				EntidadeID:  curso.ID,
				Acao:        models.AuditCriar,
				Descricao:   fmt.Sprintf("Curso criado: %s", curso.Nome),
				Depois:      curso,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(CursoResponse{ID: curso.ID, Nome: curso.Nome})
	}
}

// PUT /api/admin/cursos/:id
func UpdateCursoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var curso models.Curso
		if err := database.DB.First(&curso, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Curso não encontrado")
		}

		var body CreateCursoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		antes := curso
		curso.Nome = body.Nome
		if err := database.DB.Save(&curso).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar curso")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "curso",
				EntidadeID:  curso.ID,
				Acao:        models.AuditAtualizar,
				Descricao:   fmt.Sprintf("Curso atualizado: %s", curso.Nome),
				Antes:       antes,
				Depois:      curso,
			})
		}

		return c.JSON(CursoResponse{ID: curso.ID, Nome: curso.Nome})
	}
}

// DELETE /api/admin/cursos/:id
func DeleteCursoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var curso models.Curso
		if err := database.DB.First(&curso, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Curso não encontrado")
		}

		var emUso int64
		database.DB.Model(&models.Turma{}).Where("curso_id = ?", curso.ID).Count(&emUso)
		if emUso > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Curso em uso por turmas")
		}

		if err := database.DB.Delete(&curso).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir curso")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "curso",
				EntidadeID:  curso.ID,
				Acao:        models.AuditExcluir,
				Descricao:   fmt.Sprintf("Curso excluído: %s", curso.Nome),
				Antes:       curso,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
