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

type InstrutorResumo struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

type TurmaResponse struct {
	ID          uint              `json:"id"`
	Nome        string            `json:"nome"`
	CursoID     *uint             `json:"curso_id"`
	CursoNome   string            `json:"curso_nome"`
	Instrutores []InstrutorResumo `json:"instrutores"`
}

type CreateTurmaRequest struct {
	Nome        string `json:"nome" validate:"required,min=2,max=100"`
	CursoID     *uint  `json:"curso_id"`
	Instrutores []uint `json:"instrutores"` // ids de usuários
}

func turmaParaResponse(t models.Turma) TurmaResponse {
	cursoNome := ""
	if t.Curso != nil {
		cursoNome = t.Curso.Nome
	}
	instrutores := make([]InstrutorResumo, 0, len(t.Instrutores))
	for _, i := range t.Instrutores {
		instrutores = append(instrutores, InstrutorResumo{ID: i.ID, Nome: i.Nome})
	}
	return TurmaResponse{
		ID:          t.ID,
		Nome:        t.Nome,
		CursoID:     t.CursoID,
		CursoNome:   cursoNome,
		Instrutores: instrutores,
	}
}

// carregarInstrutores valida que todos os ids existem antes de associar.
func carregarInstrutores(ids []uint) ([]models.Usuario, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var usuarios []models.Usuario
	if err := database.DB.Where("id IN ?", ids).Find(&usuarios).Error; err != nil {
		return nil, err
	}
	if len(usuarios) != len(ids) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Instrutor não encontrado")
	}
	return usuarios, nil
}

// GET /api/turmas
func ListTurmasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var turmas []models.Turma
		if err := database.DB.Preload("Curso").Preload("Instrutores").Order("nome asc").Find(&turmas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar turmas")
		}

		res := make([]TurmaResponse, 0, len(turmas))
		for _, t := range turmas {
			res = append(res, turmaParaResponse(t))
		}
		return c.JSON(res)
	}
}

// GET /api/turmas/:id
func GetTurmaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var t models.Turma
		if err := database.DB.Preload("Curso").Preload("Instrutores").First(&t, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
		}
		return c.JSON(turmaParaResponse(t))
	}
}

// POST /api/admin/turmas
func CreateTurmaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTurmaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		if body.CursoID != nil {
			var curso models.Curso
			if err := database.DB.First(&curso, *body.CursoID).Error; err != nil {
				return validacao.Responder(c, map[string]string{"curso_id": "Curso não encontrado"})
			}
		}

		instrutores, err := carregarInstrutores(body.Instrutores)
		if err != nil {
			return err
		}

		t := models.Turma{Nome: body.Nome, CursoID: body.CursoID, Instrutores: instrutores}
		if err := database.DB.Create(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar turma")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "turma",
				EntidadeID:  t.ID,
				Acao:        models.AuditCriar,
				Descricao:   fmt.Sprintf("Turma criada: %s", t.Nome),
				Depois:      t,
			})
		}

		database.DB.Preload("Curso").Preload("Instrutores").First(&t, t.ID)
		return c.Status(fiber.StatusCreated).JSON(turmaParaResponse(t))
	}
}

// PUT /api/admin/turmas/:id
func UpdateTurmaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var t models.Turma
		if err := database.DB.First(&t, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
		}

		var body CreateTurmaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		if body.CursoID != nil {
			var curso models.Curso
			if err := database.DB.First(&curso, *body.CursoID).Error; err != nil {
				return validacao.Responder(c, map[string]string{"curso_id": "Curso não encontrado"})
			}
		}

		instrutores, err := carregarInstrutores(body.Instrutores)
		if err != nil {
			return err
		}

		antes := t
		t.Nome = body.Nome
		t.CursoID = body.CursoID
		if err := database.DB.Save(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar turma")
		}

		// Troca completa do conjunto de instrutores
		if err := database.DB.Model(&t).Association("Instrutores").Replace(instrutores); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar instrutores da turma")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "turma",
				EntidadeID:  t.ID,
				Acao:        models.AuditAtualizar,
				Descricao:   fmt.Sprintf("Turma atualizada: %s", t.Nome),
				Antes:       antes,
				Depois:      t,
			})
		}

		database.DB.Preload("Curso").Preload("Instrutores").First(&t, t.ID)
		return c.JSON(turmaParaResponse(t))
	}
}

// DELETE /api/admin/turmas/:id
func DeleteTurmaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var t models.Turma
		if err := database.DB.First(&t, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
		}

		if err := database.DB.Model(&t).Association("Instrutores").Clear(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir turma")
		}
		if err := database.DB.Delete(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir turma")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "turma",
				EntidadeID:  t.ID,
				Acao:        models.AuditExcluir,
				Descricao:   fmt.Sprintf("Turma excluída: %s", t.Nome),
				Antes:       t,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
