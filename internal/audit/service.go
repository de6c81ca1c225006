package audit

import (
	"encoding/json"
	"fmt"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/auth"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LogOptions struct {
	UsuarioID   uint
	UsuarioNome string
	Entidade    string
	EntidadeID  uint
	Acao        models.AcaoAudit
	Descricao   string
	Antes       any
	Depois      any
}

func WriteLog(opts LogOptions) error {
	// jsonb do Postgres precisa de "null" em vez de string vazia
	antesStr := "null"
	depoisStr := "null"

	if opts.Antes != nil {
		if b, err := json.Marshal(opts.Antes); err == nil {
			antesStr = string(b)
		}
	}
	if opts.Depois != nil {
		if b, err := json.Marshal(opts.Depois); err == nil {
			depoisStr = string(b)
		}
	}

	registro := models.AuditLog{
		UsuarioID:   opts.UsuarioID,
		UsuarioNome: opts.UsuarioNome,
		Entidade:    opts.Entidade,
		EntidadeID:  opts.EntidadeID,
		Acao:        opts.Acao,
		Descricao:   opts.Descricao,
		DadosAntes:  antesStr,
		DadosDepois: depoisStr,
	}

	if err := database.DB.Create(&registro).Error; err != nil {
		return fmt.Errorf("audit log não pôde ser gravado: %w", err)
	}

	return nil
}

// Autor resolve quem está fazendo a mutação a partir da sessão.
// Falha aqui não derruba a operação principal; o chamador só pula o log.
func Autor(c *fiber.Ctx) (uint, string, error) {
	usuarioID, ok := c.Locals(auth.CtxUsuarioIDKey).(uint)
	if !ok {
		return 0, "", fmt.Errorf("usuário da sessão não identificado")
	}

	var usuario models.Usuario
	if err := database.DB.First(&usuario, usuarioID).Error; err != nil {
		return 0, "", fmt.Errorf("usuário %d não encontrado", usuarioID)
	}

	return usuario.ID, usuario.Nome, nil
}
