package models

import "time"

type AcaoAudit string

const (
	AuditCriar     AcaoAudit = "criar"
	AuditAtualizar AcaoAudit = "atualizar"
	AuditExcluir   AcaoAudit = "excluir"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UsuarioID   uint   `json:"usuario_id"`
	UsuarioNome string `gorm:"size:100" json:"usuario_nome"` // denormalizado

	// Qual entidade? (ex: "produto", "movimentacao", "notificacao")
	Entidade   string `gorm:"size:50;index" json:"entidade"`
	EntidadeID uint   `gorm:"index" json:"entidade_id"`

	Acao      AcaoAudit `gorm:"size:20" json:"acao"`
	Descricao string    `gorm:"size:255" json:"descricao"`

	// Estado antes e depois (JSON)
	DadosAntes  string `gorm:"type:jsonb" json:"dados_antes"`
	DadosDepois string `gorm:"type:jsonb" json:"dados_depois"`
}
