package models

import "time"

type StatusNotificacao string

const (
	NotificacaoPendente  StatusNotificacao = "pendente"
	NotificacaoAprovada  StatusNotificacao = "aprovada"
	NotificacaoParcial   StatusNotificacao = "parcial"
	NotificacaoRejeitada StatusNotificacao = "rejeitada"
)

// Notificacao: solicitação de material aguardando aprovação de um admin.
// O produto é texto livre (o solicitante pode pedir algo fora do catálogo).
type Notificacao struct {
	ID                   uint              `gorm:"primaryKey"`
	SolicitanteNome      string            `gorm:"size:100;not null"`
	SolicitanteCargo     string            `gorm:"size:50"`
	ProdutoNome          string            `gorm:"size:100;not null"`
	QuantidadeSolicitada float64           `gorm:"not null"`
	Status               StatusNotificacao `gorm:"size:20;not null;default:pendente"`
	QuantidadeAprovada   *float64
	Observacao           string `gorm:"size:255"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Notificacao) TableName() string { return "notificacoes" }
