package models

import "time"

type TipoMovimentacao string

const (
	MovimentacaoEntrada TipoMovimentacao = "entrada"
	MovimentacaoSaida   TipoMovimentacao = "saida"
)

type Movimentacao struct {
	ID         uint `gorm:"primaryKey"`
	ProdutoID  uint `gorm:"index;not null"`
	Produto    Produto
	UsuarioID  uint `gorm:"index;not null"`
	Usuario    Usuario
	TurmaID    *uint
	Turma      *Turma
	Tipo       TipoMovimentacao `gorm:"size:10;not null"`
	Quantidade float64          `gorm:"not null"` // sempre positiva; o sinal vem do tipo
	Data       time.Time        `gorm:"index;not null"`
	Observacao string           `gorm:"size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Movimentacao) TableName() string { return "movimentacao" }
