package models

import "time"

type Produto struct {
	ID          uint   `gorm:"primaryKey"`
	Nome        string `gorm:"size:100;not null"`
	Codigo      string `gorm:"size:50;index"`  // código interno opcional (ex: "XYZ-9")
	Localizacao string `gorm:"size:100"`       // armário/prateleira, opcional
	MedidaID    *uint
	Medida      *Medida
	Entradas    float64 `gorm:"not null;default:0"`
	Saidas      float64 `gorm:"not null;default:0"`
	Saldo       float64 `gorm:"not null;default:0"` // saldo = entradas - saidas, nunca negativo
	DataEntrada time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Produto) TableName() string { return "produtos" }
