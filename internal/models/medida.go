package models

import "time"

// Medida: unidade de medida dos produtos (un, kg, cx...)
type Medida struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"size:50;not null;unique"`
	Sigla     string `gorm:"size:10;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Medida) TableName() string { return "medida" }
