package models

import "time"

const (
	CargoAdmin     = "admin"
	CargoProfessor = "professor"
	CargoAluno     = "aluno"
)

type Cargo struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"size:50;not null;unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cargo) TableName() string { return "cargos" }
