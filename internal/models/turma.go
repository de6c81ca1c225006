package models

import "time"

type Turma struct {
	ID      uint   `gorm:"primaryKey"`
	Nome    string `gorm:"size:100;not null"`
	CursoID *uint
	Curso   *Curso
	// Instrutores são usuários (normalmente com cargo professor)
	Instrutores []Usuario `gorm:"many2many:turma_instrutores"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Turma) TableName() string { return "turma" }
