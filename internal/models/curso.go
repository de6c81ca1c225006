package models

import "time"

type Curso struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"size:100;not null;unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Curso) TableName() string { return "cursos" }
