package models

import "time"

type Usuario struct {
	ID       uint   `gorm:"primaryKey"`
	Nome     string `gorm:"size:100;not null"`
	Email    string `gorm:"size:100;uniqueIndex;not null"`
	Telefone string `gorm:"size:30"`
	// Senha pode conter um hash bcrypt ou, em cadastros antigos, texto puro.
	// O login reconhece o formato pelo prefixo "$2" e migra no primeiro acesso.
	Senha          string `gorm:"size:255;not null"`
	CargoID        *uint
	Cargo          *Cargo
	TurmaID        *uint
	Turma          *Turma
	DataNascimento *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Usuario) TableName() string { return "usuarios" }
