package database

import (
	"log"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/config"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Cargo{},
		&models.Curso{},
		&models.Turma{},
		&models.Usuario{},
		&models.Medida{},
		&models.Produto{},
		&models.Movimentacao{},
		&models.Notificacao{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	seedCargos()

	log.Println("Conexão com o banco estabelecida. Migration concluída.")
}

// seedCargos garante os três papéis básicos do painel.
func seedCargos() {
	for _, nome := range []string{models.CargoAdmin, models.CargoProfessor, models.CargoAluno} {
		var count int64
		DB.Model(&models.Cargo{}).Where("nome = ?", nome).Count(&count)
		if count == 0 {
			if err := DB.Create(&models.Cargo{Nome: nome}).Error; err != nil {
				log.Printf("Não foi possível criar o cargo %q: %v", nome, err)
			}
		}
	}
}
