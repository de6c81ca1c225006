package academico

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/auth"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Testes de integração: rodam só com TEST_DATABASE_DSN apontando para um
// Postgres descartável.
func abrirBancoDeTeste(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN não definido")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Cargo{},
		&models.Curso{},
		&models.Turma{},
		&models.Usuario{},
		&models.AuditLog{},
	))
	database.DB = db
}

func criarAdminDeTeste(t *testing.T) models.Usuario {
	t.Helper()
	u := models.Usuario{
		Nome:  "Admin de Teste",
		Email: fmt.Sprintf("admin%d@teste.br", time.Now().UnixNano()),
		Senha: "irrelevante",
	}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

func appDeTeste(usuarioID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(auth.CtxUsuarioIDKey, usuarioID)
		return c.Next()
	})
	app.Post("/cursos", CreateCursoHandler())
	app.Delete("/cursos/:id", DeleteCursoHandler())
	return app
}

func TestCreateCursoEscreveAuditoria(t *testing.T) {
	abrirBancoDeTeste(t)
	admin := criarAdminDeTeste(t)
	app := appDeTeste(admin.ID)

	nome := fmt.Sprintf("Curso %d", time.Now().UnixNano())
	req := httptest.NewRequest("POST", "/cursos", strings.NewReader(fmt.Sprintf(`{"nome":%q}`, nome)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var criado CursoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&criado))
	assert.Equal(t, nome, criado.Nome)

	var registros []models.AuditLog
	require.NoError(t, database.DB.
		Where("entidade = ? AND entidade_id = ?", "curso", criado.ID).
		Find(&registros).Error)
	require.Len(t, registros, 1)
	assert.Equal(t, models.AuditCriar, registros[0].Acao)
	assert.Equal(t, admin.ID, registros[0].UsuarioID)
}

func TestDeleteCursoEscreveAuditoria(t *testing.T) {
	abrirBancoDeTeste(t)
	admin := criarAdminDeTeste(t)
	app := appDeTeste(admin.ID)

	curso := models.Curso{Nome: fmt.Sprintf("Curso %d", time.Now().UnixNano())}
	require.NoError(t, database.DB.Create(&curso).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/cursos/%d", curso.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var registros []models.AuditLog
	require.NoError(t, database.DB.
		Where("entidade = ? AND entidade_id = ? AND acao = ?", "curso", curso.ID, models.AuditExcluir).
		Find(&registros).Error)
	require.Len(t, registros, 1)
}
