package audit

import (
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entidade=produto (somente admin)
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if entidade := c.Query("entidade"); entidade != "" {
			dbq = dbq.Where("entidade = ?", entidade)
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at desc").Limit(500).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar audit logs")
		}

		return c.JSON(logs)
	}
}
