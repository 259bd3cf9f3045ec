package service

import (
	modelPg "green-saas/app/models/postgresql"
	repoMongo "green-saas/app/repository/mongodb"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditService struct {
	repo repoMongo.AuditRepository
}

func NewAuditService(r repoMongo.AuditRepository) *AuditService {
	return &AuditService{repo: r}
}

// === GET /deliveries/audit (admin) ===
func (s *AuditService) GetAudit(c *fiber.Ctx) error {
	if s.repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Auditoria não configurada"})
	}

	var query modelPg.AuditQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parâmetros de consulta inválidos"})
	}
	if query.Limit <= 0 {
		query.Limit = defaultAuditLimit
	}
	if query.Limit > maxAuditLimit {
		query.Limit = maxAuditLimit
	}

	entries, err := s.repo.FindLatest(c.Context(), int64(query.Limit), query.Fallback)
	if err != nil {
		log.Errorw("failed to read delivery audit", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar auditoria"})
	}

	return c.JSON(fiber.Map{"data": entries})
}
