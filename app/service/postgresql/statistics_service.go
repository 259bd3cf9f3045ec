package service

import (
	models "green-saas/app/models/postgresql"
	repo "green-saas/app/repository/postgresql"
	"green-saas/config"
	"green-saas/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// countedStatuses are the delivery statuses included in statistics and ranking.
var countedStatuses = []string{models.StatusApproved, models.StatusPending}

type StatisticsService struct {
	repo repo.DeliveryRepository
	cfg  *config.Config
}

func NewStatisticsService(r repo.DeliveryRepository, cfg *config.Config) *StatisticsService {
	return &StatisticsService{repo: r, cfg: cfg}
}

// AggregateStatistics reduces deliveries into per-material totals. The four
// canonical materials are always present, in fixed order, followed by the
// "Outros" bucket when any delivery falls into it.
func AggregateStatistics(deliveries []models.Delivery) models.Statistics {
	byType := make(map[string]*models.MaterialStatistic)
	order := make([]string, 0, len(utils.CanonicalMaterials)+1)
	for _, t := range utils.CanonicalMaterials {
		byType[t] = &models.MaterialStatistic{Type: t}
		order = append(order, t)
	}

	var stats models.Statistics
	for _, d := range deliveries {
		bucket := utils.MaterialBucket(d.MaterialType)

		points := d.Points
		if points <= 0 {
			points = utils.CalculatePoints(d.QuantityKg, d.MaterialType)
		}

		entry, ok := byType[bucket]
		if !ok {
			entry = &models.MaterialStatistic{Type: bucket}
			byType[bucket] = entry
			order = append(order, bucket)
		}
		entry.Count++
		entry.TotalKg += d.QuantityKg
		entry.TotalPoints += points

		stats.TotalCount++
		stats.TotalKg += d.QuantityKg
		stats.TotalPoints += points
	}

	stats.PerMaterial = make([]models.MaterialStatistic, 0, len(order))
	for _, t := range order {
		entry := byType[t]
		if stats.TotalKg > 0 {
			entry.Percent = entry.TotalKg / stats.TotalKg * 100
		}
		stats.PerMaterial = append(stats.PerMaterial, *entry)
	}
	return stats
}

// === GET /statistics ===
func (s *StatisticsService) GetStatistics(c *fiber.Ctx) error {
	var filter models.DeliveryFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parâmetros de consulta inválidos"})
	}
	rawClass := filter.Class

	filter = dropAllFilters(filter)
	filter.Class = utils.NormalizeClassName(filter.Class)
	filter.Statuses = countedStatuses

	deliveries, err := s.repo.List(c.Context(), filter)
	if err != nil {
		if s.cfg.DemoMode && repo.IsUnavailable(err) {
			log.Warnw("demo mode: statistics unavailable, serving fixture",
				"code", repo.ErrorCode(err), "turma", rawClass)
			return c.JSON(demoStatistics(rawClass))
		}
		log.Errorw("failed to load statistics", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao calcular estatísticas"})
	}

	return c.JSON(AggregateStatistics(deliveries))
}
