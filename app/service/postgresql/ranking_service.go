package service

import (
	"sort"

	models "green-saas/app/models/postgresql"
	repo "green-saas/app/repository/postgresql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type RankingService struct {
	repo repo.RankingRepository
}

func NewRankingService(r repo.RankingRepository) *RankingService {
	return &RankingService{repo: r}
}

type rankingKey struct {
	class, course, unit string
}

// AggregateRanking groups rows by (class, course, unit) and sorts the groups
// by points, descending. Ties are broken by class, course and unit name so
// the order is deterministic. View rows and raw delivery rows go through the
// same function.
func AggregateRanking(rows []models.RankingRow) []models.RankingEntry {
	groups := make(map[rankingKey]*models.RankingEntry)
	for _, row := range rows {
		key := rankingKey{row.Class, row.Course, row.Unit}
		entry, ok := groups[key]
		if !ok {
			entry = &models.RankingEntry{Class: row.Class, Course: row.Course, Unit: row.Unit}
			groups[key] = entry
		}
		entry.Deliveries += row.Count
		entry.TotalKg += row.TotalKg
		entry.TotalPoints += row.Points
	}

	ranking := make([]models.RankingEntry, 0, len(groups))
	for _, entry := range groups {
		ranking = append(ranking, *entry)
	}

	sort.Slice(ranking, func(i, j int) bool {
		a, b := ranking[i], ranking[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.Class != b.Class {
			return a.Class < b.Class
		}
		if a.Course != b.Course {
			return a.Course < b.Course
		}
		return a.Unit < b.Unit
	})
	return ranking
}

// === GET /ranking ===
func (s *RankingService) GetRanking(c *fiber.Ctx) error {
	ctx := c.Context()

	filter := models.DeliveryFilter{
		Course:   c.Query("curso"),
		Unit:     c.Query("unidade"),
		Statuses: countedStatuses,
	}
	filter = dropAllFilters(filter)

	rows, err := s.repo.FromView(ctx, filter)
	if err != nil {
		log.Warnw("ranking view unavailable, grouping deliveries instead", "error", err)
		rows, err = s.repo.FromDeliveries(ctx, filter)
		if err != nil {
			log.Errorw("failed to load ranking", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar ranking"})
		}
	}

	return c.JSON(fiber.Map{"data": AggregateRanking(rows)})
}
