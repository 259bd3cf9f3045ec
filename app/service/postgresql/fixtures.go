package service

import (
	"time"

	models "green-saas/app/models/postgresql"
)

// Fixture data served in demo mode when the database refuses a read.

func demoDeliveries(now time.Time) []models.Delivery {
	return []models.Delivery{
		{
			ID:           1,
			ImageURL:     "/static/circular-economy-flow.svg",
			QuantityKg:   2.5,
			MaterialType: models.MaterialPET,
			Course:       "Ciência da Computação",
			Class:        "Turma B",
			Unit:         "Unama Alcindo Cacela",
			Points:       125,
			Status:       models.StatusApproved,
			DeliveredAt:  now,
		},
		{
			ID:           2,
			ImageURL:     "/static/recycled-aluminum.svg",
			QuantityKg:   1.8,
			MaterialType: models.MaterialAluminum,
			Course:       "Engenharia Ambiental",
			Class:        "Turma A",
			Unit:         "Unama BR",
			Points:       144,
			Status:       models.StatusPending,
			DeliveredAt:  now.Add(-24 * time.Hour),
		},
	}
}

// demoStatistics returns the Turma B fixture for that class and an all-zero
// result for anything else.
func demoStatistics(class string) models.Statistics {
	if class == "turma-b" || class == "Turma B" {
		return models.Statistics{
			TotalCount:  12,
			TotalKg:     45.5,
			// Canned total kept as published for this class. It is not the sum
			// of the per-material points below.
			TotalPoints: 2250,
			PerMaterial: []models.MaterialStatistic{
				{Type: models.MaterialPET, Count: 5, TotalKg: 20.5, TotalPoints: 1025, Percent: 45.1},
				{Type: models.MaterialAluminum, Count: 3, TotalKg: 15.0, TotalPoints: 1200, Percent: 33.0},
				{Type: models.MaterialGlass, Count: 2, TotalKg: 8.0, TotalPoints: 240, Percent: 17.6},
				{Type: models.MaterialPaper, Count: 2, TotalKg: 2.0, TotalPoints: 40, Percent: 4.4},
			},
			Fallback: true,
		}
	}

	stats := AggregateStatistics(nil)
	stats.Fallback = true
	return stats
}
