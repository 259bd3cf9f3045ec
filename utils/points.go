package utils

import (
	"math"
	"strings"

	models "green-saas/app/models/postgresql"
)

// DefaultRate is the points-per-kilogram for any material outside the table.
const DefaultRate = 10

var pointsPerKg = map[string]int{
	models.MaterialPET:      50,
	models.MaterialAluminum: 80,
	models.MaterialGlass:    30,
	models.MaterialPaper:    20,
}

// CanonicalMaterials is the fixed output order of the statistics endpoint.
var CanonicalMaterials = []string{
	models.MaterialPET,
	models.MaterialAluminum,
	models.MaterialGlass,
	models.MaterialPaper,
}

func RateFor(materialType string) int {
	if rate, ok := pointsPerKg[materialType]; ok {
		return rate
	}
	return DefaultRate
}

// CalculatePoints returns round(kg * rate), rounding halves away from zero.
func CalculatePoints(kg float64, materialType string) int {
	return int(math.Round(kg * float64(RateFor(materialType))))
}

// MaterialBucket maps a stored material type to its statistics bucket.
func MaterialBucket(materialType string) string {
	if _, ok := pointsPerKg[materialType]; ok {
		return materialType
	}
	return models.MaterialOther
}

// IsAllFilter reports whether a filter value means "no filter".
func IsAllFilter(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "todas", "todos", "turma-todas":
		return true
	}
	return false
}

// NormalizeClassName turns the slug form "turma-b" into "Turma B" so both
// naming conventions match the stored turma column.
func NormalizeClassName(v string) string {
	if strings.HasPrefix(v, "turma-") {
		return "Turma " + strings.ToUpper(strings.TrimPrefix(v, "turma-"))
	}
	return v
}
