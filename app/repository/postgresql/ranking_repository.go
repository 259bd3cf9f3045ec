package repository

import (
	"context"
	"database/sql"
	"fmt"

	models "green-saas/app/models/postgresql"

	"github.com/lib/pq"
)

type RankingRepository interface {
	// FromView reads the precomputed rankingturmas view.
	FromView(ctx context.Context, filter models.DeliveryFilter) ([]models.RankingRow, error)
	// FromDeliveries reads one row per delivery, for grouping in Go.
	FromDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]models.RankingRow, error)
}

type rankingRepository struct {
	db *sql.DB
}

func NewRankingRepository(db *sql.DB) RankingRepository {
	return &rankingRepository{db: db}
}

// rankedStatuses applies when the caller passes no statuses, so the raw path
// never counts rejected deliveries.
var rankedStatuses = []string{models.StatusApproved, models.StatusPending}

func buildRankingViewQuery(filter models.DeliveryFilter) (string, []interface{}) {
	whereClause := " WHERE 1=1"
	var args []interface{}
	argCount := 1

	if filter.Course != "" {
		whereClause += fmt.Sprintf(" AND curso = $%d", argCount)
		args = append(args, filter.Course)
		argCount++
	}
	if filter.Unit != "" {
		whereClause += fmt.Sprintf(" AND unidade = $%d", argCount)
		args = append(args, filter.Unit)
	}

	query := `
		SELECT turma, curso, unidade, total_entregas, total_reciclado_kg, total_pontos
		FROM rankingturmas
	` + whereClause + ` ORDER BY total_pontos DESC`

	return query, args
}

// buildRankingDeliveriesQuery selects one row per counted delivery. The status
// predicate is always $1.
func buildRankingDeliveriesQuery(filter models.DeliveryFilter) (string, []interface{}) {
	statuses := filter.Statuses
	if len(statuses) == 0 {
		statuses = rankedStatuses
	}

	whereClause := " WHERE status = ANY($1)"
	args := []interface{}{pq.Array(statuses)}
	argCount := 2

	if filter.Course != "" {
		whereClause += fmt.Sprintf(" AND curso = $%d", argCount)
		args = append(args, filter.Course)
		argCount++
	}
	if filter.Unit != "" {
		whereClause += fmt.Sprintf(" AND unidade = $%d", argCount)
		args = append(args, filter.Unit)
	}

	query := `
		SELECT turma, curso, unidade, 1, quantidade, COALESCE(pontos_obtidos, 0)
		FROM entregas
	` + whereClause

	return query, args
}

func (r *rankingRepository) FromView(ctx context.Context, filter models.DeliveryFilter) ([]models.RankingRow, error) {
	query, args := buildRankingViewQuery(filter)
	return r.scanRows(ctx, query, args...)
}

func (r *rankingRepository) FromDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]models.RankingRow, error) {
	query, args := buildRankingDeliveriesQuery(filter)
	return r.scanRows(ctx, query, args...)
}

func (r *rankingRepository) scanRows(ctx context.Context, query string, args ...interface{}) ([]models.RankingRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.RankingRow
	for rows.Next() {
		var row models.RankingRow
		if err := rows.Scan(&row.Class, &row.Course, &row.Unit, &row.Count, &row.TotalKg, &row.Points); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
