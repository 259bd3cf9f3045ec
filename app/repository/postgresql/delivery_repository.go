package repository

import (
	"context"
	"database/sql"
	"fmt"

	models "green-saas/app/models/postgresql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DeliveryRepository interface {
	Create(ctx context.Context, d models.Delivery) (models.Delivery, error)
	List(ctx context.Context, filter models.DeliveryFilter) ([]models.Delivery, error)
}

type deliveryRepository struct {
	db *sql.DB
}

func NewDeliveryRepository(db *sql.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

// buildDeliveryWhere turns a filter into a WHERE clause with $n placeholders
// starting at $1. Values are matched verbatim; callers normalize them first.
func buildDeliveryWhere(filter models.DeliveryFilter) (string, []interface{}) {
	whereClause := " WHERE 1=1"
	var args []interface{}
	argCount := 1

	if filter.Class != "" {
		whereClause += fmt.Sprintf(" AND turma = $%d", argCount)
		args = append(args, filter.Class)
		argCount++
	}
	if filter.Course != "" {
		whereClause += fmt.Sprintf(" AND curso = $%d", argCount)
		args = append(args, filter.Course)
		argCount++
	}
	if filter.Unit != "" {
		whereClause += fmt.Sprintf(" AND unidade = $%d", argCount)
		args = append(args, filter.Unit)
		argCount++
	}
	if len(filter.Statuses) > 0 {
		whereClause += fmt.Sprintf(" AND status = ANY($%d)", argCount)
		args = append(args, pq.Array(filter.Statuses))
	}

	return whereClause, args
}

func (r *deliveryRepository) Create(ctx context.Context, d models.Delivery) (models.Delivery, error) {
	query := `
		INSERT INTO entregas (
			imagem_url, quantidade, tipo_residuo, curso, turma, unidade,
			pontos_obtidos, status, usuario_id, data_entrega
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, data_entrega
	`
	err := r.db.QueryRowContext(ctx, query,
		d.ImageURL,
		d.QuantityKg,
		d.MaterialType,
		d.Course,
		d.Class,
		d.Unit,
		d.Points,
		d.Status,
		d.UserID,
	).Scan(&d.ID, &d.DeliveredAt)

	return d, err
}

// buildListDeliveriesQuery returns the listing query, newest first.
func buildListDeliveriesQuery(filter models.DeliveryFilter) (string, []interface{}) {
	whereClause, args := buildDeliveryWhere(filter)

	query := `
		SELECT id, imagem_url, quantidade, tipo_residuo, curso, turma, unidade,
		       COALESCE(pontos_obtidos, 0), status, data_entrega, usuario_id
		FROM entregas
	` + whereClause + ` ORDER BY data_entrega DESC`

	return query, args
}

func (r *deliveryRepository) List(ctx context.Context, filter models.DeliveryFilter) ([]models.Delivery, error) {
	query, args := buildListDeliveriesQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.Delivery{}
	for rows.Next() {
		var d models.Delivery
		var userID uuid.NullUUID
		var materialType sql.NullString
		err := rows.Scan(
			&d.ID,
			&d.ImageURL,
			&d.QuantityKg,
			&materialType,
			&d.Course,
			&d.Class,
			&d.Unit,
			&d.Points,
			&d.Status,
			&d.DeliveredAt,
			&userID,
		)
		if err != nil {
			return nil, err
		}
		d.MaterialType = materialType.String
		if userID.Valid {
			id := userID.UUID
			d.UserID = &id
		}
		results = append(results, d)
	}

	return results, rows.Err()
}
