package repository

import (
	"context"
	"database/sql"
	"fmt"

	models "green-saas/app/models/postgresql"
)

// ReferenceRepository reads units, courses and classes. This service never
// writes them.
type ReferenceRepository interface {
	GetUnits(ctx context.Context) ([]models.Unit, error)
	GetActiveCourses(ctx context.Context) ([]models.Course, error)
	GetClasses(ctx context.Context, q models.ClassQuery) ([]models.Class, error)
}

type referenceRepository struct {
	db *sql.DB
}

func NewReferenceRepository(db *sql.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) GetUnits(ctx context.Context) ([]models.Unit, error) {
	query := `
		SELECT id, nome, endereco, cidade, estado, telefone, email, latitude, longitude
		FROM unidades
		ORDER BY nome
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := []models.Unit{}
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Address, &u.City, &u.State, &u.Phone, &u.Email, &u.Latitude, &u.Longitude); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *referenceRepository) GetActiveCourses(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, nome, area_conhecimento, duracao_semestres, tipo_grau, ativo
		FROM cursos
		WHERE ativo = true
		ORDER BY nome
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.KnowledgeArea, &c.Semesters, &c.DegreeType, &c.Active); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *referenceRepository) GetClasses(ctx context.Context, q models.ClassQuery) ([]models.Class, error) {
	whereClause := " WHERE 1=1"
	var args []interface{}
	argCount := 1

	if q.CourseID != "" {
		whereClause += fmt.Sprintf(" AND curso_id = $%d", argCount)
		args = append(args, q.CourseID)
		argCount++
	}
	if q.UnitID != "" {
		whereClause += fmt.Sprintf(" AND unidade_id = $%d", argCount)
		args = append(args, q.UnitID)
		argCount++
	}
	if q.Semester != "" {
		whereClause += fmt.Sprintf(" AND semestre = $%d", argCount)
		args = append(args, q.Semester)
	}

	query := `
		SELECT id, turma_codigo, curso_id, curso_nome, unidade_id, unidade_nome,
		       turno, semestre, data_inicio, vagas_total, vagas_ocupadas, ativo
		FROM turmas_detalhadas
	` + whereClause + ` ORDER BY unidade_nome, curso_nome, turma_codigo`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var c models.Class
		err := rows.Scan(
			&c.ID, &c.Code, &c.CourseID, &c.CourseName, &c.UnitID, &c.UnitName,
			&c.Shift, &c.Semester, &c.StartDate, &c.TotalSeats, &c.OccupiedSeats, &c.Active,
		)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
