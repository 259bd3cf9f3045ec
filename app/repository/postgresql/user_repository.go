package repository

import (
	"context"
	"database/sql"
	"errors"

	models "green-saas/app/models/postgresql"
)

type UserRepository interface {
	// FindAllowed returns the active allow-list entry for email, or nil.
	// Emails are expected in utils.NormalizeEmail form.
	FindAllowed(ctx context.Context, email string) (*models.AllowedUser, error)
	// FindByEmail returns the account for email, or nil.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindAllowed(ctx context.Context, email string) (*models.AllowedUser, error) {
	query := `
		SELECT email, tipo_usuario, instituicao, ativo, curso, turma
		FROM usuarios_permitidos
		WHERE lower(email) = $1 AND ativo = true
		LIMIT 1
	`
	var u models.AllowedUser
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.Email, &u.Role, &u.Institution, &u.Active, &u.Course, &u.Class,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, COALESCE(full_name, ''), created_at
		FROM usuarios
		WHERE lower(email) = $1
	`
	var u models.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	query := `
		INSERT INTO usuarios (email, password_hash, full_name, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.FullName).Scan(&u.ID, &u.CreatedAt)
	return u, err
}
