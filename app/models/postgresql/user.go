package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleStudent = "aluno"
	RoleAdmin   = "instituicao"
)

// AllowedUser is a row of usuarios_permitidos, the pre-login allow-list.
type AllowedUser struct {
	Email       string  `json:"email"`
	Role        string  `json:"tipo_usuario"`
	Institution string  `json:"instituicao"`
	Active      bool    `json:"ativo"`
	Course      *string `json:"curso,omitempty"`
	Class       *string `json:"turma,omitempty"`
}

type VerifyRequest struct {
	Email       string `json:"email"`
	Role        string `json:"tipo_usuario"`
	Institution string `json:"instituicao"`
}

type LoginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"tipo_usuario"`
	Institution string `json:"instituicao"`
}

// Profile is what an authorized user may act as.
type Profile struct {
	Role        string `json:"tipo_usuario"`
	Institution string `json:"instituicao"`
	Course      string `json:"curso,omitempty"`
	Class       string `json:"turma,omitempty"`
}

type VerifyResponse struct {
	Authorized bool     `json:"autorizado"`
	Message    string   `json:"mensagem,omitempty"`
	Profile    *Profile `json:"dados,omitempty"`
}

// User is an account in usuarios. Accounts are created by administrators.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// Session is the server-side record behind a session token.
type Session struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Email       string     `json:"email"`
	Role        string     `json:"tipo_usuario"`
	Institution string     `json:"instituicao"`
	Course      string     `json:"curso,omitempty"`
	Class       string     `json:"turma,omitempty"`
	Demo        bool       `json:"demo"`
	ExpiresAt   time.Time  `json:"expires_at"`
}

type JWTClaims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}
