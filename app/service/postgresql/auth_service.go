package service

import (
	"context"
	"fmt"
	"time"

	models "green-saas/app/models/postgresql"
	sessionRepo "green-saas/app/repository/badger"
	repo "green-saas/app/repository/postgresql"
	"green-saas/config"
	"green-saas/middleware"
	"green-saas/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type AuthService struct {
	users    repo.UserRepository
	sessions sessionRepo.SessionRepository
	cfg      *config.Config
}

func NewAuthService(u repo.UserRepository, s sessionRepo.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: u, sessions: s, cfg: cfg}
}

// authorization is the outcome of checking an (email, role, institution)
// triple against the demo accounts and the allow-list.
type authorization struct {
	response models.VerifyResponse
	demo     bool
}

// authorize decides whether the triple may proceed to login. A non-nil error
// means the database could not be reached at all; errors reported by the
// database itself are folded into an unauthorized response.
func (s *AuthService) authorize(ctx context.Context, email, role, institution string) (authorization, error) {
	if s.cfg.DemoMode {
		if acc := config.FindDemoAccount(email, role, institution); acc != nil {
			return authorization{
				response: models.VerifyResponse{
					Authorized: true,
					Profile: &models.Profile{
						Role:        acc.Role,
						Institution: acc.Institution,
						Course:      acc.Course,
						Class:       acc.Class,
					},
				},
				demo: true,
			}, nil
		}
	}

	allowed, err := s.users.FindAllowed(ctx, email)
	if err != nil {
		if repo.IsQueryError(err) {
			log.Errorw("allow-list lookup failed", "email", email, "code", repo.ErrorCode(err), "error", err)
			return authorization{response: models.VerifyResponse{
				Message: "Erro ao verificar usuário no banco de dados",
			}}, nil
		}
		return authorization{}, err
	}

	if allowed == nil || !allowed.Active {
		return authorization{response: models.VerifyResponse{
			Message: "Usuário não encontrado ou não autorizado",
		}}, nil
	}

	if allowed.Role != role {
		return authorization{response: models.VerifyResponse{
			Message: fmt.Sprintf("Este email está registrado como %s, não como %s", allowed.Role, role),
		}}, nil
	}

	if allowed.Institution != institution {
		return authorization{response: models.VerifyResponse{
			Message: fmt.Sprintf("Este email está associado à instituição %s, não à %s", allowed.Institution, institution),
		}}, nil
	}

	profile := &models.Profile{Role: allowed.Role, Institution: allowed.Institution}
	if allowed.Course != nil {
		profile.Course = *allowed.Course
	}
	if allowed.Class != nil {
		profile.Class = *allowed.Class
	}
	return authorization{response: models.VerifyResponse{Authorized: true, Profile: profile}}, nil
}

// === POST /auth/verify ===
func (s *AuthService) Verify(c *fiber.Ctx) error {
	var req models.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.VerifyResponse{
			Message: "Formato de requisição inválido",
		})
	}
	req.Email = utils.NormalizeEmail(req.Email)

	if req.Email == "" || req.Role == "" || req.Institution == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.VerifyResponse{
			Message: "Email, tipo de usuário e instituição são obrigatórios",
		})
	}

	result, err := s.authorize(c.Context(), req.Email, req.Role, req.Institution)
	if err != nil {
		log.Errorw("allow-list unreachable", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.VerifyResponse{
			Message: "Erro interno do servidor ao verificar usuário",
		})
	}

	return c.Status(fiber.StatusOK).JSON(result.response)
}

// === POST /auth/login ===
func (s *AuthService) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de requisição inválido"})
	}
	req.Email = utils.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" || req.Role == "" || req.Institution == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email, senha, tipo de usuário e instituição são obrigatórios",
		})
	}

	result, err := s.authorize(ctx, req.Email, req.Role, req.Institution)
	if err != nil {
		log.Errorw("allow-list unreachable during login", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}
	if !result.response.Authorized {
		return c.Status(fiber.StatusUnauthorized).JSON(result.response)
	}

	session := models.Session{
		ID:          uuid.New(),
		Email:       req.Email,
		Role:        result.response.Profile.Role,
		Institution: result.response.Profile.Institution,
		Course:      result.response.Profile.Course,
		Class:       result.response.Profile.Class,
		Demo:        result.demo,
		ExpiresAt:   time.Now().Add(s.cfg.SessionTTL),
	}

	if result.demo {
		if req.Password != s.cfg.DemoPassword {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciais inválidas"})
		}
		log.Infow("demo login", "email", req.Email, "role", session.Role)
	} else {
		user, err := s.users.FindByEmail(ctx, req.Email)
		if err != nil {
			log.Errorw("account lookup failed", "email", req.Email, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
		}
		if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciais inválidas"})
		}
		session.UserID = &user.ID
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		log.Errorw("failed to store session", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao criar sessão"})
	}

	token, err := utils.GenerateSessionToken(&session)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao gerar token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"autorizado": true,
		"dados":      result.response.Profile,
		"token":      token,
		"redirect":   middleware.HomePath(session.Role),
	})
}

// === POST /auth/logout ===
func (s *AuthService) Logout(c *fiber.Ctx) error {
	if id, ok := c.Locals("session_id").(uuid.UUID); ok {
		if err := s.sessions.Delete(c.Context(), id); err != nil {
			log.Errorw("failed to delete session", "session", id, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao encerrar sessão"})
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Sessão encerrada"})
}

// === GET /auth/profile ===
func (s *AuthService) Profile(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(*models.Session)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Sessão inválida ou expirada"})
	}
	return c.JSON(fiber.Map{"data": session})
}
