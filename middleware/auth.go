package middleware

import (
	"errors"
	"strings"

	models "green-saas/app/models/postgresql"
	sessionRepo "green-saas/app/repository/badger"
	"green-saas/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const SessionCookie = "session_token"

var errNoToken = errors.New("no session token")

func tokenFrom(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookie); token != "" {
		return token
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// resolveSession validates the token and loads the session it points at.
func resolveSession(c *fiber.Ctx, sessions sessionRepo.SessionRepository) (*models.Session, error) {
	token := tokenFrom(c)
	if token == "" {
		return nil, errNoToken
	}

	claims, err := utils.ValidateSessionToken(token)
	if err != nil {
		return nil, err
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, err
	}

	return sessions.Get(c.Context(), sessionID)
}

func setLocals(c *fiber.Ctx, s *models.Session) {
	c.Locals("session", s)
	c.Locals("session_id", s.ID)
	c.Locals("role_name", s.Role)
	c.Locals("email", s.Email)
	if s.UserID != nil {
		c.Locals("user_id", *s.UserID)
	}
}

// AuthRequired rejects API requests without a live session.
func AuthRequired(sessions sessionRepo.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := resolveSession(c, sessions)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Sessão inválida ou expirada"})
		}
		setLocals(c, s)
		return c.Next()
	}
}

// AuthOptional attaches the session when there is one and never rejects.
func AuthOptional(sessions sessionRepo.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s, err := resolveSession(c, sessions); err == nil {
			setLocals(c, s)
		}
		return c.Next()
	}
}

func RoleAllowed(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role_name").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Acesso negado para este perfil"})
	}
}

// DashboardGate redirects page navigation by session state. Any failure to
// establish the session counts as unauthenticated.
func DashboardGate(sessions sessionRepo.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := resolveSession(c, sessions)
		if err != nil {
			if !errors.Is(err, errNoToken) && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
				log.Warnw("session check failed, treating request as unauthenticated",
					"path", c.Path(), "error", err)
			}
			s = nil
		} else {
			setLocals(c, s)
		}

		if target, redirect := Decide(StateOf(s), c.Path()); redirect {
			return c.Redirect(target, fiber.StatusFound)
		}
		return c.Next()
	}
}
