package service

import (
	models "green-saas/app/models/postgresql"
	repo "green-saas/app/repository/postgresql"
	"green-saas/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// === POST /users (admin) ===
func (s *UserService) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de requisição inválido"})
	}

	req.Email = utils.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email e senha são obrigatórios"})
	}
	if len(req.Password) < utils.MinPasswordLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A senha deve ter pelo menos 8 caracteres"})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao processar senha"})
	}

	user, err := s.repo.Create(c.Context(), models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
	})
	if err != nil {
		if repo.IsUniqueViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Já existe uma conta com este email"})
		}
		log.Errorw("failed to create user", "email", req.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": user})
}
