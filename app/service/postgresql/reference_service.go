package service

import (
	models "green-saas/app/models/postgresql"
	repo "green-saas/app/repository/postgresql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type ReferenceService struct {
	repo repo.ReferenceRepository
}

func NewReferenceService(r repo.ReferenceRepository) *ReferenceService {
	return &ReferenceService{repo: r}
}

func (s *ReferenceService) GetUnits(c *fiber.Ctx) error {
	units, err := s.repo.GetUnits(c.Context())
	if err != nil {
		log.Errorw("failed to list units", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar unidades"})
	}
	return c.JSON(fiber.Map{"data": units})
}

func (s *ReferenceService) GetCourses(c *fiber.Ctx) error {
	courses, err := s.repo.GetActiveCourses(c.Context())
	if err != nil {
		log.Errorw("failed to list courses", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar cursos"})
	}
	return c.JSON(fiber.Map{"data": courses})
}

func (s *ReferenceService) GetClasses(c *fiber.Ctx) error {
	var q models.ClassQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parâmetros de consulta inválidos"})
	}

	classes, err := s.repo.GetClasses(c.Context(), q)
	if err != nil {
		if repo.IsRateLimited(err) {
			log.Warnw("database refused connection: too many clients", "error", err)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Muitas requisições. Por favor, tente novamente em alguns instantes.",
			})
		}
		log.Errorw("failed to list classes", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar turmas"})
	}
	return c.JSON(fiber.Map{"data": classes})
}
