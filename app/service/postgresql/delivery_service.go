package service

import (
	"context"
	"math"
	"time"

	modelMongo "green-saas/app/models/mongodb"
	models "green-saas/app/models/postgresql"
	repoMongo "green-saas/app/repository/mongodb"
	repo "green-saas/app/repository/postgresql"
	"green-saas/config"
	"green-saas/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type DeliveryService struct {
	repo  repo.DeliveryRepository
	audit repoMongo.AuditRepository
	cfg   *config.Config
}

// NewDeliveryService accepts a nil audit repository when MongoDB is not
// configured.
func NewDeliveryService(r repo.DeliveryRepository, a repoMongo.AuditRepository, cfg *config.Config) *DeliveryService {
	return &DeliveryService{repo: r, audit: a, cfg: cfg}
}

// validationError names the first offending field of a submission.
type validationError struct {
	Field   string
	Message string
}

func validateDelivery(req models.DeliveryRequest) *validationError {
	if req.ImageURL == "" {
		return &validationError{"imagem_url", "URL da imagem é obrigatória"}
	}
	q := req.QuantityKg
	if !q.Present || !q.Valid || math.IsNaN(q.Value) || math.IsInf(q.Value, 0) || q.Value <= 0 {
		return &validationError{"quantidade", "Quantidade deve ser um número positivo"}
	}
	if req.MaterialType == "" {
		return &validationError{"tipo_residuo", "Tipo de resíduo é obrigatório"}
	}
	if req.Course == "" {
		return &validationError{"curso", "Curso é obrigatório"}
	}
	if req.Class == "" {
		return &validationError{"turma", "Turma é obrigatória"}
	}
	if req.Unit == "" {
		return &validationError{"unidade", "Unidade é obrigatória"}
	}
	return nil
}

// === POST /deliveries ===
func (s *DeliveryService) CreateDelivery(c *fiber.Ctx) error {
	ctx := c.Context()

	var req models.DeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	if verr := validateDelivery(req); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
			"field": verr.Field,
		})
	}

	d := models.Delivery{
		ImageURL:     req.ImageURL,
		QuantityKg:   req.QuantityKg.Value,
		MaterialType: req.MaterialType,
		Course:       req.Course,
		Class:        req.Class,
		Unit:         req.Unit,
		Points:       utils.CalculatePoints(req.QuantityKg.Value, req.MaterialType),
		Status:       models.StatusPending,
	}
	if uid, ok := c.Locals("user_id").(uuid.UUID); ok {
		d.UserID = &uid
	}
	email, _ := c.Locals("email").(string)

	created, err := s.repo.Create(ctx, d)
	if err != nil {
		if s.cfg.DemoMode && repo.IsInsertRejected(err) {
			d.ID = time.Now().UnixMilli()
			d.DeliveredAt = time.Now()
			log.Warnw("demo mode: insert rejected, answering with a synthetic delivery",
				"code", repo.ErrorCode(err), "synthetic_id", d.ID)
			s.record(ctx, d, email, true, err.Error())

			return c.Status(fiber.StatusCreated).JSON(fiber.Map{
				"success":  true,
				"data":     []models.Delivery{d},
				"fallback": true,
			})
		}

		log.Errorw("failed to save delivery", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao salvar entrega"})
	}

	s.record(ctx, created, email, false, "")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    []models.Delivery{created},
	})
}

// record writes the audit document. Audit failures never fail a submission.
func (s *DeliveryService) record(ctx context.Context, d models.Delivery, email string, fallback bool, reason string) {
	if s.audit == nil {
		return
	}
	err := s.audit.InsertOne(ctx, modelMongo.DeliveryAudit{
		DeliveryID:   d.ID,
		MaterialType: d.MaterialType,
		QuantityKg:   d.QuantityKg,
		Points:       d.Points,
		Class:        d.Class,
		Course:       d.Course,
		Unit:         d.Unit,
		UserEmail:    email,
		Fallback:     fallback,
		Reason:       reason,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		log.Warnw("failed to write delivery audit", "delivery", d.ID, "error", err)
	}
}

// === GET /deliveries ===
func (s *DeliveryService) GetDeliveries(c *fiber.Ctx) error {
	var filter models.DeliveryFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parâmetros de consulta inválidos"})
	}
	filter = dropAllFilters(filter)

	deliveries, err := s.repo.List(c.Context(), filter)
	if err != nil {
		if s.cfg.DemoMode && repo.IsUnavailable(err) {
			log.Warnw("demo mode: deliveries unavailable, serving fixture", "code", repo.ErrorCode(err))
			return c.JSON(fiber.Map{"data": demoDeliveries(time.Now()), "fallback": true})
		}
		log.Errorw("failed to list deliveries", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao buscar entregas"})
	}

	return c.JSON(fiber.Map{"data": deliveries})
}

func dropAllFilters(f models.DeliveryFilter) models.DeliveryFilter {
	if utils.IsAllFilter(f.Class) {
		f.Class = ""
	}
	if utils.IsAllFilter(f.Course) {
		f.Course = ""
	}
	if utils.IsAllFilter(f.Unit) {
		f.Unit = ""
	}
	return f
}
