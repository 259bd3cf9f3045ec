package service

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"green-saas/app/storage"
	"green-saas/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type UploadService struct {
	store storage.ImageStore
	cfg   *config.Config
}

// NewUploadService accepts a nil store when no bucket is configured.
func NewUploadService(store storage.ImageStore, cfg *config.Config) *UploadService {
	return &UploadService{store: store, cfg: cfg}
}

// === POST /upload ===
func (s *UploadService) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nenhum arquivo fornecido"})
	}

	contentType := file.Header.Get(fiber.HeaderContentType)
	if !storage.IsAllowedImage(contentType) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "O bucket aceita apenas imagens",
			"code":  "STORAGE_POLICY_VIOLATION",
		})
	}

	if s.store == nil {
		if s.cfg.DemoMode {
			log.Warnw("demo mode: no image storage configured, returning placeholder", "file", file.Filename)
			return c.JSON(fiber.Map{
				"success":  true,
				"url":      "/placeholder.svg?height=400&width=600&query=" + url.QueryEscape("recycling material "+file.Filename),
				"fallback": true,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Armazenamento de imagens não configurado"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Não foi possível ler o arquivo"})
	}
	defer src.Close()

	key := "entregas/" + uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))

	fileURL, err := s.store.Upload(c.Context(), key, contentType, src)
	if err != nil {
		if errors.Is(err, storage.ErrPolicyViolation) {
			log.Warnw("bucket refused upload", "key", key, "error", err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Permissão negada para upload. Verifique as políticas de segurança do bucket.",
				"code":  "STORAGE_POLICY_VIOLATION",
			})
		}
		log.Errorw("failed to upload image", "key", key, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao enviar imagem"})
	}

	return c.JSON(fiber.Map{"success": true, "url": fileURL})
}
