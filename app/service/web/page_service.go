package service

import (
	models "green-saas/app/models/postgresql"

	"github.com/gofiber/fiber/v2"
)

// PageService renders the dashboard shell. Data is loaded by the pages
// themselves from the JSON API.
type PageService struct{}

func NewPageService() *PageService {
	return &PageService{}
}

func (s *PageService) Login(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Green SaaS",
	})
}

// Page renders a dashboard template with the caller's session.
func (s *PageService) Page(template, title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, _ := c.Locals("session").(*models.Session)
		return c.Render(template, fiber.Map{
			"Title":   title + " - Green SaaS",
			"Session": session,
		}, "layouts/dashboard")
	}
}
