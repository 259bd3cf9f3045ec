package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	models "green-saas/app/models/postgresql"
	sessionRepo "green-saas/app/repository/badger"
	"green-saas/app/repository/mocks"
	"green-saas/middleware"
	"green-saas/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name     string
		state    middleware.SessionState
		path     string
		target   string
		redirect bool
	}{
		{"anonymous on login", middleware.Unauthenticated, "/", "", false},
		{"anonymous on dashboard", middleware.Unauthenticated, "/dashboard", "/", true},
		{"anonymous on student area", middleware.Unauthenticated, "/dashboard/aluno", "/", true},
		{"anonymous outside dashboard", middleware.Unauthenticated, "/static/logo.png", "", false},
		{"anonymous on lookalike prefix", middleware.Unauthenticated, "/dashboardx", "", false},
		{"student on login", middleware.AuthenticatedStudent, "/", "/dashboard/aluno", true},
		{"student on admin home", middleware.AuthenticatedStudent, "/dashboard", "/dashboard/aluno", true},
		{"student on admin page", middleware.AuthenticatedStudent, "/dashboard/ranking", "/dashboard/aluno", true},
		{"student on own area", middleware.AuthenticatedStudent, "/dashboard/aluno/", "", false},
		{"student on help", middleware.AuthenticatedStudent, "/dashboard/ajuda", "", false},
		{"student on new delivery", middleware.AuthenticatedStudent, "/dashboard/nova-entrega", "", false},
		{"admin on login", middleware.AuthenticatedAdmin, "/", "/dashboard", true},
		{"admin on student area", middleware.AuthenticatedAdmin, "/dashboard/aluno", "/dashboard", true},
		{"admin on admin page", middleware.AuthenticatedAdmin, "/dashboard/ranking", "", false},
		{"admin on help", middleware.AuthenticatedAdmin, "/dashboard/ajuda", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			target, redirect := middleware.Decide(tc.state, tc.path)
			assert.Equal(t, tc.redirect, redirect)
			assert.Equal(t, tc.target, target)
		})
	}
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, middleware.Unauthenticated, middleware.StateOf(nil))
	assert.Equal(t, middleware.AuthenticatedStudent, middleware.StateOf(&models.Session{Role: models.RoleStudent}))
	assert.Equal(t, middleware.AuthenticatedAdmin, middleware.StateOf(&models.Session{Role: models.RoleAdmin}))
	assert.Equal(t, middleware.Unauthenticated, middleware.StateOf(&models.Session{Role: "visitante"}))
}

func gateApp(sessions sessionRepo.SessionRepository) *fiber.App {
	app := fiber.New()
	app.Use(middleware.DashboardGate(sessions))
	app.Get("/*", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestDashboardGate(t *testing.T) {
	t.Run("No cookie redirects to login", func(t *testing.T) {
		sessions := new(mocks.MockSessionRepo)

		resp, _ := gateApp(sessions).Test(httptest.NewRequest("GET", "/dashboard", nil))

		assert.Equal(t, 302, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
		sessions.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Forged token fails closed", func(t *testing.T) {
		sessions := new(mocks.MockSessionRepo)
		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.Header.Set("Cookie", middleware.SessionCookie+"=not-a-token")

		resp, _ := gateApp(sessions).Test(req)

		assert.Equal(t, 302, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	})

	t.Run("Revoked session fails closed", func(t *testing.T) {
		sessions := new(mocks.MockSessionRepo)
		session := &models.Session{ID: uuid.New(), Role: models.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
		token, err := utils.GenerateSessionToken(session)
		require.NoError(t, err)
		sessions.On("Get", mock.Anything, session.ID).Return(nil, sessionRepo.ErrSessionNotFound)

		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.Header.Set("Cookie", middleware.SessionCookie+"="+token)
		resp, _ := gateApp(sessions).Test(req)

		assert.Equal(t, 302, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	})

	t.Run("Student sent to own home", func(t *testing.T) {
		sessions := new(mocks.MockSessionRepo)
		session := &models.Session{ID: uuid.New(), Role: models.RoleStudent, ExpiresAt: time.Now().Add(time.Hour)}
		token, err := utils.GenerateSessionToken(session)
		require.NoError(t, err)
		sessions.On("Get", mock.Anything, session.ID).Return(session, nil)

		req := httptest.NewRequest("GET", "/dashboard/ranking", nil)
		req.Header.Set("Cookie", middleware.SessionCookie+"="+token)
		resp, _ := gateApp(sessions).Test(req)

		assert.Equal(t, 302, resp.StatusCode)
		assert.Equal(t, "/dashboard/aluno", resp.Header.Get("Location"))
	})

	t.Run("Admin passes through", func(t *testing.T) {
		sessions := new(mocks.MockSessionRepo)
		session := &models.Session{ID: uuid.New(), Role: models.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
		token, err := utils.GenerateSessionToken(session)
		require.NoError(t, err)
		sessions.On("Get", mock.Anything, session.ID).Return(session, nil)

		req := httptest.NewRequest("GET", "/dashboard/ranking", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := gateApp(sessions).Test(req)

		assert.Equal(t, 200, resp.StatusCode)
	})
}

func TestRoleAllowed(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		c.Locals("role_name", c.Query("role"))
		return c.Next()
	}, middleware.RoleAllowed(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/admin?role=instituicao", nil))
	assert.Equal(t, 204, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest("GET", "/admin?role=aluno", nil))
	assert.Equal(t, 403, resp.StatusCode)
}
