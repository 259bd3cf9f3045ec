package service_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"green-saas/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	return fiber.New()
}

func testConfig(demo bool) *config.Config {
	return &config.Config{
		DemoMode:     demo,
		DemoPassword: "12345678",
		SessionTTL:   time.Hour,
	}
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewBuffer(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
