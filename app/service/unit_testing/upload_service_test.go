package service_test

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"green-saas/app/repository/mocks"
	"green-saas/app/service/postgresql"
	"green-saas/app/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func uploadRequest(filename, contentType string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, _ := writer.CreatePart(header)
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	t.Run("Success: Image stored under entregas/", func(t *testing.T) {
		store := new(mocks.MockImageStore)
		svc := service.NewUploadService(store, testConfig(false))
		app := setupApp()
		app.Post("/upload", svc.UploadImage)

		store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "entregas/") && strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything).Return("https://f000.backblazeb2.com/file/green/entregas/x.png", nil)

		resp, _ := app.Test(uploadRequest("garrafa.PNG", "image/png", []byte("png-bytes")))

		assert.Equal(t, 200, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "https://f000.backblazeb2.com/file/green/entregas/x.png", body["url"])
		store.AssertExpectations(t)
	})

	t.Run("Error: Non-image rejected before upload", func(t *testing.T) {
		store := new(mocks.MockImageStore)
		svc := service.NewUploadService(store, testConfig(false))
		app := setupApp()
		app.Post("/upload", svc.UploadImage)

		resp, _ := app.Test(uploadRequest("notas.pdf", "application/pdf", []byte("%PDF")))

		assert.Equal(t, 403, resp.StatusCode)
		assert.Equal(t, "STORAGE_POLICY_VIOLATION", decodeBody(t, resp)["code"])
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error: Bucket policy refusal", func(t *testing.T) {
		store := new(mocks.MockImageStore)
		svc := service.NewUploadService(store, testConfig(false))
		app := setupApp()
		app.Post("/upload", svc.UploadImage)

		store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", fmt.Errorf("b2: %w", storage.ErrPolicyViolation))

		resp, _ := app.Test(uploadRequest("lata.jpg", "image/jpeg", []byte("jpg")))

		assert.Equal(t, 403, resp.StatusCode)
		assert.Equal(t, "STORAGE_POLICY_VIOLATION", decodeBody(t, resp)["code"])
	})

	t.Run("Error: Storage failure", func(t *testing.T) {
		store := new(mocks.MockImageStore)
		svc := service.NewUploadService(store, testConfig(false))
		app := setupApp()
		app.Post("/upload", svc.UploadImage)

		store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("timeout"))

		resp, _ := app.Test(uploadRequest("lata.jpg", "image/jpeg", []byte("jpg")))

		assert.Equal(t, 500, resp.StatusCode)
	})

	t.Run("Error: No file", func(t *testing.T) {
		svc := service.NewUploadService(nil, testConfig(true))
		app := setupApp()
		app.Post("/upload", svc.UploadImage)

		resp, _ := app.Test(jsonRequest("POST", "/upload", map[string]string{}))

		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Success: Demo placeholder without storage", func(t *testing.T) {
		svc := service.NewUploadService(nil, testConfig(true))
		app := setupApp()
		app.Post("/upload", svc.UploadImage)

		resp, _ := app.Test(uploadRequest("vidro.webp", "image/webp", []byte("webp")))

		assert.Equal(t, 200, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["fallback"])
		assert.True(t, strings.HasPrefix(body["url"].(string), "/placeholder.svg"))
	})

	t.Run("Error: No storage outside demo mode", func(t *testing.T) {
		svc := service.NewUploadService(nil, testConfig(false))
		app := setupApp()
		app.Post("/upload", svc.UploadImage)

		resp, _ := app.Test(uploadRequest("vidro.webp", "image/webp", []byte("webp")))

		assert.Equal(t, 500, resp.StatusCode)
	})
}
