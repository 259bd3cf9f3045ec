package service_test

import (
	"errors"
	"testing"

	models "green-saas/app/models/postgresql"
	"green-saas/app/repository/mocks"
	"green-saas/app/service/postgresql"
	"green-saas/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateUser(t *testing.T) {
	t.Run("Success: Email lowercased and password hashed", func(t *testing.T) {
		repoMock := new(mocks.MockUserRepo)
		svc := service.NewUserService(repoMock)
		app := setupApp()
		app.Post("/users", svc.CreateUser)

		repoMock.On("Create", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Email == "novo@unama.br" && utils.CheckPasswordHash("segredo123", u.PasswordHash)
		})).Return(models.User{ID: uuid.New(), Email: "novo@unama.br", FullName: "Novo"}, nil)

		resp, _ := app.Test(jsonRequest("POST", "/users", map[string]string{
			"email":    "  Novo@Unama.BR ",
			"password": "segredo123",
			"fullName": "Novo",
		}))

		assert.Equal(t, 201, resp.StatusCode)
		body := decodeBody(t, resp)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "novo@unama.br", data["email"])
		assert.NotContains(t, data, "password_hash")
		repoMock.AssertExpectations(t)
	})

	cases := []struct {
		name    string
		payload interface{}
	}{
		{"Error: Missing email", map[string]string{"password": "segredo123"}},
		{"Error: Short password", map[string]string{"email": "a@b.c", "password": "curta"}},
		{"Error: Malformed body", "{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repoMock := new(mocks.MockUserRepo)
			svc := service.NewUserService(repoMock)
			app := setupApp()
			app.Post("/users", svc.CreateUser)

			resp, _ := app.Test(jsonRequest("POST", "/users", tc.payload))

			assert.Equal(t, 400, resp.StatusCode)
			repoMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("Error: Duplicate email", func(t *testing.T) {
		repoMock := new(mocks.MockUserRepo)
		svc := service.NewUserService(repoMock)
		app := setupApp()
		app.Post("/users", svc.CreateUser)

		repoMock.On("Create", mock.Anything, mock.Anything).Return(models.User{}, &pq.Error{Code: "23505"})

		resp, _ := app.Test(jsonRequest("POST", "/users", map[string]string{"email": "a@b.c", "password": "segredo123"}))

		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Error: Database failure", func(t *testing.T) {
		repoMock := new(mocks.MockUserRepo)
		svc := service.NewUserService(repoMock)
		app := setupApp()
		app.Post("/users", svc.CreateUser)

		repoMock.On("Create", mock.Anything, mock.Anything).Return(models.User{}, errors.New("connection reset"))

		resp, _ := app.Test(jsonRequest("POST", "/users", map[string]string{"email": "a@b.c", "password": "segredo123"}))

		assert.Equal(t, 500, resp.StatusCode)
	})
}
