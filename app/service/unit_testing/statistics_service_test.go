package service_test

import (
	"testing"

	models "green-saas/app/models/postgresql"
	"green-saas/app/repository/mocks"
	"green-saas/app/service/postgresql"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAggregateStatistics(t *testing.T) {
	t.Run("Success: PET and Aluminium share of weight", func(t *testing.T) {
		stats := service.AggregateStatistics([]models.Delivery{
			{MaterialType: "PET", QuantityKg: 20.5, Points: 1025},
			{MaterialType: "Alumínio", QuantityKg: 15.0, Points: 1200},
		})

		assert.InDelta(t, 35.5, stats.TotalKg, 1e-9)
		assert.Equal(t, 2, stats.TotalCount)
		assert.Equal(t, 2225, stats.TotalPoints)
		require.Len(t, stats.PerMaterial, 4)
		assert.Equal(t, "PET", stats.PerMaterial[0].Type)
		assert.InDelta(t, 57.7, stats.PerMaterial[0].Percent, 0.05)
		assert.Equal(t, "Alumínio", stats.PerMaterial[1].Type)
		assert.InDelta(t, 42.3, stats.PerMaterial[1].Percent, 0.05)
		assert.Zero(t, stats.PerMaterial[2].Percent)
		assert.Zero(t, stats.PerMaterial[3].Percent)
	})

	t.Run("Success: Empty input gives zeroed canonical materials", func(t *testing.T) {
		stats := service.AggregateStatistics(nil)

		assert.Zero(t, stats.TotalKg)
		assert.Zero(t, stats.TotalCount)
		require.Len(t, stats.PerMaterial, 4)
		for _, m := range stats.PerMaterial {
			assert.Zero(t, m.Percent)
			assert.Zero(t, m.Count)
		}
	})

	t.Run("Success: Unknown types land in Outros", func(t *testing.T) {
		stats := service.AggregateStatistics([]models.Delivery{
			{MaterialType: "Isopor", QuantityKg: 1},
			{MaterialType: "", QuantityKg: 1},
			{MaterialType: "Vidro", QuantityKg: 2},
		})

		require.Len(t, stats.PerMaterial, 5)
		other := stats.PerMaterial[4]
		assert.Equal(t, models.MaterialOther, other.Type)
		assert.Equal(t, 2, other.Count)
		assert.Equal(t, 20, other.TotalPoints)
		assert.InDelta(t, 50.0, stats.PerMaterial[2].Percent, 1e-9)
	})

	t.Run("Success: Stored points win over recomputed ones", func(t *testing.T) {
		stats := service.AggregateStatistics([]models.Delivery{
			{MaterialType: "PET", QuantityKg: 1, Points: 999},
			{MaterialType: "PET", QuantityKg: 1},
		})

		assert.Equal(t, 999+50, stats.TotalPoints)
	})

	t.Run("Success: Percentages sum to 100", func(t *testing.T) {
		stats := service.AggregateStatistics([]models.Delivery{
			{MaterialType: "PET", QuantityKg: 3.3},
			{MaterialType: "Alumínio", QuantityKg: 1.1},
			{MaterialType: "Vidro", QuantityKg: 7.7},
			{MaterialType: "Papel", QuantityKg: 0.4},
			{MaterialType: "Madeira", QuantityKg: 2.2},
		})

		var sum float64
		for _, m := range stats.PerMaterial {
			sum += m.Percent
		}
		assert.InDelta(t, 100.0, sum, 1e-9)
	})
}

func TestGetStatistics(t *testing.T) {
	t.Run("Success: Class slug normalized and counted statuses applied", func(t *testing.T) {
		repoMock := new(mocks.MockDeliveryRepo)
		svc := service.NewStatisticsService(repoMock, testConfig(false))
		app := setupApp()
		app.Get("/statistics", svc.GetStatistics)

		repoMock.On("List", mock.Anything, mock.MatchedBy(func(f models.DeliveryFilter) bool {
			return f.Class == "Turma B" && f.Course == "" && len(f.Statuses) == 2
		})).Return([]models.Delivery{{MaterialType: "PET", QuantityKg: 2, Points: 100}}, nil)

		resp, _ := app.Test(jsonRequest("GET", "/statistics?turma=turma-b&curso=todos", nil))

		assert.Equal(t, 200, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, float64(1), body["total_count"])
		assert.Equal(t, float64(100), body["total_points"])
		assert.Nil(t, body["fallback"])
		repoMock.AssertExpectations(t)
	})

	t.Run("Success: Demo fixture for Turma B", func(t *testing.T) {
		repoMock := new(mocks.MockDeliveryRepo)
		svc := service.NewStatisticsService(repoMock, testConfig(true))
		app := setupApp()
		app.Get("/statistics", svc.GetStatistics)

		repoMock.On("List", mock.Anything, mock.Anything).Return(nil, &pq.Error{Code: "42501"})

		resp, _ := app.Test(jsonRequest("GET", "/statistics?turma=turma-b", nil))

		assert.Equal(t, 200, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["fallback"])
		assert.Equal(t, float64(12), body["total_count"])
		assert.Equal(t, 45.5, body["total_kg"])
		assert.Equal(t, float64(2250), body["total_points"])
	})

	t.Run("Success: Demo zeros for other classes", func(t *testing.T) {
		repoMock := new(mocks.MockDeliveryRepo)
		svc := service.NewStatisticsService(repoMock, testConfig(true))
		app := setupApp()
		app.Get("/statistics", svc.GetStatistics)

		repoMock.On("List", mock.Anything, mock.Anything).Return(nil, &pq.Error{Code: "42P01"})

		resp, _ := app.Test(jsonRequest("GET", "/statistics?turma=turma-a", nil))

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["fallback"])
		assert.Equal(t, float64(0), body["total_count"])
		assert.Len(t, body["per_material"], 4)
	})

	t.Run("Error: Database failure outside demo mode", func(t *testing.T) {
		repoMock := new(mocks.MockDeliveryRepo)
		svc := service.NewStatisticsService(repoMock, testConfig(false))
		app := setupApp()
		app.Get("/statistics", svc.GetStatistics)

		repoMock.On("List", mock.Anything, mock.Anything).Return(nil, &pq.Error{Code: "42501"})

		resp, _ := app.Test(jsonRequest("GET", "/statistics", nil))

		assert.Equal(t, 500, resp.StatusCode)
	})
}
