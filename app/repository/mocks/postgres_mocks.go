package mocks

import (
	"context"

	models "green-saas/app/models/postgresql"

	"github.com/stretchr/testify/mock"
)

// --- DeliveryRepository ---

type MockDeliveryRepo struct {
	mock.Mock
}

func (m *MockDeliveryRepo) Create(ctx context.Context, d models.Delivery) (models.Delivery, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(models.Delivery), args.Error(1)
}

func (m *MockDeliveryRepo) List(ctx context.Context, filter models.DeliveryFilter) ([]models.Delivery, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Delivery), args.Error(1)
}

// --- RankingRepository ---

type MockRankingRepo struct {
	mock.Mock
}

func (m *MockRankingRepo) FromView(ctx context.Context, filter models.DeliveryFilter) ([]models.RankingRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RankingRow), args.Error(1)
}

func (m *MockRankingRepo) FromDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]models.RankingRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RankingRow), args.Error(1)
}

// --- ReferenceRepository ---

type MockReferenceRepo struct {
	mock.Mock
}

func (m *MockReferenceRepo) GetUnits(ctx context.Context) ([]models.Unit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Unit), args.Error(1)
}

func (m *MockReferenceRepo) GetActiveCourses(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockReferenceRepo) GetClasses(ctx context.Context, q models.ClassQuery) ([]models.Class, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Class), args.Error(1)
}

// --- UserRepository ---

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindAllowed(ctx context.Context, email string) (*models.AllowedUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AllowedUser), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(models.User), args.Error(1)
}
