package mocks

import (
	"context"
	"io"

	modelMongo "green-saas/app/models/mongodb"
	models "green-saas/app/models/postgresql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) InsertOne(ctx context.Context, a modelMongo.DeliveryAudit) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAuditRepo) FindLatest(ctx context.Context, limit int64, fallbackOnly bool) ([]modelMongo.DeliveryAudit, error) {
	args := m.Called(ctx, limit, fallbackOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]modelMongo.DeliveryAudit), args.Error(1)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Save(ctx context.Context, s models.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepo) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, r)
	return args.String(0), args.Error(1)
}
