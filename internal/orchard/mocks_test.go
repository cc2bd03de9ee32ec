package orchard

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/event"
)

// MockPublisher records published events
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

// MockInventoryRepository fails inventory reads on demand
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) GetUnsoldFruits(ctx context.Context, ownerKey string) ([]*domain.Fruit, error) {
	args := m.Called(ctx, ownerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Fruit), args.Error(1)
}

func (m *MockInventoryRepository) CountUnsoldFruits(ctx context.Context, ownerKey string) (int, error) {
	args := m.Called(ctx, ownerKey)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) GetSalesSince(ctx context.Context, since time.Time) ([]*domain.Fruit, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Fruit), args.Error(1)
}
