package worker

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/punaab/discord-ts-UQkA/internal/event"
)

type MockResetter struct {
	mock.Mock
}

func (m *MockResetter) ResetDailyQuests(ctx context.Context, boundary time.Time) (int64, error) {
	args := m.Called(ctx, boundary)
	return args.Get(0).(int64), args.Error(1)
}

type MockMarketRotator struct {
	mock.Mock
}

func (m *MockMarketRotator) RotateMarket(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}
