package steal

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/punaab/discord-ts-UQkA/internal/event"
)

// MockPublisher records published events
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}
