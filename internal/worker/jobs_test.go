package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

func TestMarketRotationJob(t *testing.T) {
	tests := []struct {
		name    string
		rotated bool
		err     error
	}{
		{"rotated", true, nil},
		{"same epoch", false, nil},
		{"store failure", false, errors.New("db down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			market := new(MockMarketRotator)
			market.On("RotateMarket", mock.Anything).Return(tt.rotated, tt.err).Once()

			err := NewMarketRotationJob(market).Process(context.Background())

			assert.Equal(t, tt.err, err)
			market.AssertExpectations(t)
		})
	}
}

func TestFruitStormJob(t *testing.T) {
	t.Run("roll under chance publishes", func(t *testing.T) {
		pub := new(MockPublisher)
		pub.On("PublishWithRetry", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			return e.Type == event.FruitStorm
		})).Once()
		job := NewFruitStormJob(pub, utils.NewSequenceRandom([]float64{0.29}, nil), 0.3)

		assert.NoError(t, job.Process(context.Background()))
		pub.AssertExpectations(t)
	})

	t.Run("roll at chance is a miss", func(t *testing.T) {
		pub := new(MockPublisher)
		job := NewFruitStormJob(pub, utils.NewSequenceRandom([]float64{0.3}, nil), 0.3)

		assert.NoError(t, job.Process(context.Background()))
		pub.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything)
	})

	t.Run("nil publisher is tolerated", func(t *testing.T) {
		job := NewFruitStormJob(nil, utils.NewSequenceRandom([]float64{0}, nil), 0.3)
		assert.NoError(t, job.Process(context.Background()))
	})
}
