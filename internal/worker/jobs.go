package worker

import (
	"context"

	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

// MarketRotator advances the market epoch when a pricing window has passed
type MarketRotator interface {
	RotateMarket(ctx context.Context) (bool, error)
}

// MarketRotationJob rotates the market on each run
type MarketRotationJob struct {
	market MarketRotator
}

// NewMarketRotationJob creates a new MarketRotationJob
func NewMarketRotationJob(market MarketRotator) *MarketRotationJob {
	return &MarketRotationJob{market: market}
}

func (j *MarketRotationJob) Process(ctx context.Context) error {
	rotated, err := j.market.RotateMarket(ctx)
	if err != nil {
		return err
	}
	if rotated {
		logger.FromContext(ctx).Info(LogMsgMarketRotated)
	} else {
		logger.FromContext(ctx).Debug(LogMsgMarketUnchanged)
	}
	return nil
}

// FruitStormJob announces a fruit storm with a fixed probability per run.
// The storm is an announcement only; it does not change any rates.
type FruitStormJob struct {
	publisher event.Publisher
	rnd       utils.Random
	chance    float64
}

// NewFruitStormJob creates a new FruitStormJob
func NewFruitStormJob(publisher event.Publisher, rnd utils.Random, chance float64) *FruitStormJob {
	return &FruitStormJob{publisher: publisher, rnd: rnd, chance: chance}
}

func (j *FruitStormJob) Process(ctx context.Context) error {
	roll := j.rnd.Float64()
	log := logger.FromContext(ctx)
	if roll >= j.chance {
		log.Debug(LogMsgFruitStormMissed, "roll", roll, "chance", j.chance)
		return nil
	}
	log.Info(LogMsgFruitStorm, "roll", roll)
	if j.publisher != nil {
		j.publisher.PublishWithRetry(ctx, event.NewFruitStormEvent(roll))
	}
	return nil
}
