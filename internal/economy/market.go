package economy

import (
	"math"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
)

// EpochAt returns the pricing epoch containing t
func EpochAt(t time.Time) int64 {
	return t.Unix() / int64(MarketEpochLength/time.Second)
}

// EpochStart returns when epoch begins
func EpochStart(epoch int64) time.Time {
	return time.Unix(epoch*int64(MarketEpochLength/time.Second), 0).UTC()
}

// epochSeed mixes the persisted market seed with the epoch number
func epochSeed(seed, epoch int64) int64 {
	return seed*6364136223846793005 + epoch*1442695040888963407
}

// PricesFor samples one multiplier per rarity inside its band. The result
// is a pure function of (seed, epoch), so every caller in the same epoch
// sees the same prices.
func PricesFor(seed, epoch int64) map[domain.Rarity]int {
	rnd := utils.NewRandom(epochSeed(seed, epoch))
	prices := make(map[domain.Rarity]int, len(domain.Rarities))
	for _, r := range domain.Rarities {
		band := MarketBands[r]
		mult := band.Min + rnd.Float64()*(band.Max-band.Min)
		prices[r] = int(math.Floor(float64(MarketBasePrices[r]) * mult))
	}
	return prices
}

// TradeTrend compares price against the mean sale price of rarity in
// sales. With no matching sales the base price stands in for the average.
func TradeTrend(rarity domain.Rarity, price int, sales []*domain.Fruit) domain.Trend {
	sum, count := 0, 0
	for _, s := range sales {
		if !s.Sold || s.Rarity != rarity {
			continue
		}
		sum += s.SoldFor
		count++
	}

	avg := MarketBasePrices[rarity]
	if count > 0 {
		avg = sum / count
	}

	trend := domain.Trend{Average: avg, Sales: count}
	switch {
	case price > avg:
		trend.Direction = domain.TrendAbove
		trend.Magnitude = price - avg
	case price < avg:
		trend.Direction = domain.TrendBelow
		trend.Magnitude = avg - price
	default:
		trend.Direction = domain.TrendAt
	}
	return trend
}

// BuildMarketReport prices every rarity for the epoch containing now and
// attaches the trend over sales
func BuildMarketReport(seed int64, now time.Time, sales []*domain.Fruit) *domain.MarketReport {
	epoch := EpochAt(now)
	prices := PricesFor(seed, epoch)

	report := &domain.MarketReport{
		Epoch:     epoch,
		StartsAt:  EpochStart(epoch),
		EndsAt:    EpochStart(epoch + 1),
		Quotes:    make([]domain.MarketQuote, 0, len(domain.Rarities)),
		UpdatedAt: now,
	}
	for _, r := range domain.Rarities {
		report.Quotes = append(report.Quotes, domain.MarketQuote{
			Rarity:    r,
			BasePrice: MarketBasePrices[r],
			Price:     prices[r],
			Trend:     TradeTrend(r, prices[r], sales),
		})
	}
	return report
}

// PriceNames renders prices keyed by rarity name for event payloads
func PriceNames(prices map[domain.Rarity]int) map[string]int {
	out := make(map[string]int, len(prices))
	for r, p := range prices {
		out[r.String()] = p
	}
	return out
}
