package domain

import "time"

// TrendDirection compares a current price against the trailing average
type TrendDirection string

const (
	TrendAbove TrendDirection = "above"
	TrendBelow TrendDirection = "below"
	TrendAt    TrendDirection = "at"
)

// Trend is the result of comparing a price to recent sales
type Trend struct {
	Direction TrendDirection `json:"direction"`
	Magnitude int            `json:"magnitude"`
	Average   int            `json:"average"`
	Sales     int            `json:"sales"`
}

// MarketState is the persisted pricing epoch
type MarketState struct {
	Epoch     int64     `json:"epoch"`
	Seed      int64     `json:"seed"`
	RotatedAt time.Time `json:"rotated_at"`
}

// MarketQuote is the price of one rarity in the current epoch
type MarketQuote struct {
	Rarity    Rarity `json:"rarity"`
	BasePrice int    `json:"base_price"`
	Price     int    `json:"price"`
	Trend     Trend  `json:"trend"`
}

// MarketReport is the full market view for the current epoch
type MarketReport struct {
	Epoch     int64         `json:"epoch"`
	StartsAt  time.Time     `json:"starts_at"`
	EndsAt    time.Time     `json:"ends_at"`
	Quotes    []MarketQuote `json:"quotes"`
	UpdatedAt time.Time     `json:"updated_at"`
}
