package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	FruitsPicked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFruitsPicked,
			Help: HelpTextFruitsPicked,
		},
		[]string{LabelRarity},
	)

	FruitsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFruitsSold,
			Help: HelpTextFruitsSold,
		},
	)

	CoinsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarned,
			Help: HelpTextCoinsEarned,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelTrack},
	)

	StealAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStealAttempts,
			Help: HelpTextStealAttempts,
		},
		[]string{LabelOutcome},
	)

	RewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
		[]string{LabelType},
	)

	QuestsCleared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCleared,
			Help: HelpTextQuestsCleared,
		},
	)

	MarketEpoch = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMarketEpoch,
			Help: HelpTextMarketEpoch,
		},
	)

	FruitStorms = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFruitStorms,
			Help: HelpTextFruitStorms,
		},
	)
)
