package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameFruitsPicked      = "orchard_fruits_picked_total"
	MetricNameFruitsSold        = "orchard_fruits_sold_total"
	MetricNameCoinsEarned       = "orchard_coins_earned_total"
	MetricNameLevelUps          = "orchard_level_ups_total"
	MetricNameUpgradesPurchased = "orchard_upgrades_purchased_total"
	MetricNameStealAttempts     = "orchard_steal_attempts_total"
	MetricNameRewardsClaimed    = "orchard_rewards_claimed_total"
	MetricNameQuestsCleared     = "orchard_daily_quests_cleared_total"
	MetricNameMarketEpoch       = "orchard_market_epoch"
	MetricNameFruitStorms       = "orchard_fruit_storms_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextFruitsPicked      = "Total number of fruits picked, by rarity"
	HelpTextFruitsSold        = "Total number of fruits sold"
	HelpTextCoinsEarned       = "Total coins earned from selling fruit"
	HelpTextLevelUps          = "Total number of level ups"
	HelpTextUpgradesPurchased = "Total number of upgrade tiers purchased, by track"
	HelpTextStealAttempts     = "Total number of steal attempts, by outcome"
	HelpTextRewardsClaimed    = "Total number of quest, achievement and daily claims"
	HelpTextQuestsCleared     = "Total number of daily quests cleared by the reset job"
	HelpTextMarketEpoch       = "Current market price epoch"
	HelpTextFruitStorms       = "Total number of fruit storms announced"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelRarity  = "rarity"
	LabelTrack   = "track"
	LabelOutcome = "outcome"
)

// Steal outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// UnmatchedRoute labels requests that did not hit a registered route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
