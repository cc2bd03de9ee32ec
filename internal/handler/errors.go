package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// Status values for health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDBFailed       = "database connection failed"
)

// Query parameter names
const (
	QueryAccountID = "account_id"
	QueryMetric    = "metric"
	ParamGuildID   = "guildID"
)

// SellAll selects every rarity in a sell request
const SellAll = "all"

// Log messages
const (
	LogMsgRequestFailed    = "Request failed"
	LogMsgRequestDecoded   = "request decoded"
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgMissingParam     = "Missing query parameter"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgOperationSuccess = "Request handled"
)
