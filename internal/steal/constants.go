package steal

// Error messages
const (
	ErrMsgLoadInventoryFailed = "failed to load target inventory"
	ErrMsgTransferFailed      = "failed to stage fruit transfer"
)

// Log messages
const (
	LogMsgStealCalled    = "Steal called"
	LogMsgStealSucceeded = "Steal succeeded"
	LogMsgStealFailed    = "Steal failed"
)
