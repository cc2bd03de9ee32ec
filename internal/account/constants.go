package account

// Error messages
const (
	ErrMsgLoadAccountFailed   = "failed to load account"
	ErrMsgCreateAccountFailed = "failed to create account"
	ErrMsgSaveAccountFailed   = "failed to save account"
	ErrMsgBeginTxFailed       = "failed to begin transaction"
	ErrMsgCommitFailed        = "failed to commit transaction"
)

// Log messages
const (
	LogMsgAccountCreated       = "Account created"
	LogMsgVersionConflictRetry = "Account changed concurrently, retrying"
)
