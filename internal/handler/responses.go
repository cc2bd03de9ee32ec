package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/punaab/discord-ts-UQkA/internal/cooldown"
	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// ErrorResponse represents an error response. RetryAfterSeconds is only set
// for cooldown errors.
type ErrorResponse struct {
	Error             string `json:"error"`
	RetryAfterSeconds *int   `json:"retry_after_seconds,omitempty"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgRequestFailed, "operation", op, "error", err)
	} else {
		log.Info(LogMsgRequestFailed, "operation", op, "status", status, "error", err)
	}

	resp := ErrorResponse{Error: msg}
	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		secs := int(math.Ceil(cd.Remaining.Seconds()))
		resp.RetryAfterSeconds = &secs
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}
	respondJSON(w, status, resp)
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message safe to show to players. Anything outside the domain taxonomy is a
// 500 with a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var cd cooldown.ErrOnCooldown
	switch {
	case errors.As(err, &cd):
		return http.StatusTooManyRequests, cd.Error()
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, domain.ErrMsgOnCooldown

	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, domain.ErrMsgAccountNotFound
	case errors.Is(err, domain.ErrAchievementNotFound):
		return http.StatusNotFound, domain.ErrMsgAchievementNotFound
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, domain.ErrMsgQuestNotFound
	case errors.Is(err, domain.ErrGuildNotFound):
		return http.StatusNotFound, domain.ErrMsgGuildNotFound
	case errors.Is(err, domain.ErrFruitNotFound):
		return http.StatusNotFound, domain.ErrMsgFruitNotFound

	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, domain.ErrMsgInsufficientFunds

	case errors.Is(err, domain.ErrSelfSteal):
		return http.StatusBadRequest, domain.ErrMsgSelfSteal
	case errors.Is(err, domain.ErrEmptyTargetInventory):
		return http.StatusBadRequest, domain.ErrMsgEmptyTargetInventory
	case errors.Is(err, domain.ErrInvalidRarity):
		return http.StatusBadRequest, domain.ErrMsgInvalidRarity
	case errors.Is(err, domain.ErrInvalidUpgrade):
		return http.StatusBadRequest, domain.ErrMsgInvalidUpgrade
	case errors.Is(err, domain.ErrInvalidCycle):
		return http.StatusBadRequest, domain.ErrMsgInvalidCycle
	case errors.Is(err, domain.ErrInvalidMetric):
		return http.StatusBadRequest, domain.ErrMsgInvalidMetric
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, domain.ErrMsgInvalidInput

	case errors.Is(err, domain.ErrNothingToSell):
		return http.StatusConflict, domain.ErrMsgNothingToSell
	case errors.Is(err, domain.ErrMaxTier):
		return http.StatusConflict, domain.ErrMsgMaxTier
	case errors.Is(err, domain.ErrQuestNotCompleted):
		return http.StatusConflict, domain.ErrMsgQuestNotCompleted
	case errors.Is(err, domain.ErrAchievementNotCompleted):
		return http.StatusConflict, domain.ErrMsgAchievementNotCompleted
	case errors.Is(err, domain.ErrAchievementAlreadyClaimed):
		return http.StatusConflict, domain.ErrMsgAchievementAlreadyClaimed
	case errors.Is(err, domain.ErrVersionConflict):
		return http.StatusConflict, domain.ErrMsgVersionConflict
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
