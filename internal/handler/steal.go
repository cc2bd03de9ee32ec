package handler

import (
	"net/http"

	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/steal"
)

// HandleSteal attempts to steal one fruit from another player
// @Summary Steal a fruit
// @Tags steal
// @Accept json
// @Produce json
// @Param request body StealRequest true "Steal"
// @Success 200 {object} domain.StealResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/steal [post]
func HandleSteal(svc steal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StealRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Steal"); err != nil {
			return
		}

		res, err := svc.Steal(r.Context(), req.AccountID, req.TargetID)
		if err != nil {
			respondServiceError(w, r, "steal", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgOperationSuccess,
			"operation", "steal", "actor", req.AccountID, "target", req.TargetID, "success", res.Success)
		respondJSON(w, http.StatusOK, res)
	}
}
