package handler

import (
	"net/http"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/quest"
)

// QuestHandlers serves the quest board and achievement endpoints
type QuestHandlers struct {
	svc quest.Service
}

// NewQuestHandlers creates quest handlers over svc
func NewQuestHandlers(svc quest.Service) *QuestHandlers {
	return &QuestHandlers{svc: svc}
}

// HandleGetBoard returns the daily and weekly quest slots
// @Summary Get quest board
// @Tags quests
// @Produce json
// @Param account_id query string true "Account ID"
// @Success 200 {object} domain.QuestBoard
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/quests [get]
func (h *QuestHandlers) HandleGetBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := GetQueryParam(r, w, QueryAccountID)
		if !ok {
			return
		}

		board, err := h.svc.GetQuestBoard(r.Context(), key)
		if err != nil {
			respondServiceError(w, r, "quest_board", err)
			return
		}
		respondJSON(w, http.StatusOK, board)
	}
}

// HandleClaimQuest claims a completed quest
// @Summary Claim a quest
// @Tags quests
// @Accept json
// @Produce json
// @Param request body ClaimQuestRequest true "Quest"
// @Success 200 {object} domain.QuestClaimResult
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/quests/claim [post]
func (h *QuestHandlers) HandleClaimQuest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim quest"); err != nil {
			return
		}

		res, err := h.svc.ClaimQuest(r.Context(), req.AccountID, domain.QuestCycle(req.Cycle))
		if err != nil {
			respondServiceError(w, r, "claim_quest", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgOperationSuccess, "operation", "claim_quest", "account", req.AccountID, "cycle", req.Cycle)
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetAchievements lists every achievement with the account's record
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Param account_id query string true "Account ID"
// @Success 200 {array} domain.AchievementView
// @Router /api/v1/achievements [get]
func (h *QuestHandlers) HandleGetAchievements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := GetQueryParam(r, w, QueryAccountID)
		if !ok {
			return
		}

		views, err := h.svc.GetAchievements(r.Context(), key)
		if err != nil {
			respondServiceError(w, r, "achievements", err)
			return
		}
		respondJSON(w, http.StatusOK, views)
	}
}

// HandleClaimAchievement claims a completed achievement
// @Summary Claim an achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body ClaimAchievementRequest true "Achievement"
// @Success 200 {object} domain.AchievementClaimResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/achievements/claim [post]
func (h *QuestHandlers) HandleClaimAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimAchievementRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim achievement"); err != nil {
			return
		}

		res, err := h.svc.ClaimAchievement(r.Context(), req.AccountID, req.Name)
		if err != nil {
			respondServiceError(w, r, "claim_achievement", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
