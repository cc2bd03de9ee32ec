package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/orchard"
)

// HandlePick picks fruit for an account, creating it on first use
// @Summary Pick fruit
// @Tags orchard
// @Accept json
// @Produce json
// @Param request body AccountRequest true "Account"
// @Success 200 {object} domain.PickResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/pick [post]
func HandlePick(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AccountRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Pick"); err != nil {
			return
		}

		res, err := svc.Pick(r.Context(), req.AccountID, req.Username)
		if err != nil {
			respondServiceError(w, r, "pick", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgOperationSuccess, "operation", "pick", "account", req.AccountID, "fruits", len(res.Fruits))
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleDaily claims the daily coin reward
// @Summary Claim daily reward
// @Tags orchard
// @Accept json
// @Produce json
// @Param request body AccountRequest true "Account"
// @Success 200 {object} domain.DailyResult
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/daily [post]
func HandleDaily(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AccountRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Daily"); err != nil {
			return
		}

		res, err := svc.ClaimDaily(r.Context(), req.AccountID, req.Username)
		if err != nil {
			respondServiceError(w, r, "daily", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleSell sells unsold fruit, optionally only one rarity
// @Summary Sell fruit
// @Tags orchard
// @Accept json
// @Produce json
// @Param request body SellRequest true "Sell"
// @Success 200 {object} domain.SaleResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sell [post]
func HandleSell(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell"); err != nil {
			return
		}

		var rarity *domain.Rarity
		if req.Rarity != "" && !strings.EqualFold(req.Rarity, SellAll) {
			parsed, err := domain.ParseRarity(req.Rarity)
			if err != nil {
				respondServiceError(w, r, "sell", err)
				return
			}
			rarity = &parsed
		}

		res, err := svc.Sell(r.Context(), req.AccountID, rarity)
		if err != nil {
			respondServiceError(w, r, "sell", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgOperationSuccess, "operation", "sell", "account", req.AccountID, "count", res.Count, "total", res.Total)
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleInventory returns unsold fruit grouped by rarity
// @Summary Get inventory
// @Tags orchard
// @Produce json
// @Param account_id query string true "Account ID"
// @Success 200 {object} domain.InventorySummary
// @Router /api/v1/inventory [get]
func HandleInventory(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := GetQueryParam(r, w, QueryAccountID)
		if !ok {
			return
		}

		res, err := svc.GetInventory(r.Context(), key)
		if err != nil {
			respondServiceError(w, r, "inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleShop lists upgrade tracks priced for an account
// @Summary Get upgrade shop
// @Tags shop
// @Produce json
// @Param account_id query string true "Account ID"
// @Success 200 {object} domain.Shop
// @Router /api/v1/shop [get]
func HandleShop(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := GetQueryParam(r, w, QueryAccountID)
		if !ok {
			return
		}

		res, err := svc.GetShop(r.Context(), key)
		if err != nil {
			respondServiceError(w, r, "shop", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleBuyUpgrade buys the next tier of a track
// @Summary Buy an upgrade
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyUpgradeRequest true "Upgrade"
// @Success 200 {object} domain.PurchaseResult
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/shop/buy [post]
func HandleBuyUpgrade(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyUpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy upgrade"); err != nil {
			return
		}

		res, err := svc.BuyUpgrade(r.Context(), req.AccountID, domain.UpgradeTrack(req.Track))
		if err != nil {
			respondServiceError(w, r, "buy_upgrade", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleMarket returns the current market epoch prices and trends
// @Summary Get market report
// @Tags market
// @Produce json
// @Success 200 {object} domain.MarketReport
// @Router /api/v1/market [get]
func HandleMarket(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.GetMarket(r.Context())
		if err != nil {
			respondServiceError(w, r, "market", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleProfile returns an account summary
// @Summary Get profile
// @Tags orchard
// @Produce json
// @Param account_id query string true "Account ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile [get]
func HandleProfile(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := GetQueryParam(r, w, QueryAccountID)
		if !ok {
			return
		}

		res, err := svc.GetProfile(r.Context(), key)
		if err != nil {
			respondServiceError(w, r, "profile", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleLeaderboard returns the top accounts for a metric and the caller's rank
// @Summary Get leaderboard
// @Tags orchard
// @Produce json
// @Param account_id query string false "Caller account ID"
// @Param metric query string false "coins, picked, gems or level"
// @Success 200 {object} domain.Leaderboard
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func HandleLeaderboard(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := GetOptionalQueryParam(r, QueryAccountID, "")
		metric := domain.LeaderboardMetric(GetOptionalQueryParam(r, QueryMetric, string(domain.MetricCoins)))
		if !metric.Valid() {
			respondServiceError(w, r, "leaderboard", domain.ErrInvalidMetric)
			return
		}

		res, err := svc.GetLeaderboard(r.Context(), key, metric)
		if err != nil {
			respondServiceError(w, r, "leaderboard", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleSetupGuild stores the bot channel for a server
// @Summary Configure a guild
// @Tags guilds
// @Accept json
// @Produce json
// @Param request body SetupGuildRequest true "Guild"
// @Success 200 {object} domain.Guild
// @Router /api/v1/guilds [put]
func HandleSetupGuild(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetupGuildRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Setup guild"); err != nil {
			return
		}

		res, err := svc.SetupGuild(r.Context(), &domain.Guild{
			GuildID:   req.GuildID,
			Name:      req.Name,
			ChannelID: req.ChannelID,
		})
		if err != nil {
			respondServiceError(w, r, "setup_guild", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetGuild returns a guild's settings
// @Summary Get guild settings
// @Tags guilds
// @Produce json
// @Param guildID path string true "Guild ID"
// @Success 200 {object} domain.Guild
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/guilds/{guildID} [get]
func HandleGetGuild(svc orchard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.GetGuild(r.Context(), chi.URLParam(r, ParamGuildID))
		if err != nil {
			respondServiceError(w, r, "get_guild", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
