package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// APIError is a non-2xx response from the game API
type APIError struct {
	Status     int
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return apiErrorPrefix + e.Message
}

// APIClient handles communication with the orchard game API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx
// responses with exponential backoff
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path
	requestID := logger.GetRequestID(ctx)

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}
		if requestID != "" {
			req.Header.Set(HeaderRequestID, requestID)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		lastErr = decodeAPIError(resp)
		resp.Body.Close()
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// doJSON sends body and decodes a 2xx response into out
func (c *APIClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Error             string `json:"error"`
		RetryAfterSeconds *int   `json:"retry_after_seconds"`
	}
	apiErr := &APIError{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		apiErr.Message = errResp.Error
	} else {
		apiErr.Message = fmt.Sprintf("API returned status: %d", resp.StatusCode)
	}
	if errResp.RetryAfterSeconds != nil {
		apiErr.RetryAfter = time.Duration(*errResp.RetryAfterSeconds) * time.Second
	}
	return apiErr
}

func accountQuery(path, accountID string, extra url.Values) string {
	params := url.Values{}
	params.Set("account_id", accountID)
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	return path + "?" + params.Encode()
}

type accountBody struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username,omitempty"`
}

// Pick picks fruit, creating the account on first use
func (c *APIClient) Pick(ctx context.Context, accountID, username string) (*domain.PickResult, error) {
	var res domain.PickResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/pick", accountBody{accountID, username}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ClaimDaily claims the daily coin reward
func (c *APIClient) ClaimDaily(ctx context.Context, accountID, username string) (*domain.DailyResult, error) {
	var res domain.DailyResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/daily", accountBody{accountID, username}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Sell sells every unsold fruit, or only one rarity when rarity is not empty
func (c *APIClient) Sell(ctx context.Context, accountID, rarity string) (*domain.SaleResult, error) {
	req := struct {
		AccountID string `json:"account_id"`
		Rarity    string `json:"rarity,omitempty"`
	}{accountID, rarity}

	var res domain.SaleResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/sell", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetInventory returns unsold fruit grouped by rarity
func (c *APIClient) GetInventory(ctx context.Context, accountID string) (*domain.InventorySummary, error) {
	var res domain.InventorySummary
	if err := c.doJSON(ctx, http.MethodGet, accountQuery("/api/v1/inventory", accountID, nil), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetShop returns the upgrade shop priced for the account
func (c *APIClient) GetShop(ctx context.Context, accountID string) (*domain.Shop, error) {
	var res domain.Shop
	if err := c.doJSON(ctx, http.MethodGet, accountQuery("/api/v1/shop", accountID, nil), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BuyUpgrade buys the next tier of a track
func (c *APIClient) BuyUpgrade(ctx context.Context, accountID string, track domain.UpgradeTrack) (*domain.PurchaseResult, error) {
	req := struct {
		AccountID string              `json:"account_id"`
		Track     domain.UpgradeTrack `json:"track"`
	}{accountID, track}

	var res domain.PurchaseResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/shop/buy", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetMarket returns the current market report
func (c *APIClient) GetMarket(ctx context.Context) (*domain.MarketReport, error) {
	var res domain.MarketReport
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/market", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Steal attempts to take one fruit from target
func (c *APIClient) Steal(ctx context.Context, accountID, targetID string) (*domain.StealResult, error) {
	req := struct {
		AccountID string `json:"account_id"`
		TargetID  string `json:"target_id"`
	}{accountID, targetID}

	var res domain.StealResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/steal", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetQuestBoard returns the daily and weekly quest slots
func (c *APIClient) GetQuestBoard(ctx context.Context, accountID string) (*domain.QuestBoard, error) {
	var res domain.QuestBoard
	if err := c.doJSON(ctx, http.MethodGet, accountQuery("/api/v1/quests", accountID, nil), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ClaimQuest claims a completed quest slot
func (c *APIClient) ClaimQuest(ctx context.Context, accountID string, cycle domain.QuestCycle) (*domain.QuestClaimResult, error) {
	req := struct {
		AccountID string            `json:"account_id"`
		Cycle     domain.QuestCycle `json:"cycle"`
	}{accountID, cycle}

	var res domain.QuestClaimResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/quests/claim", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetAchievements lists every achievement with the account's progress
func (c *APIClient) GetAchievements(ctx context.Context, accountID string) ([]domain.AchievementView, error) {
	var res []domain.AchievementView
	if err := c.doJSON(ctx, http.MethodGet, accountQuery("/api/v1/achievements", accountID, nil), nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ClaimAchievement claims a completed achievement by name
func (c *APIClient) ClaimAchievement(ctx context.Context, accountID, name string) (*domain.AchievementClaimResult, error) {
	req := struct {
		AccountID string `json:"account_id"`
		Name      string `json:"name"`
	}{accountID, name}

	var res domain.AchievementClaimResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/achievements/claim", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetLeaderboard ranks players by metric; the caller's rank is included
func (c *APIClient) GetLeaderboard(ctx context.Context, accountID string, metric domain.LeaderboardMetric) (*domain.Leaderboard, error) {
	extra := url.Values{}
	if metric != "" {
		extra.Set("metric", string(metric))
	}

	var res domain.Leaderboard
	if err := c.doJSON(ctx, http.MethodGet, accountQuery("/api/v1/leaderboard", accountID, extra), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetProfile returns the account summary
func (c *APIClient) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	var res domain.Profile
	if err := c.doJSON(ctx, http.MethodGet, accountQuery("/api/v1/profile", accountID, nil), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SetupGuild stores the orchard channel for a server
func (c *APIClient) SetupGuild(ctx context.Context, guildID, name, channelID string) (*domain.Guild, error) {
	req := struct {
		GuildID   string `json:"guild_id"`
		Name      string `json:"name"`
		ChannelID string `json:"channel_id"`
	}{guildID, name, channelID}

	var res domain.Guild
	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/guilds", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Health reports whether the API answers its liveness probe
func (c *APIClient) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/healthz", nil, nil)
}

// IsStatus reports whether err is an API error with the given status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
