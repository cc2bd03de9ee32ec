package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/punaab/discord-ts-UQkA/internal/domain"
)

func TestQuestHandlers_ClaimQuest(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockQuestService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"account_id":"123","cycle":"daily"}`,
			setupMock: func(m *MockQuestService) {
				m.On("ClaimQuest", mock.Anything, "123", domain.CycleDaily).
					Return(&domain.QuestClaimResult{Cycle: domain.CycleDaily}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not completed",
			body: `{"account_id":"123","cycle":"weekly"}`,
			setupMock: func(m *MockQuestService) {
				m.On("ClaimQuest", mock.Anything, "123", domain.CycleWeekly).Return(nil, domain.ErrQuestNotCompleted)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Bad cycle",
			body:           `{"account_id":"123","cycle":"monthly"}`,
			setupMock:      func(m *MockQuestService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockQuestService{}
			tt.setupMock(svc)

			rec := post(NewQuestHandlers(svc).HandleClaimQuest(), "/api/v1/quests/claim", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestQuestHandlers_Board(t *testing.T) {
	svc := &MockQuestService{}
	svc.On("GetQuestBoard", mock.Anything, "123").Return(&domain.QuestBoard{}, nil)
	svc.On("GetQuestBoard", mock.Anything, "404").Return(nil, domain.ErrAccountNotFound)
	h := NewQuestHandlers(svc)

	assert.Equal(t, http.StatusOK, get(h.HandleGetBoard(), "/api/v1/quests?account_id=123").Code)
	assert.Equal(t, http.StatusNotFound, get(h.HandleGetBoard(), "/api/v1/quests?account_id=404").Code)
	assert.Equal(t, http.StatusBadRequest, get(h.HandleGetBoard(), "/api/v1/quests").Code)
}

func TestQuestHandlers_Achievements(t *testing.T) {
	tests := []struct {
		name           string
		claimErr       error
		expectedStatus int
	}{
		{"claimed", nil, http.StatusOK},
		{"unknown", domain.ErrAchievementNotFound, http.StatusNotFound},
		{"not completed", domain.ErrAchievementNotCompleted, http.StatusConflict},
		{"already claimed", domain.ErrAchievementAlreadyClaimed, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockQuestService{}
			if tt.claimErr != nil {
				svc.On("ClaimAchievement", mock.Anything, "123", "First Harvest").Return(nil, tt.claimErr)
			} else {
				svc.On("ClaimAchievement", mock.Anything, "123", "First Harvest").
					Return(&domain.AchievementClaimResult{Name: "First Harvest"}, nil)
			}

			rec := post(NewQuestHandlers(svc).HandleClaimAchievement(), "/api/v1/achievements/claim",
				`{"account_id":"123","name":"First Harvest"}`)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	t.Run("list", func(t *testing.T) {
		svc := &MockQuestService{}
		svc.On("GetAchievements", mock.Anything, "123").Return([]domain.AchievementView{{}}, nil)

		rec := get(NewQuestHandlers(svc).HandleGetAchievements(), "/api/v1/achievements?account_id=123")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
