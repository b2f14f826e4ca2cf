package handlers_test

import (
	"net/http"
	"testing"

	"go_5_pixel_ledger/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAchievementHandler(t *testing.T) {
	accountID := uuid.New()

	t.Run("正常系: 一覧を返す", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.achievement.On("ListAchievements", mock.Anything, accountID).Return([]*model.AchievementResponse{
			{ID: model.AchievementFirstSteps, Progress: 1, Target: 1, RewardCoins: 50, State: model.AchievementUnlocked},
			{ID: model.AchievementWeekWarrior, Progress: 1, Target: 7, RewardCoins: 100, State: model.AchievementLocked},
		}, nil).Once()

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/achievements", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []*model.AchievementResponse
		decodeJSON(t, rr, &resp)
		assert.Len(t, resp, 2)
		assert.Equal(t, model.AchievementUnlocked, resp[0].State)
	})

	t.Run("正常系: 報酬を受け取る", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.achievement.On("ClaimAchievement", mock.Anything, accountID, model.AchievementFirstSteps).Return(&model.ClaimAchievementResponse{
			AchievementID: model.AchievementFirstSteps, RewardCoins: 50, CoinBalance: 100,
		}, nil).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/achievements/first_steps/claim", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.ClaimAchievementResponse
		decodeJSON(t, rr, &resp)
		assert.Equal(t, 50, resp.RewardCoins)
		assert.Nil(t, resp.RewardItem)
	})

	errorCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"異常系: 未達成は422", model.NewAppError("NOT_YET_EARNED", "まだ達成していません。", "", model.ErrNotYetEarned), http.StatusUnprocessableEntity, "NOT_YET_EARNED"},
		{"異常系: 受け取り済みは409", model.NewAppError("ALREADY_CLAIMED", "受け取り済みです。", "", model.ErrAlreadyClaimed), http.StatusConflict, "ALREADY_CLAIMED"},
		{"異常系: 存在しない実績は404", model.NewAppError("ACHIEVEMENT_NOT_FOUND", "実績が見つかりません。", "achievement_id", model.ErrNotFound), http.StatusNotFound, "ACHIEVEMENT_NOT_FOUND"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			router, s := newTestRouter(t)
			s.achievement.On("ClaimAchievement", mock.Anything, accountID, model.AchievementWeekWarrior).Return(nil, tc.err).Once()

			rr := sendRequest(t, router, http.MethodPost, "/api/v1/achievements/week_warrior/claim", &accountID, nil)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectedCode, decodeErrorCode(t, rr))
		})
	}
}
