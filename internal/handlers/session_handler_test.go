package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"go_5_pixel_ledger/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionHandler_RecordSession(t *testing.T) {
	accountID := uuid.New()
	validReq := model.RecordSessionRequest{GameID: "memory-match", Score: 120, DurationMinutes: 5, Completed: true}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(s *testServices)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 201で集計結果を返す",
			body: validReq,
			setupMock: func(s *testServices) {
				sessionID := uuid.New()
				s.session.On("RecordSession", mock.Anything, accountID, &validReq).Return(&model.SessionSummary{
					SessionID: &sessionID, XPEarned: 35, NewLevel: 1, GamesPlayed: 1, StreakLength: 1,
				}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: game_idなし",
			body:           model.RecordSessionRequest{Score: 10},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: スコアが負",
			body:           `{"game_id":"memory-match","score":-1}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: xp_earnedが上限超え",
			body:           `{"game_id":"memory-match","score":10,"xp_earned":10001}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, s := newTestRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			rr := sendRequest(t, router, http.MethodPost, "/api/v1/sessions", &accountID, tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeErrorCode(t, rr))
				return
			}
			var resp model.SessionSummary
			decodeJSON(t, rr, &resp)
			assert.Equal(t, 35, resp.XPEarned)
			assert.NotNil(t, resp.SessionID)
		})
	}
}

func TestSessionHandler_RecordWorkout(t *testing.T) {
	accountID := uuid.New()

	t.Run("正常系: ボディなしは既定のXP", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.session.On("RecordWorkout", mock.Anything, accountID, &model.RecordWorkoutRequest{}).
			Return(&model.SessionSummary{XPEarned: model.DefaultWorkoutXP, NewLevel: 1, WorkoutsCompleted: 1}, nil).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/workouts", &accountID, nil)

		assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		var resp model.SessionSummary
		decodeJSON(t, rr, &resp)
		assert.Equal(t, 1, resp.WorkoutsCompleted)
		assert.Nil(t, resp.SessionID)
	})

	t.Run("正常系: XPを指定", func(t *testing.T) {
		router, s := newTestRouter(t)
		xp := 45
		s.session.On("RecordWorkout", mock.Anything, accountID, &model.RecordWorkoutRequest{XPEarned: &xp}).
			Return(&model.SessionSummary{XPEarned: 45, NewLevel: 1, WorkoutsCompleted: 1}, nil).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/workouts", &accountID, `{"xp_earned":45}`)

		assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	})

	t.Run("異常系: XPが上限超え", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/workouts", &accountID, `{"xp_earned":10001}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, rr))
	})
}

func TestSessionHandler_RecentSessions(t *testing.T) {
	accountID := uuid.New()

	t.Run("正常系: limitを渡す", func(t *testing.T) {
		router, s := newTestRouter(t)
		sessions := []*model.GameSession{
			{SessionID: uuid.New(), AccountID: accountID, GameIdentifier: "memory-match", Score: 10, PlayedAt: time.Now()},
		}
		s.session.On("RecentSessions", mock.Anything, accountID, 5).Return(sessions, nil).Once()

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/sessions?limit=5", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []*model.GameSession
		decodeJSON(t, rr, &resp)
		assert.Len(t, resp, 1)
	})

	t.Run("正常系: 記録がなければ空配列", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.session.On("RecentSessions", mock.Anything, accountID, 0).Return(nil, nil).Once()

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/sessions", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("異常系: limitが数値でない", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/sessions?limit=abc", &accountID, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_QUERY_PARAM", decodeErrorCode(t, rr))
	})
}

func TestSessionHandler_Games(t *testing.T) {
	accountID := uuid.New()

	t.Run("正常系: ゲームハブを返す", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.session.On("ListGames", mock.Anything, accountID).Return(&model.GameHubResponse{
			Games:     []*model.GameResponse{{GameDefinition: model.GameDefinition{ID: "memory-match"}, TimesPlayed: 2}},
			UserLevel: 1,
		}, nil).Once()

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/games", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.GameHubResponse
		decodeJSON(t, rr, &resp)
		assert.Len(t, resp.Games, 1)
		assert.Equal(t, 2, resp.Games[0].TimesPlayed)
	})

	t.Run("正常系: お気に入りを切り替える", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.session.On("ToggleFavorite", mock.Anything, accountID, "memory-match").
			Return(&model.FavoriteResponse{GameID: "memory-match", IsFavorite: true}, nil).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/games/memory-match/favorite", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.FavoriteResponse
		decodeJSON(t, rr, &resp)
		assert.True(t, resp.IsFavorite)
	})

	t.Run("正常系: ゲーム1件の詳細", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.session.On("GetGame", mock.Anything, accountID, "ninja").Return(&model.GameResponse{
			GameDefinition: model.GameDefinition{ID: "ninja", MinLevel: 3}, Locked: true,
		}, nil).Once()

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/games/ninja", &accountID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.GameResponse
		decodeJSON(t, rr, &resp)
		assert.Equal(t, "ninja", resp.ID)
		assert.True(t, resp.Locked)
	})

	t.Run("異常系: 詳細で存在しないゲームは404", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.session.On("GetGame", mock.Anything, accountID, "nope").
			Return(nil, model.NewAppError("GAME_NOT_FOUND", "ゲームが見つかりません。", "game_id", model.ErrNotFound)).Once()

		rr := sendRequest(t, router, http.MethodGet, "/api/v1/games/nope", &accountID, nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "GAME_NOT_FOUND", decodeErrorCode(t, rr))
	})

	t.Run("異常系: 存在しないゲームは404", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.session.On("ToggleFavorite", mock.Anything, accountID, "nope").
			Return(nil, model.NewAppError("GAME_NOT_FOUND", "ゲームが見つかりません。", "game_id", model.ErrNotFound)).Once()

		rr := sendRequest(t, router, http.MethodPost, "/api/v1/games/nope/favorite", &accountID, nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "GAME_NOT_FOUND", decodeErrorCode(t, rr))
	})
}
