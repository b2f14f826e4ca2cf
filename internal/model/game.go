package model

import "time"

// GameDefinition はゲームハブに並ぶゲームの定義
type GameDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	MinLevel    int    `json:"min_level"`
	XPReward    string `json:"xp_reward"`
}

// Games はゲームハブのゲーム一覧 (表示順)
var Games = []GameDefinition{
	{ID: "memory-match", Name: "Memory Match", Description: "Test your memory!", Category: "Puzzle", Icon: "🧠", MinLevel: 1, XPReward: "10-50"},
	{ID: "word-search", Name: "Word Search", Description: "Find hidden words", Category: "Puzzle", Icon: "📝", MinLevel: 1, XPReward: "15-40"},
	{ID: "ninja", Name: "Ninja Runner", Description: "Jump and dodge!", Category: "Action", Icon: "🥷", MinLevel: 3, XPReward: "20-60"},
	{ID: "rhythm", Name: "Rhythm Master", Description: "Hit the beat!", Category: "Music", Icon: "🎵", MinLevel: 4, XPReward: "15-45"},
	{ID: "magic", Name: "Magic Quest", Description: "Cast spells!", Category: "Adventure", Icon: "🔮", MinLevel: 5, XPReward: "25-70"},
}

// FindGame は ID に対応するゲーム定義を返します。
func FindGame(id string) (*GameDefinition, bool) {
	for i := range Games {
		if Games[i].ID == id {
			return &Games[i], true
		}
	}
	return nil, false
}

// GameResponse はゲーム一覧のレスポンスDTO
type GameResponse struct {
	GameDefinition
	Locked       bool       `json:"locked"`
	Completed    bool       `json:"completed"`
	IsFavorite   bool       `json:"is_favorite"`
	TimesPlayed  int        `json:"times_played"`
	PersonalBest int        `json:"personal_best"`
	LastPlayed   *time.Time `json:"last_played"`
}

// GameHubResponse はゲームハブAPIのレスポンスDTO
type GameHubResponse struct {
	Games     []*GameResponse `json:"games"`
	UserLevel int             `json:"user_level"`
}

// FavoriteResponse はお気に入り切り替えの結果
type FavoriteResponse struct {
	GameID     string `json:"game_id"`
	IsFavorite bool   `json:"is_favorite"`
}
