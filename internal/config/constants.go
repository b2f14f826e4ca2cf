// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "PixelPlayLedger"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultTimezone            = "Asia/Tokyo"
	DefaultRecentSessionsLimit = 10
	MaxRecentSessionsLimit     = 100
	DefaultAuthEnabled         = true
	DefaultAccessTokenTTL      = 24 * time.Hour
	DefaultCatalogCacheTTL     = 10 * time.Minute
)
