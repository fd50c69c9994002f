// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "english-tutor-bff"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultReadTimeout          = 5 * time.Second
	DefaultWriteTimeout         = 45 * time.Second
	DefaultBackendBaseURL       = "http://localhost:8000/api/v1"
	DefaultBackendTimeout       = 30 * time.Second
	DefaultAuthAudience         = "authenticated"
	DefaultStudentLocale        = "pt-BR"
	DefaultPairCooldown         = 800 * time.Millisecond
	DefaultPairCompletionPolicy = "deferred"
	DefaultNoticeSink           = "board"
	DefaultNoticeCapacity       = 20
	DefaultLogLevel             = "info"
)
