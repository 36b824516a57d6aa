// Package logging, log/slog için renkli structured logging kurar (tint handler).
//
// Kullanım:
//
//	logging.Setup()                          // seviye LOG_LEVEL env'den (varsayılan: info)
//	logging.SetupWithLevel(slog.LevelDebug)  // seviyeyi elle belirle
//
// Setup sonrası tüm katmanlar slog.Info / slog.Error ile loglar —
// component ayrımı attr ile yapılır: slog.Info("...", "component", "quote_service").
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup, LOG_LEVEL env variable'ındaki seviyede logging'i yapılandırır.
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel, verilen seviyede logging'i yapılandırır ve
// slog'un process-wide default logger'ını değiştirir.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
