package app

import (
	"time"

	"github.com/yungbote/coursetube-backend/internal/platform/envutil"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type Config struct {
	Port              string
	SessionTTL        time.Duration
	CORSAllowOrigins  []string
	GoogleClientID    string
	YouTubeConfigured bool
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:              envutil.String("PORT", "8000"),
		SessionTTL:        envutil.Hours("SESSION_TTL_HOURS", 7*24*time.Hour),
		CORSAllowOrigins:  envutil.List("CORS_ALLOW_ORIGINS", nil),
		GoogleClientID:    envutil.String("GOOGLE_OIDC_CLIENT_ID", ""),
		YouTubeConfigured: envutil.String("YOUTUBE_API_KEY", "") != "",
	}
	if cfg.GoogleClientID == "" {
		log.Warn("GOOGLE_OIDC_CLIENT_ID is not set; login will reject every credential")
	}
	if !cfg.YouTubeConfigured {
		log.Warn("YOUTUBE_API_KEY is not set; playlist ingestion is disabled")
	}
	return cfg
}
