package app

import (
	httpserver "github.com/yungbote/coursetube-backend/internal/http"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *httpserver.Server {
	return httpserver.NewServer(httpserver.RouterConfig{
		Log:             log,
		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		CourseHandler:   handlers.Course,
		ProgressHandler: handlers.Progress,
		NoteHandler:     handlers.Note,
		AuthMiddleware:  middleware.Auth,
		CORSOrigins:     cfg.CORSAllowOrigins,
	})
}
