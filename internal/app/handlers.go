package app

import (
	httpH "github.com/yungbote/coursetube-backend/internal/http/handlers"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	Course   *httpH.CourseHandler
	Progress *httpH.ProgressHandler
	Note     *httpH.NoteHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(cfg.YouTubeConfigured),
		Auth:     httpH.NewAuthHandler(services.Auth),
		Course:   httpH.NewCourseHandler(log, services.Course),
		Progress: httpH.NewProgressHandler(services.Progress),
		Note:     httpH.NewNoteHandler(services.Note),
	}
}
