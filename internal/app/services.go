package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/coursetube-backend/internal/platform/logger"
	"github.com/yungbote/coursetube-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Course   services.CourseService
	Progress services.ProgressService
	Note     services.NoteService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) (Services, error) {
	log.Info("Wiring services...")

	verifier := services.NewRejectingVerifier()
	if cfg.GoogleClientID != "" {
		v, err := services.NewGoogleVerifier(nil, cfg.GoogleClientID)
		if err != nil {
			return Services{}, fmt.Errorf("init google verifier: %w", err)
		}
		verifier = v
	}

	youtube := services.NewDisabledYouTubeClient()
	if cfg.YouTubeConfigured {
		yt, err := services.NewYouTubeClient(log)
		if err != nil {
			return Services{}, fmt.Errorf("init youtube client: %w", err)
		}
		youtube = yt
	}

	auth := services.NewAuthService(db, log, verifier, repos.User, repos.UserIdentity, repos.Session, cfg.SessionTTL)
	course := services.NewCourseService(db, log, youtube, repos.Course, repos.Progress, repos.Note)
	progress := services.NewProgressService(db, log, repos.Progress)
	note := services.NewNoteService(db, log, repos.Note)

	return Services{
		Auth:     auth,
		Course:   course,
		Progress: progress,
		Note:     note,
	}, nil
}
