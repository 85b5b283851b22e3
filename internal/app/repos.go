package app

import (
	"gorm.io/gorm"

	authrepos "github.com/yungbote/coursetube-backend/internal/data/repos/auth"
	courserepos "github.com/yungbote/coursetube-backend/internal/data/repos/course"
	userrepos "github.com/yungbote/coursetube-backend/internal/data/repos/user"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type Repos struct {
	User         userrepos.UserRepo
	UserIdentity authrepos.UserIdentityRepo
	Session      authrepos.SessionRepo
	Course       courserepos.CourseRepo
	Progress     courserepos.ProgressRepo
	Note         courserepos.NoteRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         userrepos.NewUserRepo(db, log),
		UserIdentity: authrepos.NewUserIdentityRepo(db, log),
		Session:      authrepos.NewSessionRepo(db, log),
		Course:       courserepos.NewCourseRepo(db, log),
		Progress:     courserepos.NewProgressRepo(db, log),
		Note:         courserepos.NewNoteRepo(db, log),
	}
}
