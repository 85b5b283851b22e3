package course

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/coursetube-backend/internal/domain/user"
)

// Progress is per-user watch state for one video inside one course. The
// composite unique index is the natural key; writes go through an atomic
// upsert against it.
type Progress struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"not null;uniqueIndex:idx_progress_user_course_video,priority:1" json:"user_id"`
	User         *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CourseID     uuid.UUID  `gorm:"not null;uniqueIndex:idx_progress_user_course_video,priority:2" json:"course_id"`
	VideoID      string     `gorm:"not null;column:video_id;uniqueIndex:idx_progress_user_course_video,priority:3" json:"video_id"`
	Watched      bool       `gorm:"not null;default:false;column:watched" json:"watched"`
	WatchTime    int        `gorm:"not null;default:0;column:watch_time" json:"watch_time"`
	LastPosition int        `gorm:"not null;default:0;column:last_position" json:"last_position"`
	CreatedAt    time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Progress) TableName() string { return "progress" }
