package course

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/coursetube-backend/internal/domain/user"
)

// Note is a user annotation anchored to a second offset inside a video.
// The anchor is user-chosen and not validated against the video duration.
type Note struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"not null;index:idx_note_user_video,priority:1" json:"user_id"`
	User      *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CourseID  uuid.UUID  `gorm:"index;not null" json:"course_id"`
	VideoID   string     `gorm:"not null;column:video_id;index:idx_note_user_video,priority:2" json:"video_id"`
	Content   string     `gorm:"not null;column:content" json:"content"`
	Timestamp int        `gorm:"not null;default:0;column:timestamp" json:"timestamp"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Note) TableName() string { return "note" }
