package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/coursetube-backend/internal/domain/user"
)

// Course is one user's ingested copy of a playlist. Videos keeps the
// provider's playlist order; that order is authoritative.
type Course struct {
	ID           uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"index;not null" json:"user_id"`
	User         *user.User                  `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Title        string                      `gorm:"not null;column:title" json:"title"`
	Description  string                      `gorm:"column:description" json:"description"`
	PlaylistID   string                      `gorm:"not null;column:playlist_id" json:"playlist_id"`
	PlaylistURL  string                      `gorm:"not null;column:playlist_url" json:"playlist_url"`
	ThumbnailURL string                      `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	Videos       datatypes.JSONSlice[Video]  `gorm:"column:videos" json:"videos"`
	CreatedAt    time.Time                   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Course) TableName() string { return "course" }
