package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/coursetube-backend/internal/domain/user"
)

// Session is the server-side record behind an opaque bearer token. Logout
// revokes by deleting every session row for the user.
type Session struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"index;not null" json:"user_id"`
	User      *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Token     string     `gorm:"uniqueIndex;not null;column:token" json:"-"`
	ExpiresAt time.Time  `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (Session) TableName() string { return "session" }
