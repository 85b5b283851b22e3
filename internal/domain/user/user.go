package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is created on first login with an externally verified identity.
// There are no local passwords; the identity provider is authoritative.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Name      string         `gorm:"column:name" json:"name"`
	AvatarURL string         `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "user" }
