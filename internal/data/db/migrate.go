package db

import (
	"gorm.io/gorm"

	types "github.com/yungbote/coursetube-backend/internal/domain"
)

func (s *PostgresService) AutoMigrateAll() error {
	return AutoMigrate(s.db)
}

// AutoMigrate is shared with the repo test harness so tests migrate the
// exact schema the service runs against.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&types.User{},
		&types.UserIdentity{},
		&types.Session{},
		&types.Course{},
		&types.Progress{},
		&types.Note{},
	)
}
