package user

import (
	"time"

	"github.com/google/uuid"
)

// User rows are owned by the auth module; read here only to resolve
// display names on withdrawal records.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string
	Email     string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
