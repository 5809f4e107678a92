// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields. IDs are auto-increment integers so the
// catalog and order listings can page newest-first on id.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
