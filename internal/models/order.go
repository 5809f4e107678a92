// internal/models/order.go
package models

import (
	"time"
)

// Order references its buyer and product by primary key, matching the wire
// format. CreatedAt is set once at insert and never touched by updates.
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user" gorm:"not null;index"`
	ProductID uint      `json:"product" gorm:"not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}
