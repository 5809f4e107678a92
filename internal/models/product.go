// internal/models/product.go
package models

type Product struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:255;not null;index"`
	Description string  `json:"description" gorm:"type:text"`
	Image       string  `json:"image" gorm:"size:512"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int     `json:"quantity" gorm:"not null;default:0"`
}
