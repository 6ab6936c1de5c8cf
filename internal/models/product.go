// internal/models/product.go
package models

import (
	"time"
)

type Product struct {
	BaseModel
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string    `json:"category" gorm:"size:100;index"`
	Subject     string    `json:"subject" gorm:"size:255"`
	Images      ImageList `json:"images" gorm:"type:jsonb"`

	// Relationships
	CartItems  []CartItem  `json:"-" gorm:"foreignKey:ProductID"`
	UserOffers []UserOffer `json:"-" gorm:"foreignKey:ProductID"`
}

// Submission is a prospective product proposed through the "sell your
// antiques" form. Promotion into a Product is a copy, never a move.
type Submission struct {
	BaseModel
	Title       string           `json:"title" gorm:"size:255;not null"`
	Description string           `json:"description" gorm:"type:text"`
	Price       float64          `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string           `json:"category" gorm:"size:100;index"`
	Subject     string           `json:"subject" gorm:"size:255"`
	Images      ImageList        `json:"images" gorm:"type:jsonb"`
	SellerName  string           `json:"seller_name" gorm:"size:255"`
	Phone       string           `json:"phone" gorm:"size:50"`
	Address     string           `json:"address" gorm:"type:text"`
	Status      SubmissionStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	SubmittedAt time.Time        `json:"submitted_at"`
}
