// internal/models/offer.go
package models

import (
	"github.com/google/uuid"
)

// Offer is an admin-authored promotional broadcast, independent of
// products and submissions.
type Offer struct {
	BaseModel
	Content string    `json:"content" gorm:"type:text;not null"`
	Images  ImageList `json:"images" gorm:"type:jsonb"`
}

// UserOffer is a buyer's counter-offer on a specific product. Write-once:
// there is no status or lifecycle beyond creation.
type UserOffer struct {
	BaseModel
	ProductID     uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	ContactNumber string    `json:"contact_number" gorm:"size:50;not null"`
	Email         string    `json:"email" gorm:"size:255;not null"`
	OfferAmount   float64   `json:"offer_amount" gorm:"type:decimal(10,2);not null"`
	ProductPrice  float64   `json:"product_price" gorm:"type:decimal(10,2)"`
	Message       string    `json:"message" gorm:"type:text"`
	Image         string    `json:"image" gorm:"size:1024"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
