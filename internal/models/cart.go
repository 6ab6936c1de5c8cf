// internal/models/cart.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one line of an anonymous session cart. The row holds no price
// snapshot; reads join against current product data, so price changes apply
// retroactively to cart display. Rows are hard-deleted: a soft delete would
// leave the (session, product) unique index occupied.
type CartItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	SessionID string    `json:"session_id" gorm:"size:64;not null;uniqueIndex:idx_cart_session_product,priority:1"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_session_product,priority:2"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// CartLine is a cart row merged with current product data for display.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
}

// Cart is the merged view handed to callers. Total and Count are recomputed
// on every call, never cached.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartLine `json:"items"`
}

func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Items {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) Count() int {
	var count int
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}
