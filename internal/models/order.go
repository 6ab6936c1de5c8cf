// internal/models/order.go
package models

import (
	"time"
)

// Order snapshots the merged cart at checkout time. Unlike cart rows, order
// lines carry the price that was displayed when the buyer committed.
type Order struct {
	BaseModel
	SessionID        string        `json:"session_id" gorm:"size:64;index"`
	Name             string        `json:"name" gorm:"size:255;not null"`
	Email            string        `json:"email" gorm:"size:255;not null"`
	Address          string        `json:"address" gorm:"type:text;not null"`
	City             string        `json:"city" gorm:"size:100"`
	State            string        `json:"state" gorm:"size:100"`
	Zip              string        `json:"zip" gorm:"size:20"`
	Phone            string        `json:"phone" gorm:"size:50"`
	Lines            JSONB         `json:"lines" gorm:"type:jsonb"`
	Total            float64       `json:"total" gorm:"type:decimal(10,2);not null"`
	PaymentMethod    PaymentMethod `json:"payment_method" gorm:"type:varchar(10);not null"`
	PaymentReference string        `json:"payment_reference,omitempty" gorm:"size:255"`
	Status           OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	ConfirmedAt      *time.Time    `json:"confirmed_at,omitempty"`
}
