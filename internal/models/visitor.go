// internal/models/visitor.go
package models

// Visitor is a lightweight storefront registration. The (name, phone) pair is
// unique; re-registering the same pair is treated as success, not failure.
type Visitor struct {
	BaseModel
	Name  string `json:"name" gorm:"size:255;not null;uniqueIndex:idx_visitors_name_phone,priority:1"`
	Phone string `json:"phone" gorm:"size:50;not null;uniqueIndex:idx_visitors_name_phone,priority:2"`
}
