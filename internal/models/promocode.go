package models

import "github.com/shopspring/decimal"

// Promocode represents a promotion code that can be applied to a purchase.
// The title is unique across all stored promocodes, enforced by the index.
type Promocode struct {
	ID          string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       *string          `json:"title" gorm:"uniqueIndex;type:varchar(100)"`
	Description *string          `json:"description" gorm:"type:varchar(100)"`
	Type        *string          `json:"type"`
	Rate        *decimal.Decimal `json:"rate" gorm:"type:decimal(10,2)"`
}
