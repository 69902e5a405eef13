package models

import "time"

// DeliveryAddress is where the purchase will be shipped.
type DeliveryAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	Street2   string `json:"street2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// BillingAddress is the address associated with the payment method.
// Purchases are looked up by the billing email.
type BillingAddress struct {
	Street  string `json:"street"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
}

// CreditCard holds the payment details supplied with a purchase. It is never
// persisted standalone, only embedded in a purchase row.
type CreditCard struct {
	CardNumber *string `json:"cardNumber"`
	CVV        *string `json:"cvv"`
	Expiration *string `json:"expiration"`
	Cardholder *string `json:"cardholder"`
}

// Purchase is the aggregate for a single checkout: addresses, payment details
// and the purchased line items.
type Purchase struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress" gorm:"embedded;embeddedPrefix:delivery_"`
	BillingAddress  BillingAddress  `json:"billingAddress" gorm:"embedded;embeddedPrefix:billing_"`
	CreditCard      *CreditCard     `json:"creditCard" gorm:"embedded;embeddedPrefix:card_"`
	Products        []LineItem      `json:"products" gorm:"foreignKey:PurchaseID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// LineItem ties one product to its owning purchase. Callers supply only the
// product id; the purchase service resolves and attaches the full product
// record before the item is persisted.
type LineItem struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PurchaseID string   `json:"-" gorm:"type:varchar(36);index"`
	ProductID  string   `json:"-" gorm:"type:varchar(36)"`
	Product    *Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity   int      `json:"quantity"`
}
