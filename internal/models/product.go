package models

import "github.com/shopspring/decimal"

// Product represents a single apparel product in the catalog.
//
// Fields that are subject to required/null validation are pointers so that a
// field omitted from a request body is distinguishable from its zero value.
type Product struct {
	ID                 string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name               *string          `json:"name" gorm:"type:varchar(100)"`
	Description        *string          `json:"description" gorm:"type:varchar(200)"`
	Demographic        *string          `json:"demographic"`
	Category           *string          `json:"category"`
	Type               *string          `json:"type"`
	ReleaseDate        *string          `json:"releaseDate"`
	Price              *decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Quantity           *int             `json:"quantity"`
	ImgSrc             *string          `json:"imgSrc"`
	Brand              *string          `json:"brand"`
	Material           *string          `json:"material"`
	PrimaryColorCode   *string          `json:"primaryColorCode"`
	SecondaryColorCode *string          `json:"secondaryColorCode"`
	StyleNumber        *string          `json:"styleNumber"`
	GlobalProductCode  *string          `json:"globalProductCode"`
	Active             *bool            `json:"active"`
}

// ProductFilter carries query-by-example criteria for catalog searches.
// Empty string fields and nil pointers act as wildcards.
type ProductFilter struct {
	Name        string `query:"name"`
	Demographic string `query:"demographic"`
	Category    string `query:"category"`
	Type        string `query:"type"`
	Brand       string `query:"brand"`
	Material    string `query:"material"`
	StyleNumber string `query:"styleNumber"`
	Active      *bool  `query:"active"`
}
