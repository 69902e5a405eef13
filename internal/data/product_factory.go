package data

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

// Pools of values for random product generation. Demographics, categories
// and types match the catalog's valid enumerations.

var colors = []string{
	"#000000", "#ffffff", "#39add1", "#3079ab", "#c25975",
	"#e15258", "#f9845b", "#838cc7", "#7d669e", "#53bbb4",
	"#51b46d", "#e0ab18", "#637a91", "#f092b0", "#b7c0c7",
}

var demographics = []string{"Men", "Women", "Kids"}

var categories = []string{
	"Golf", "Soccer", "Basketball", "Hockey", "Football",
	"Running", "Baseball", "Skateboarding", "Boxing", "Weightlifting",
}

var adjectives = []string{
	"Lightweight", "Slim", "Shock Absorbing", "Exotic", "Elastic",
	"Fashionable", "Trendy", "Next Gen", "Colorful", "Comfortable",
	"Water Resistant", "Wicking", "Heavy Duty",
}

var materials = []string{
	"Cotton", "Polyester", "Nylon", "Spandex", "Wool", "Leather", "Mesh",
}

var types = []string{
	"Pant", "Short", "Shoe", "Glove", "Jacket", "Tank Top", "Sock",
	"Sunglasses", "Hat", "Helmet", "Belt", "Visor", "Shin Guard",
	"Elbow Pad", "Headband", "Wristband", "Hoodie", "Flip Flop", "Pool Noodle",
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

func digits(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = byte('0' + rand.Intn(10))
	}
	return string(s)
}

func randomReleaseDate() string {
	start := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(time.Now().UTC().Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rand.Intn(days)).Format("01/02/2006")
}

func randomPrice() decimal.Decimal {
	cents := 1 + rand.Int63n(50000)
	return decimal.New(cents, -2)
}

// GenerateProduct builds one random product that passes catalog validation.
func GenerateProduct() models.Product {
	demographic := pick(demographics)
	category := pick(categories)
	productType := pick(types)
	name := fmt.Sprintf("%s %s %s", pick(adjectives), category, productType)
	description := fmt.Sprintf("%s, %s", category, demographic)
	releaseDate := randomReleaseDate()
	price := randomPrice()
	quantity := rand.Intn(2501)
	imgSrc := "https://m.media-amazon.com/images/I/81zDtQMl1hL._AC_SY550._SX._UX._SY._UY_.jpg"
	brand := pick([]string{"Nike", "Adidas", "Puma", "Reebok", "Brooks", "Champion"})
	material := pick(materials)
	primaryColorCode := pick(colors)
	secondaryColorCode := pick(colors)
	styleNumber := "sc" + digits(5)
	globalProductCode := "po-" + digits(7)
	active := rand.Intn(2) == 0

	return models.Product{
		Name:               &name,
		Description:        &description,
		Demographic:        &demographic,
		Category:           &category,
		Type:               &productType,
		ReleaseDate:        &releaseDate,
		Price:              &price,
		Quantity:           &quantity,
		ImgSrc:             &imgSrc,
		Brand:              &brand,
		Material:           &material,
		PrimaryColorCode:   &primaryColorCode,
		SecondaryColorCode: &secondaryColorCode,
		StyleNumber:        &styleNumber,
		GlobalProductCode:  &globalProductCode,
		Active:             &active,
	}
}

// GenerateProducts builds n random products.
func GenerateProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = GenerateProduct()
	}
	return products
}
