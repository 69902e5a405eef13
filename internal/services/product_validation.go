package services

import (
	"time"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

const (
	releaseDateSlashLayout = "01/02/2006"
	releaseDateDashLayout  = "01-02-2006"
)

// minReleaseDate is the earliest acceptable product release date.
var minReleaseDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

var validTypes = map[string]struct{}{
	"Pant": {}, "Short": {}, "Shoe": {}, "Glove": {}, "Jacket": {},
	"Tank Top": {}, "Sock": {}, "Sunglasses": {}, "Hat": {}, "Helmet": {},
	"Belt": {}, "Visor": {}, "Shin Guard": {}, "Elbow Pad": {}, "Headband": {},
	"Wristband": {}, "Hoodie": {}, "Flip Flop": {}, "Pool Noodle": {},
}

var validCategories = map[string]struct{}{
	"Golf": {}, "Soccer": {}, "Basketball": {}, "Hockey": {}, "Football": {},
	"Running": {}, "Baseball": {}, "Skateboarding": {}, "Boxing": {}, "Weightlifting": {},
}

var validDemographics = map[string]struct{}{
	"Men": {}, "Women": {}, "Kids": {},
}

func isMember(set map[string]struct{}, value *string) bool {
	if value == nil {
		return false
	}
	_, ok := set[*value]
	return ok
}

// ValidateProduct checks every field rule and returns all violated-rule
// messages; an empty slice means the product may be persisted.
//
// Two fields are normalized in place as a side effect: the release date is
// re-serialized into whichever of the two accepted layouts it parsed with,
// and the price is truncated to two decimal places. Both normalizations are
// stable, so re-validating an already valid product changes nothing.
func ValidateProduct(product *models.Product) []string {
	var validationErrors []string

	if product.Name == nil || len(*product.Name) < 3 || len(*product.Name) > 100 {
		validationErrors = append(validationErrors, "Name should be between 3 and 100 characters.")
	}

	if product.Description == nil {
		validationErrors = append(validationErrors, "Description is required.")
	} else if len(*product.Description) > 200 {
		validationErrors = append(validationErrors, "Description should be at most 200 characters.")
	}

	if !isMember(validDemographics, product.Demographic) {
		validationErrors = append(validationErrors, "Invalid demographic.")
	}
	if !isMember(validCategories, product.Category) {
		validationErrors = append(validationErrors, "Invalid category.")
	}
	if !isMember(validTypes, product.Type) {
		validationErrors = append(validationErrors, "Invalid type.")
	}

	if product.ReleaseDate != nil {
		if releaseDate, err := time.Parse(releaseDateSlashLayout, *product.ReleaseDate); err == nil {
			if releaseDate.Before(minReleaseDate) {
				validationErrors = append(validationErrors, "Release date must be after 01/01/1900.")
			} else {
				normalized := releaseDate.Format(releaseDateSlashLayout)
				product.ReleaseDate = &normalized
			}
		} else if releaseDate, err := time.Parse(releaseDateDashLayout, *product.ReleaseDate); err == nil {
			if releaseDate.Before(minReleaseDate) {
				validationErrors = append(validationErrors, "Release date must be after 1/1/1900.")
			} else {
				normalized := releaseDate.Format(releaseDateDashLayout)
				product.ReleaseDate = &normalized
			}
		} else {
			validationErrors = append(validationErrors,
				"Invalid release date format. Please use MM/dd/yyyy or MM-dd-yyyy format.")
		}
	} else {
		validationErrors = append(validationErrors, "Release date is required.")
	}

	if product.Price != nil {
		truncated := product.Price.Truncate(2)
		product.Price = &truncated
	} else {
		validationErrors = append(validationErrors, "Price is required.")
	}

	if product.ImgSrc == nil {
		validationErrors = append(validationErrors, "imgSrc is required.")
	}
	if product.Quantity == nil {
		validationErrors = append(validationErrors, "Quantity is required.")
	}
	if product.Brand == nil {
		validationErrors = append(validationErrors, "Brand is required.")
	}
	if product.Material == nil {
		validationErrors = append(validationErrors, "Material is required.")
	}
	if product.PrimaryColorCode == nil {
		validationErrors = append(validationErrors, "Primary Color Code is required.")
	}
	if product.SecondaryColorCode == nil {
		validationErrors = append(validationErrors, "Secondary Color Code is required.")
	}
	if product.StyleNumber == nil {
		validationErrors = append(validationErrors, "Style Number is required.")
	}
	if product.GlobalProductCode == nil {
		validationErrors = append(validationErrors, "Global Product Code is required.")
	}
	if product.Active == nil {
		validationErrors = append(validationErrors, "Active field is required.")
	}

	return validationErrors
}
