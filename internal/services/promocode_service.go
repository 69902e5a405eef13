package services

import (
	"errors"
	"log"
	"strings"

	"github.com/ThidgesB/SportsApparel-API/internal/apperrors"
	"github.com/ThidgesB/SportsApparel-API/internal/models"
	"github.com/ThidgesB/SportsApparel-API/internal/repositories"
)

const titleConflictMessage = "Invalid title: title must be unique."

// PromocodeService handles business logic related to promotion codes.
type PromocodeService struct {
	repo repositories.PromocodeRepository
}

// NewPromocodeService creates a new PromocodeService.
func NewPromocodeService(repo repositories.PromocodeRepository) *PromocodeService {
	return &PromocodeService{
		repo: repo,
	}
}

// SavePromoCode persists a promocode. The title uniqueness check runs before
// field validation; the store's unique index backs it up so two concurrent
// saves of the same title cannot both succeed.
func (s *PromocodeService) SavePromoCode(promocode *models.Promocode) (*models.Promocode, error) {
	if promocode.Title != nil {
		existing, err := s.repo.GetByTitle(*promocode.Title)
		if err != nil {
			log.Printf("Error checking promocode title uniqueness: %v", err)
			return nil, apperrors.Persistence(err)
		}
		if existing != nil {
			return nil, apperrors.Conflict(titleConflictMessage)
		}
	}

	validationErrors := ValidatePromocode(promocode)
	if len(validationErrors) > 0 {
		return nil, apperrors.Validation(strings.Join(validationErrors, ", "))
	}

	if err := s.repo.Create(promocode); err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			return nil, apperrors.Conflict(titleConflictMessage)
		}
		log.Printf("Error creating promocode: %v", err)
		return nil, apperrors.Persistence(err)
	}
	return promocode, nil
}

// ValidatePromocode checks every promocode field rule and returns all
// violated-rule messages. A flat rate is normalized in place to two decimal
// places with half-up rounding; that normalization never fails.
func ValidatePromocode(promocode *models.Promocode) []string {
	var validationErrors []string

	if promocode.Title == nil {
		validationErrors = append(validationErrors, "Invalid title: Title must exist.")
	} else {
		if *promocode.Title != strings.ToUpper(*promocode.Title) {
			validationErrors = append(validationErrors, "Invalid title: Promo code title must be uppercase only.")
		}
		if strings.Contains(*promocode.Title, " ") {
			validationErrors = append(validationErrors, "Invalid title: Promo code title must not contain spaces.")
		}
	}

	if promocode.Description == nil {
		validationErrors = append(validationErrors, "Invalid description: Description must exist.")
	} else if len(*promocode.Description) > 100 {
		validationErrors = append(validationErrors, "Invalid description: Description must be 100 characters or less.")
	}

	if promocode.Type == nil || (*promocode.Type != "flat" && *promocode.Type != "percent") {
		validationErrors = append(validationErrors, "Invalid type: Type must be either 'flat' or 'percent'.")
	}

	if promocode.Rate == nil {
		validationErrors = append(validationErrors, "Invalid rate: Rate must exist.")
	}
	if promocode.Rate != nil && promocode.Type != nil {
		if *promocode.Type == "flat" {
			rounded := promocode.Rate.Round(2)
			promocode.Rate = &rounded
		}
		if *promocode.Type == "percent" {
			whole := promocode.Rate.IntPart()
			if promocode.Rate.Exponent() < 0 || whole < 0 || whole > 100 {
				validationErrors = append(validationErrors,
					"Invalid rate: When the rate is a percent, the rate must be an integer between 0 and 100.")
			}
		}
	}

	return validationErrors
}
