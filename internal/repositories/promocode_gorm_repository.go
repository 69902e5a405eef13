package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

// GORMPromocodeRepository is a GORM implementation of PromocodeRepository.
type GORMPromocodeRepository struct {
	db *gorm.DB
}

// NewGORMPromocodeRepository creates a new instance of GORMPromocodeRepository.
func NewGORMPromocodeRepository(db *gorm.DB) *GORMPromocodeRepository {
	return &GORMPromocodeRepository{
		db: db,
	}
}

// GetByTitle retrieves a promocode by its exact title, or (nil, nil) if none
// exists.
func (r *GORMPromocodeRepository) GetByTitle(title string) (*models.Promocode, error) {
	var promocode models.Promocode
	if err := r.db.First(&promocode, "title = ?", title).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get promocode by title %s: %w", title, err)
	}
	return &promocode, nil
}

// Create creates a new promocode. A collision on the title unique index is
// reported as ErrDuplicateTitle. Requires the gorm error translator to be
// enabled on the connection.
func (r *GORMPromocodeRepository) Create(promocode *models.Promocode) error {
	if promocode.ID == "" {
		promocode.ID = uuid.New().String()
	}
	if err := r.db.Create(promocode).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("failed to create promocode: %w", err)
	}
	return nil
}
