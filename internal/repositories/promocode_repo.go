package repositories

import (
	"errors"

	"github.com/ThidgesB/SportsApparel-API/internal/models"
)

// ErrDuplicateTitle is returned by Create when the promocode title collides
// with the unique index on the title column.
var ErrDuplicateTitle = errors.New("promocode title already exists")

// PromocodeRepository defines the interface for promocode data access.
type PromocodeRepository interface {
	// GetByTitle returns (nil, nil) when no promocode with the title exists.
	GetByTitle(title string) (*models.Promocode, error)
	Create(promocode *models.Promocode) error
}
