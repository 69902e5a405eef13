package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ThidgesB/SportsApparel-API/internal/apperrors"
	"github.com/ThidgesB/SportsApparel-API/internal/models"
	"github.com/ThidgesB/SportsApparel-API/internal/repositories"
	"github.com/ThidgesB/SportsApparel-API/internal/services"
)

// MockPromocodeRepository is a mock implementation of repositories.PromocodeRepository
type MockPromocodeRepository struct {
	mock.Mock
}

func (m *MockPromocodeRepository) GetByTitle(title string) (*models.Promocode, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promocode), args.Error(1)
}

func (m *MockPromocodeRepository) Create(promocode *models.Promocode) error {
	args := m.Called(promocode)
	return args.Error(0)
}

// validPromocode builds a promocode that passes every validation rule.
func validPromocode() models.Promocode {
	return models.Promocode{
		Title:       strPtr("SUMMER2023"),
		Description: strPtr("Summer discount"),
		Type:        strPtr("percent"),
		Rate:        decPtr("50"),
	}
}

func TestValidatePromocode_Valid(t *testing.T) {
	promocode := validPromocode()
	assert.Empty(t, services.ValidatePromocode(&promocode))
}

func TestValidatePromocode_Title(t *testing.T) {
	promocode := validPromocode()
	promocode.Title = nil
	assert.Contains(t, services.ValidatePromocode(&promocode), "Invalid title: Title must exist.")

	// Lowercase and spaces are independent rules; both fire together.
	promocode = validPromocode()
	promocode.Title = strPtr("summer 2023")
	errs := services.ValidatePromocode(&promocode)
	assert.Contains(t, errs, "Invalid title: Promo code title must be uppercase only.")
	assert.Contains(t, errs, "Invalid title: Promo code title must not contain spaces.")
}

func TestValidatePromocode_Description(t *testing.T) {
	promocode := validPromocode()
	promocode.Description = nil
	assert.Contains(t, services.ValidatePromocode(&promocode), "Invalid description: Description must exist.")

	promocode = validPromocode()
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'd'
	}
	promocode.Description = strPtr(string(long))
	assert.Contains(t, services.ValidatePromocode(&promocode),
		"Invalid description: Description must be 100 characters or less.")
}

func TestValidatePromocode_Type(t *testing.T) {
	promocode := validPromocode()
	promocode.Type = strPtr("tiered")
	assert.Contains(t, services.ValidatePromocode(&promocode),
		"Invalid type: Type must be either 'flat' or 'percent'.")

	promocode = validPromocode()
	promocode.Type = nil
	assert.Contains(t, services.ValidatePromocode(&promocode),
		"Invalid type: Type must be either 'flat' or 'percent'.")
}

func TestValidatePromocode_PercentRate(t *testing.T) {
	rateError := "Invalid rate: When the rate is a percent, the rate must be an integer between 0 and 100."

	tests := []struct {
		name    string
		rate    string
		wantErr bool
	}{
		{"whole number in range", "50", false},
		{"zero", "0", false},
		{"hundred", "100", false},
		{"fractional", "10.5", true},
		{"fractional scale on whole value", "50.0", true},
		{"negative", "-1", true},
		{"over hundred", "101", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promocode := validPromocode()
			promocode.Rate = decPtr(tt.rate)
			errs := services.ValidatePromocode(&promocode)
			if tt.wantErr {
				assert.Contains(t, errs, rateError)
			} else {
				assert.NotContains(t, errs, rateError)
			}
		})
	}
}

func TestValidatePromocode_FlatRateRoundedHalfUp(t *testing.T) {
	promocode := validPromocode()
	promocode.Type = strPtr("flat")
	promocode.Rate = decPtr("10.005")

	require.Empty(t, services.ValidatePromocode(&promocode))
	assert.Equal(t, "10.01", promocode.Rate.String())

	// Stable under re-validation.
	require.Empty(t, services.ValidatePromocode(&promocode))
	assert.Equal(t, "10.01", promocode.Rate.String())
}

func TestValidatePromocode_MissingRate(t *testing.T) {
	promocode := validPromocode()
	promocode.Rate = nil
	assert.Contains(t, services.ValidatePromocode(&promocode), "Invalid rate: Rate must exist.")
}

func TestPromocodeService_SavePromoCode(t *testing.T) {
	mockRepo := new(MockPromocodeRepository)
	service := services.NewPromocodeService(mockRepo)

	promocode := validPromocode()
	mockRepo.On("GetByTitle", "SUMMER2023").Return(nil, nil).Once()
	mockRepo.On("Create", &promocode).Return(nil).Once()

	saved, err := service.SavePromoCode(&promocode)
	assert.NoError(t, err)
	assert.Equal(t, &promocode, saved)
	mockRepo.AssertExpectations(t)
}

func TestPromocodeService_SavePromoCode_DuplicateTitle(t *testing.T) {
	mockRepo := new(MockPromocodeRepository)
	service := services.NewPromocodeService(mockRepo)

	// The promocode also carries field errors; the conflict wins because the
	// uniqueness check runs before field validation.
	promocode := validPromocode()
	promocode.Title = strPtr("summer 2023")
	promocode.Rate = decPtr("10.5")

	existing := validPromocode()
	mockRepo.On("GetByTitle", "summer 2023").Return(&existing, nil).Once()

	saved, err := service.SavePromoCode(&promocode)
	assert.Nil(t, saved)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, "Invalid title: title must be unique.", appErr.Message)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPromocodeService_SavePromoCode_ValidationFailed(t *testing.T) {
	mockRepo := new(MockPromocodeRepository)
	service := services.NewPromocodeService(mockRepo)

	promocode := validPromocode()
	promocode.Rate = decPtr("10.5")
	mockRepo.On("GetByTitle", "SUMMER2023").Return(nil, nil).Once()

	saved, err := service.SavePromoCode(&promocode)
	assert.Nil(t, saved)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPromocodeService_SavePromoCode_IndexCollision(t *testing.T) {
	mockRepo := new(MockPromocodeRepository)
	service := services.NewPromocodeService(mockRepo)

	// A concurrent save can slip between the pre-check and the insert; the
	// unique index collision is reported as the same conflict.
	promocode := validPromocode()
	mockRepo.On("GetByTitle", "SUMMER2023").Return(nil, nil).Once()
	mockRepo.On("Create", &promocode).Return(repositories.ErrDuplicateTitle).Once()

	saved, err := service.SavePromoCode(&promocode)
	assert.Nil(t, saved)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	mockRepo.AssertExpectations(t)
}

func TestPromocodeService_SavePromoCode_PersistenceFailed(t *testing.T) {
	mockRepo := new(MockPromocodeRepository)
	service := services.NewPromocodeService(mockRepo)

	promocode := validPromocode()
	mockRepo.On("GetByTitle", "SUMMER2023").Return(nil, fmt.Errorf("database error")).Once()

	saved, err := service.SavePromoCode(&promocode)
	assert.Nil(t, saved)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindPersistence, appErr.Kind)
	mockRepo.AssertExpectations(t)
}
