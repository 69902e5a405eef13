package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThidgesB/SportsApparel-API/internal/data"
	"github.com/ThidgesB/SportsApparel-API/internal/services"
)

func TestGenerateProducts_PassCatalogValidation(t *testing.T) {
	products := data.GenerateProducts(50)
	require.Len(t, products, 50)

	for i := range products {
		assert.Empty(t, services.ValidateProduct(&products[i]), "generated product %d failed validation", i)
	}
}

func TestGenerateProducts_Empty(t *testing.T) {
	assert.Empty(t, data.GenerateProducts(0))
}
