package datagen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	products := Products(rng, 20)
	require.Len(t, products, 20)

	seen := make(map[string]bool)
	for i, p := range products {
		assert.Equal(t, ProductID(i), p.ID)
		assert.False(t, seen[p.ID], "IDs must be unique")
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.Contains(t, categories, p.Category)
		assert.GreaterOrEqual(t, p.Stock, 1)
		assert.LessOrEqual(t, p.Stock, 100)
	}
}

func TestProductsDeterministicWithFixedSeed(t *testing.T) {
	a := Products(rand.New(rand.NewSource(7)), 10)
	b := Products(rand.New(rand.NewSource(7)), 10)

	for i := range a {
		assert.Equal(t, *a[i], *b[i])
	}
}

func TestIDs(t *testing.T) {
	assert.Equal(t, "P0001", ProductID(0))
	assert.Equal(t, "P1000", ProductID(999))
	assert.Equal(t, "X0000", AbsentID(0))

	// Absent keys never overlap generated ones.
	for i := 0; i < 100; i++ {
		assert.NotEqual(t, ProductID(i), AbsentID(i))
	}
}

func TestProductsZero(t *testing.T) {
	assert.Empty(t, Products(rand.New(rand.NewSource(1)), 0))
}
