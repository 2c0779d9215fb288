package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedProducts(t *testing.T) {
	require.NotEmpty(t, seedProducts)

	seen := make(map[string]bool)
	for _, p := range seedProducts {
		assert.NotEmpty(t, p.ID, "product id")
		assert.NotEmpty(t, p.Name, "product name")
		assert.GreaterOrEqual(t, p.Price, 0.0, "price of %s", p.Name)
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
	}
}
