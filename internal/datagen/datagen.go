// Package datagen produces sample inventory products for seeding
// interactive sessions and driving benchmark runs.
package datagen

import (
	"fmt"
	"math/rand"

	"github.com/tidyware/stockroom/pkg/types"
)

// Name and category pools for generated products.
var (
	baseNames = []string{
		"Laptop", "Mouse", "Keyboard", "Monitor", "Headphones",
		"Webcam", "Printer", "Hard Drive", "Cable", "USB Hub",
	}
	suffixes   = []string{"Pro", "Plus", "Basic"}
	categories = []string{"Electronics", "Office", "Accessories", "Storage", "Audio"}
)

// Products generates n products with sequential IDs P0001..P{n} and
// randomized payload fields drawn from the fixed pools. Stock is in
// [1, 100]. The rng controls payload selection only; IDs are always
// deterministic, which lets benchmark code predict existing and absent
// keys.
func Products(rng *rand.Rand, n int) []*types.Product {
	out := make([]*types.Product, n)
	for i := 0; i < n; i++ {
		out[i] = &types.Product{
			ID:       ProductID(i),
			Name:     fmt.Sprintf("%s %s", baseNames[rng.Intn(len(baseNames))], suffixes[rng.Intn(len(suffixes))]),
			Category: categories[rng.Intn(len(categories))],
			Stock:    1 + rng.Intn(100),
		}
	}
	return out
}

// ProductID returns the ID of the i-th generated product (zero-based).
func ProductID(i int) string {
	return fmt.Sprintf("P%04d", i+1)
}

// AbsentID returns the i-th key guaranteed never to be generated by
// Products, for miss-path lookups.
func AbsentID(i int) string {
	return fmt.Sprintf("X%04d", i)
}
