package hashtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashIndexKnownValues(t *testing.T) {
	tests := []struct {
		key  string
		size int
		want int
	}{
		{"", 7, 0},
		{"A", 3, 2},  // 'A' = 65, 65 mod 3
		{"ab", 5, 0}, // ((97 mod 5)*31 + 98) mod 5
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hashIndex(tt.key, tt.size), "hashIndex(%q, %d)", tt.key, tt.size)
	}
}

func TestHashIndexDeterministicAndInRange(t *testing.T) {
	sizes := []int{2, 3, 17, 1361}

	for _, size := range sizes {
		for i := 0; i < 200; i++ {
			key := fmt.Sprintf("P%04d", i)
			first := hashIndex(key, size)
			assert.Equal(t, first, hashIndex(key, size), "hash must be stable for %q", key)
			assert.GreaterOrEqual(t, first, 0)
			assert.Less(t, first, size)
		}
	}
}

func TestHashIndexMultibyteKeys(t *testing.T) {
	// Code-point accumulation must be stable for non-ASCII keys too.
	for _, key := range []string{"Electrónica", "Audífonos", "日本語"} {
		idx := hashIndex(key, 101)
		assert.Equal(t, idx, hashIndex(key, 101))
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 101)
	}
}
