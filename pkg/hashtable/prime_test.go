package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{17, true},
		{25, false},
		{97, true},
		{1331, false},
		{1333, false},
		{7919, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isPrime(tt.n), "isPrime(%d)", tt.n)
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative clamps to 2", -5, 2},
		{"zero clamps to 2", 0, 2},
		{"one clamps to 2", 1, 2},
		{"prime returns itself", 13, 13},
		{"even rounds up", 14, 17},
		{"padded capacity of 2", 3, 3},
		{"padded capacity of 1000", 1330, 1361},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextPrime(tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, isPrime(got))
		})
	}
}
