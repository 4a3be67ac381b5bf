package hashtable

// hashPrime is the polynomial accumulation multiplier.
const hashPrime = 31

// hashIndex maps a key to a slot index in [0, size) by polynomial
// accumulation over the key's code points, reduced modulo size at every
// step. Deterministic and allocation-free; distinct keys may share an
// index, which is what the chaining strategy absorbs.
func hashIndex(key string, size int) int {
	h := 0
	for _, r := range key {
		h = (h*hashPrime + int(r)) % size
	}
	return h
}
