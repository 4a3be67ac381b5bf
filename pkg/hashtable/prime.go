package hashtable

// isPrime reports whether n is prime, by trial division with odd
// candidates up to floor(sqrt(n)).
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// nextPrime returns the smallest prime greater than or equal to n.
// Inputs below 2 are clamped to 2 so the search always terminates on a
// valid table size.
func nextPrime(n int) int {
	if n < 2 {
		n = 2
	}
	for !isPrime(n) {
		n++
	}
	return n
}
