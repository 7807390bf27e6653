package check

import (
	"crypto/rand"
	"math/big"
)

const float64Bits = 1 << 53

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are uniformly distributed, in [0, 1) for
// Float64 and in [0, n) for Intn with any n > 0.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Float64 is in [0, 1); every value
// returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Float64 returns a cryptographically secure random float64 in [0, 1).
//
// Precondition: Panics with "check: crypto/rand failure: <err>" if
// crypto/rand fails.
func (c *cryptoSource) Float64() float64 {
	val, err := rand.Int(rand.Reader, big.NewInt(float64Bits))
	if err != nil {
		panic("check: crypto/rand failure: " + err.Error())
	}
	return float64(val.Int64()) / float64Bits
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "check: Intn called with n <= 0" if n <= 0.
// Panics with "check: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("check: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("check: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}
