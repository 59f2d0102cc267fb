package tracking

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. Safe for concurrent use.
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource returns a source backed by crypto/rand.Reader.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{reader: rand.Reader}
}

// Intn returns a uniform value in [0, n).
func (s *CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid range %d", n)
	}

	v, err := rand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random value: %w", err)
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic source for tests.
type SeededSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeededSource returns a PCG-backed source seeded with seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{
		rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Intn returns a uniform value in [0, n).
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid range %d", n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}
