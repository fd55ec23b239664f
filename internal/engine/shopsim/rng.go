package shopsim

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstracts randomness so simulations can be replayed exactly
// with a seeded source.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// cryptoRNG reads the OS entropy source; used when the caller does not care
// about reproducibility.
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// The OS entropy source failing is unrecoverable; a weaker
		// fallback would silently change the result quality.
		panic("shopsim: reading entropy source: " + err.Error())
	}

	// top 53 bits give a uniform float in [0, 1)
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

func (c cryptoRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(c.Float64() * float64(n))
}

// DefaultRNG returns the crypto-backed source.
func DefaultRNG() RandomSource { return cryptoRNG{} }

// seededRNG is a PCG source for reproducible runs.
type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a deterministic source for the given seed.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

func (s *seededRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}
