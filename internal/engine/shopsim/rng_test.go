package shopsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcspirits/spirits-api/internal/engine/shopsim"
)

func TestDefaultRNGStaysInRange(t *testing.T) {
	rng := shopsim.DefaultRNG()
	for i := 0; i < 1000; i++ {
		v := rng.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)

		n := rng.IntN(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}

func TestRNGIntNHandlesNonPositiveBounds(t *testing.T) {
	assert.Zero(t, shopsim.DefaultRNG().IntN(0))
	assert.Zero(t, shopsim.NewSeededRNG(1).IntN(-3))
}

func TestSeededRNGIsReproducible(t *testing.T) {
	a := shopsim.NewSeededRNG(17)
	b := shopsim.NewSeededRNG(17)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}
}
