package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceStaysInHalfOpenRange(t *testing.T) {
	s := New(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.InRange(3, 9)
		require.GreaterOrEqual(t, v, 3)
		require.Less(t, v, 9)
		seen[v] = true
	}
	assert.Len(t, seen, 6)
}

func TestSourceReversedOrEmptyRangeReturnsLow(t *testing.T) {
	s := New(1)
	assert.Equal(t, 2800, s.InRange(2800, 2500))
	assert.Equal(t, 5, s.InRange(5, 5))
}

func TestSourceIsReproducible(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.InRange(0, 1000), b.InRange(0, 1000))
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, 1200, Fixed{}.InRange(1200, 1900))
}
