package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightMapDeterministic(t *testing.T) {
	a := NewHeightMap(42, 0.05, 20)
	b := NewHeightMap(42, 0.05, 20)
	for x := -10; x < 10; x++ {
		for z := -10; z < 10; z++ {
			assert.Equal(t, a.Height(x, z), b.Height(x, z), "высота (%d,%d) должна совпадать при одном сиде", x, z)
		}
	}
}

func TestHeightMapRange(t *testing.T) {
	h := NewHeightMap(7, 0.03, 20)
	for x := 0; x < 64; x++ {
		for z := 0; z < 64; z++ {
			v := h.Height(x, z)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 20)
		}
	}
}

func TestHeightMapDefaultScale(t *testing.T) {
	h := NewHeightMap(1, 0, 10)
	assert.Equal(t, 0.02, h.Scale)
}
