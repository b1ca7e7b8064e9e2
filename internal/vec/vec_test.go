package vec

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   mgl64.Vec3
		want Vec3
	}{
		{mgl64.Vec3{0, 0, 0}, Vec3{0, 0, 0}},
		{mgl64.Vec3{0.4, 0.5, 0.6}, Vec3{0, 1, 1}},
		{mgl64.Vec3{-0.4, -0.5, -0.6}, Vec3{0, -1, -1}},
		{mgl64.Vec3{15.49, 2.0, -7.51}, Vec3{15, 2, -8}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "Normalize(%v)", c.in)
	}
}

func TestSectorize(t *testing.T) {
	assert.Equal(t, Vec3{0, 0, 0}, Sectorize(Vec3{0, 100, 15}))
	assert.Equal(t, Vec3{1, 0, 0}, Sectorize(Vec3{16, -3, 0}))
	assert.Equal(t, Vec3{-1, 0, -1}, Sectorize(Vec3{-1, 5, -16}))
	assert.Equal(t, Vec3{-2, 0, 0}, Sectorize(Vec3{-17, 0, 15}))
	assert.Equal(t, Vec3{0, 0, 0}, SectorOf(mgl64.Vec3{15.4, 80, 0.2}))
	assert.Equal(t, Vec3{1, 0, 0}, SectorOf(mgl64.Vec3{15.5, 80, 0.2}), "15.5 округляется до 16")
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, FloorDiv(0, 16))
	assert.Equal(t, -1, FloorDiv(-1, 16))
	assert.Equal(t, -1, FloorDiv(-16, 16))
	assert.Equal(t, -2, FloorDiv(-17, 16))
	assert.Equal(t, 2, FloorDiv(32, 16))
}

func TestNeighborsAndAxis(t *testing.T) {
	p := Vec3{1, 2, 3}
	n := p.Neighbors()
	assert.Equal(t, Vec3{1, 3, 3}, n[0])
	assert.Equal(t, Vec3{1, 1, 3}, n[1])
	assert.Equal(t, Vec3{0, 2, 3}, n[2])
	assert.Equal(t, Vec3{2, 2, 3}, n[3])
	assert.Equal(t, Vec3{1, 2, 4}, n[4])
	assert.Equal(t, Vec3{1, 2, 2}, n[5])

	for i := 0; i < 3; i++ {
		assert.Equal(t, 42, p.WithAxis(i, 42).Axis(i))
	}
	assert.Equal(t, 1, p.DistanceSq(Vec3{1, 2, 4}))
	assert.Equal(t, Vec2{X: 1, Z: 3}, p.ToVec2())
	assert.Equal(t, Vec3{-1, 0, 0}, Vec2{X: -3, Z: 4}.ToSector())
}
