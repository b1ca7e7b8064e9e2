package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advikgoyal02/Minecraft/internal/util"
	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

func blockID(t *testing.T, m *Model, p vec.Vec3) block.BlockID {
	t.Helper()
	id, ok := m.BlockAt(p)
	require.True(t, ok, "ожидался блок в %v", p)
	return id
}

func TestWorldGenerator_Columns(t *testing.T) {
	m, _ := newTestModel()
	heights := HeightFunc(func(x, z int) int {
		if x == 0 {
			return 2
		}
		return 8
	})
	gen := NewWorldGenerator(1, 2, heights)
	gen.TreeChance = 0

	placed := gen.Populate(m)

	// низкая колонна: камень, песок, вода до уровня моря
	assert.Equal(t, block.StoneBlockID, blockID(t, m, vec.Vec3{X: 0, Y: 1, Z: 0}))
	assert.Equal(t, block.SandBlockID, blockID(t, m, vec.Vec3{X: 0, Y: 2, Z: 0}))
	assert.Equal(t, block.WaterBlockID, blockID(t, m, vec.Vec3{X: 0, Y: 3, Z: 0}))
	assert.False(t, m.Solid(vec.Vec3{X: 0, Y: 4, Z: 0}))

	// высокая колонна: камень и трава
	for y := 1; y < 8; y++ {
		assert.Equal(t, block.StoneBlockID, blockID(t, m, vec.Vec3{X: 1, Y: y, Z: 1}))
	}
	assert.Equal(t, block.GrassBlockID, blockID(t, m, vec.Vec3{X: 1, Y: 8, Z: 1}))
	assert.False(t, m.Solid(vec.Vec3{X: 1, Y: 0, Z: 1}))

	assert.Equal(t, 22, placed)
	assert.Equal(t, 22, m.Len())
}

func TestWorldGenerator_Tree(t *testing.T) {
	m, _ := newTestModel()
	gen := NewWorldGenerator(7, 1, HeightFunc(func(int, int) int { return 8 }))
	gen.TreeChance = 1

	placed := gen.Populate(m)

	assert.Equal(t, block.WoodBlockID, blockID(t, m, vec.Vec3{Y: 9}))
	assert.Equal(t, block.WoodBlockID, blockID(t, m, vec.Vec3{Y: 10}))
	treeHeight := 3
	if id, _ := m.BlockAt(vec.Vec3{Y: 11}); id == block.WoodBlockID {
		treeHeight = 4
	}
	leafBase := 8 + treeHeight
	leaves := 0
	for y := leafBase; y < leafBase+2; y++ {
		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				if id, _ := m.BlockAt(vec.Vec3{X: dx, Y: y, Z: dz}); id == block.LeafBlockID {
					leaves++
				}
			}
		}
	}
	assert.Equal(t, 18, leaves)
	assert.Equal(t, 8+(treeHeight-1)+18, placed)
}

func TestWorldGenerator_DrainKeepsOnlyExposed(t *testing.T) {
	m, backend := newTestModel()
	gen := NewWorldGenerator(452692, 24, util.NewHeightMap(452692, 0.02, 20))
	gen.Populate(m)
	m.ProcessEntireQueue()

	exposed := 0
	for p := range m.blocks {
		if m.Exposed(p) {
			exposed++
			assert.True(t, m.Rendered(p), "открытый блок %v без меша", p)
		} else {
			assert.False(t, m.Shown(p), "закрытый блок %v показан", p)
		}
	}
	assert.Equal(t, exposed, backend.Live())
	assert.Equal(t, exposed, m.Stats().Shown)
}

func TestWorldGenerator_Deterministic(t *testing.T) {
	build := func() *Model {
		m, _ := newTestModel()
		gen := NewWorldGenerator(99, 16, util.NewHeightMap(99, 0.02, 20))
		gen.TreeChance = 0.2
		gen.Populate(m)
		return m
	}
	a, b := build(), build()
	assert.Equal(t, a.blocks, b.blocks)
}
