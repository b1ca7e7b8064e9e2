package world

import (
	"math/rand"

	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// HeightSource - детерминированная высота поверхности колонны
type HeightSource interface {
	Height(x, z int) int
}

// HeightFunc адаптирует функцию к HeightSource
type HeightFunc func(x, z int) int

// Height вызывает функцию
func (f HeightFunc) Height(x, z int) int { return f(x, z) }

// Константы шаблона колонны
const (
	DefaultSeaLevel   = 4 // Ниже - вода
	DefaultBeachLevel = 6 // Ниже - песчаный пляж
	bedrockLevel      = 1 // Нижний слой камня
	minTreeHeight     = 3
	maxTreeHeight     = 4
)

// WorldGenerator раскладывает шаблон колонн по карте высот
type WorldGenerator struct {
	Seed       int64
	Size       int     // Сторона квадрата мира в колоннах
	SeaLevel   int     // Вода заполняет колонны до SeaLevel-1
	BeachLevel int     // Поверхность ниже - песок, выше - трава
	TreeChance float64 // Вероятность дерева на высоких колоннах
	Heights    HeightSource
}

// NewWorldGenerator создаёт генератор мира
func NewWorldGenerator(seed int64, size int, heights HeightSource) *WorldGenerator {
	return &WorldGenerator{
		Seed:       seed,
		Size:       size,
		SeaLevel:   DefaultSeaLevel,
		BeachLevel: DefaultBeachLevel,
		TreeChance: 0.01,
		Heights:    heights,
	}
}

// Populate заполняет мир колоннами (0..Size-1)^2. Все установки отложенные:
// после генерации хост вызывает ProcessEntireQueue. Возвращает число блоков.
func (wg *WorldGenerator) Populate(m *Model) int {
	// Локальный генератор случайных чисел для детерминированности
	rng := rand.New(rand.NewSource(wg.Seed))
	placed := 0
	for x := 0; x < wg.Size; x++ {
		for z := 0; z < wg.Size; z++ {
			col := vec.Vec2{X: x, Z: z}
			h := wg.Heights.Height(x, z)
			placed += wg.placeColumn(m, col, h)
			if h > wg.BeachLevel && rng.Float64() < wg.TreeChance {
				placed += wg.placeTree(m, col, h, rng)
			}
		}
	}
	return placed
}

// placeColumn кладёт колонну: камень снизу, затем поверхность, вода до уровня моря
func (wg *WorldGenerator) placeColumn(m *Model, col vec.Vec2, h int) int {
	placed := 0
	for y := h - 1; y >= bedrockLevel; y-- {
		m.AddBlockDeferred(col.At(y), block.StoneBlockID)
		placed++
	}

	m.AddBlockDeferred(col.At(h), wg.surfaceFor(h))
	placed++

	for y := h + 1; y < wg.SeaLevel; y++ {
		m.AddBlockDeferred(col.At(y), block.WaterBlockID)
		placed++
	}
	return placed
}

// surfaceFor выбирает материал поверхности по высоте
func (wg *WorldGenerator) surfaceFor(h int) block.BlockID {
	if h < wg.BeachLevel {
		return block.SandBlockID
	}
	return block.GrassBlockID
}

// placeTree ставит ствол 3-4 блока и крону 3x3x2 над ним.
// Листва перезаписывает то, что уже стоит на её месте.
func (wg *WorldGenerator) placeTree(m *Model, col vec.Vec2, h int, rng *rand.Rand) int {
	treeHeight := minTreeHeight + rng.Intn(maxTreeHeight-minTreeHeight+1)
	placed := 0
	for y := h + 1; y < h+treeHeight; y++ {
		m.AddBlockDeferred(col.At(y), block.WoodBlockID)
		placed++
	}

	leafBase := h + treeHeight
	for y := leafBase; y < leafBase+2; y++ {
		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				m.AddBlockDeferred(col.Add(vec.Vec2{X: dx, Z: dz}).At(y), block.LeafBlockID)
				placed++
			}
		}
	}
	return placed
}
