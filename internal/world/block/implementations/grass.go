package implementations

import "github.com/advikgoyal02/Minecraft/internal/world/block"

// GrassMaterial - трава: зелёный верх, земля снизу и дёрн по бокам
type GrassMaterial struct{}

// ID возвращает идентификатор блока
func (m *GrassMaterial) ID() block.BlockID { return block.GrassBlockID }

// Name возвращает имя блока
func (m *GrassMaterial) Name() string { return "Grass" }

// Textures возвращает разные ячейки для верха, низа и боков
func (m *GrassMaterial) Textures() block.FaceTextures {
	return block.FaceTextures{
		Top:    block.AtlasCell{Col: 1, Row: 0},
		Bottom: block.AtlasCell{Col: 0, Row: 1},
		Side:   block.AtlasCell{Col: 0, Row: 0},
	}
}

// Indestructible возвращает false
func (m *GrassMaterial) Indestructible() bool { return false }
