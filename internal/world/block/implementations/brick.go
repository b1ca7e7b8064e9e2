package implementations

import "github.com/advikgoyal02/Minecraft/internal/world/block"

// BrickMaterial - кирпич. Генератор его не использует, только игрок.
type BrickMaterial struct{}

func (m *BrickMaterial) ID() block.BlockID            { return block.BrickBlockID }
func (m *BrickMaterial) Name() string                 { return "Brick" }
func (m *BrickMaterial) Textures() block.FaceTextures { return block.Uniform(2, 0) }
func (m *BrickMaterial) Indestructible() bool         { return false }
