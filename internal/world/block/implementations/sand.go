package implementations

import "github.com/advikgoyal02/Minecraft/internal/world/block"

// SandMaterial - песок: пляжи и дно водоёмов
type SandMaterial struct{}

func (m *SandMaterial) ID() block.BlockID            { return block.SandBlockID }
func (m *SandMaterial) Name() string                 { return "Sand" }
func (m *SandMaterial) Textures() block.FaceTextures { return block.Uniform(1, 1) }
func (m *SandMaterial) Indestructible() bool         { return false }
