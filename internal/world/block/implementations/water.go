package implementations

import "github.com/advikgoyal02/Minecraft/internal/world/block"

// WaterMaterial - вода ниже уровня моря. Для коллизий это обычный блок.
type WaterMaterial struct{}

func (m *WaterMaterial) ID() block.BlockID            { return block.WaterBlockID }
func (m *WaterMaterial) Name() string                 { return "Water" }
func (m *WaterMaterial) Textures() block.FaceTextures { return block.Uniform(0, 2) }
func (m *WaterMaterial) Indestructible() bool         { return false }
