package implementations

import "github.com/advikgoyal02/Minecraft/internal/world/block"

// WoodMaterial - ствол дерева
type WoodMaterial struct{}

func (m *WoodMaterial) ID() block.BlockID            { return block.WoodBlockID }
func (m *WoodMaterial) Name() string                 { return "Wood" }
func (m *WoodMaterial) Textures() block.FaceTextures { return block.Uniform(3, 1) }
func (m *WoodMaterial) Indestructible() bool         { return false }

// LeafMaterial - крона дерева
type LeafMaterial struct{}

func (m *LeafMaterial) ID() block.BlockID            { return block.LeafBlockID }
func (m *LeafMaterial) Name() string                 { return "Leaf" }
func (m *LeafMaterial) Textures() block.FaceTextures { return block.Uniform(3, 0) }
func (m *LeafMaterial) Indestructible() bool         { return false }
