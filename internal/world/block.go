package world

import (
	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// Block - запись мира: позиция и материал
type Block struct {
	Pos vec.Vec3
	ID  block.BlockID
}

// Material возвращает материал блока из регистра
func (b Block) Material() (block.Material, bool) {
	return block.Get(b.ID)
}

// Indestructible сообщает, что игрок не может убрать блок
func (b Block) Indestructible() bool {
	m, ok := b.Material()
	return ok && m.Indestructible()
}

// SectorBlocks возвращает блоки сектора в порядке вставки
func (m *Model) SectorBlocks(sector vec.Vec3) []Block {
	positions := m.sectors.Positions(sector)
	out := make([]Block, 0, len(positions))
	for _, p := range positions {
		out = append(out, Block{Pos: p, ID: m.blocks[p]})
	}
	return out
}
