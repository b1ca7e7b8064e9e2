package implementations

import "github.com/advikgoyal02/Minecraft/internal/world/block"

// StoneMaterial - камень, основание колонн. Игрок не может его разрушить.
type StoneMaterial struct{}

// ID возвращает идентификатор блока
func (m *StoneMaterial) ID() block.BlockID { return block.StoneBlockID }

// Name возвращает имя блока
func (m *StoneMaterial) Name() string { return "Stone" }

// Textures возвращает ячейку атласа
func (m *StoneMaterial) Textures() block.FaceTextures { return block.Uniform(2, 1) }

// Indestructible возвращает true: камень неразрушаем
func (m *StoneMaterial) Indestructible() bool { return true }
