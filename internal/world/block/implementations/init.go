package implementations

import "github.com/advikgoyal02/Minecraft/internal/world/block"

// Регистрируем все материалы при импорте пакета
func init() {
	// Рельеф
	block.Register(block.StoneBlockID, &StoneMaterial{})
	block.Register(block.GrassBlockID, &GrassMaterial{})
	block.Register(block.WaterBlockID, &WaterMaterial{})
	block.Register(block.SandBlockID, &SandMaterial{})

	// Постройки
	block.Register(block.BrickBlockID, &BrickMaterial{})

	// Деревья
	block.Register(block.WoodBlockID, &WoodMaterial{})
	block.Register(block.LeafBlockID, &LeafMaterial{})
}
