package block

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownMaterial возвращается, когда для ID не зарегистрирован материал
var ErrUnknownMaterial = errors.New("unknown material")

// Регистр заполняется в init() пакета implementations и дальше только читается
var registry = make(map[BlockID]Material)

// Register добавляет материал в регистр
func Register(id BlockID, material Material) {
	registry[id] = material
}

// Get возвращает материал для указанного ID
func Get(id BlockID) (Material, bool) {
	material, exists := registry[id]
	return material, exists
}

// Lookup возвращает материал или ErrUnknownMaterial
func Lookup(id BlockID) (Material, error) {
	material, exists := registry[id]
	if !exists {
		return nil, fmt.Errorf("block id %d: %w", id, ErrUnknownMaterial)
	}
	return material, nil
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// Registered возвращает все зарегистрированные ID по возрастанию
func Registered() []BlockID {
	ids := make([]BlockID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BlockID представляет идентификатор материала блока
type BlockID uint16

// Константы ID блоков
const (
	// Пустота: в мире не хранится, используется как "нет блока"
	AirBlockID   BlockID = iota // 0
	StoneBlockID                // 1
	GrassBlockID                // 2
	WaterBlockID                // 3
	SandBlockID                 // 4
	BrickBlockID                // 5

	// Растительность (начиная с 100)
	WoodBlockID BlockID = 100 // Ствол дерева
	LeafBlockID BlockID = 101 // Листва
)

// String возвращает имя материала или числовой ID
func (id BlockID) String() string {
	if m, ok := registry[id]; ok {
		return m.Name()
	}
	return fmt.Sprintf("BlockID(%d)", id)
}
