package block

import (
	"github.com/advikgoyal02/Minecraft/internal/vec"
)

// Source - доступ к миру только на чтение. Через него физика и луч
// видят блоки, не получая права менять мир.
type Source interface {
	// BlockAt возвращает материал в позиции и признак наличия блока.
	BlockAt(pos vec.Vec3) (BlockID, bool)

	// Solid сообщает, занята ли позиция блоком.
	Solid(pos vec.Vec3) bool
}

// SourceFunc адаптирует функцию проверки занятости к Source
type SourceFunc func(pos vec.Vec3) bool

// BlockAt для SourceFunc не знает материала и возвращает AirBlockID
func (f SourceFunc) BlockAt(pos vec.Vec3) (BlockID, bool) {
	return AirBlockID, f(pos)
}

// Solid вызывает функцию
func (f SourceFunc) Solid(pos vec.Vec3) bool {
	return f(pos)
}
