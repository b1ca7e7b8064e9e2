package world

import (
	"fmt"

	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// WorkKind определяет тип отложенной операции
type WorkKind uint8

const (
	WorkShow WorkKind = iota // Загрузить меш блока
	WorkHide                 // Удалить меш блока
)

// String возвращает имя операции
func (k WorkKind) String() string {
	switch k {
	case WorkShow:
		return "show"
	case WorkHide:
		return "hide"
	default:
		return fmt.Sprintf("WorkKind(%d)", uint8(k))
	}
}

// WorkItem - элемент очереди. Block заполнен только для WorkShow.
type WorkItem struct {
	Kind  WorkKind
	Pos   vec.Vec3
	Block block.BlockID
}

// ShowItem создает операцию показа
func ShowItem(pos vec.Vec3, id block.BlockID) WorkItem {
	return WorkItem{Kind: WorkShow, Pos: pos, Block: id}
}

// HideItem создает операцию скрытия
func HideItem(pos vec.Vec3) WorkItem {
	return WorkItem{Kind: WorkHide, Pos: pos}
}
