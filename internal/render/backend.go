package render

import (
	"errors"

	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// ErrUnknownHandle возвращается при удалении несуществующего меша
var ErrUnknownHandle = errors.New("unknown mesh handle")

// MeshHandle - идентификатор меша, выданный бэкендом
type MeshHandle uint64

// Capabilities описывает возможности бэкенда. Читается один раз при старте.
type Capabilities struct {
	Name string
	// IndexedDraw - бэкенд умеет рисовать индексированную геометрию
	IndexedDraw bool
}

// Backend - бэкенд отрисовки. Мир вызывает только загрузку и удаление мешей,
// отрисовку кадра делает хост.
type Backend interface {
	Capabilities() Capabilities
	// UploadMesh строит и регистрирует меш куба в позиции с текстурами материала.
	UploadMesh(pos vec.Vec3, material block.Material) (MeshHandle, error)
	// DeleteMesh освобождает меш.
	DeleteMesh(h MeshHandle) error
}
