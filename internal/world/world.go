package world

import (
	"time"

	"github.com/advikgoyal02/Minecraft/internal/logging"
	"github.com/advikgoyal02/Minecraft/internal/render"
	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// DefaultStreamRadius - радиус диска секторов вокруг игрока
const DefaultStreamRadius = 4

// Model - модель воксельного мира: хранилище блоков, индекс секторов,
// множество показанных блоков и очередь отложенной работы.
// Не потокобезопасна: все вызовы идут из цикла симуляции.
type Model struct {
	blocks   map[vec.Vec3]block.BlockID          // Авторитетный мир
	sectors  *SectorIndex                        // Позиции по секторам
	shown    map[vec.Vec3]block.BlockID          // Блоки, которые должны быть видны
	rendered map[vec.Vec3]render.MeshHandle      // Блоки с живым мешем в бэкенде
	queue    workQueue                           // Отложенные показы и скрытия
	backend  render.Backend                      // Бэкенд отрисовки
	pad      int                                 // Радиус стриминга в секторах
	now      func() time.Time                    // Часы для бюджета очереди
	log      *logging.Logger

	processed      uint64
	staleSkipped   uint64
	uploadFailures uint64
}

// Option настраивает Model
type Option func(*Model)

// WithLogger задаёт логгер модели
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithClock подменяет часы, по которым считается бюджет очереди
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithStreamRadius задаёт радиус диска секторов
func WithStreamRadius(pad int) Option {
	return func(m *Model) { m.pad = pad }
}

// NewModel создаёт пустой мир, связанный с бэкендом отрисовки
func NewModel(backend render.Backend, opts ...Option) *Model {
	m := &Model{
		blocks:   make(map[vec.Vec3]block.BlockID),
		sectors:  NewSectorIndex(),
		shown:    make(map[vec.Vec3]block.BlockID),
		rendered: make(map[vec.Vec3]render.MeshHandle),
		backend:  backend,
		pad:      DefaultStreamRadius,
		now:      time.Now,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddBlock ставит блок и сразу обновляет видимость его и соседей
func (m *Model) AddBlock(pos vec.Vec3, id block.BlockID) {
	if _, ok := m.blocks[pos]; ok {
		m.RemoveBlock(pos)
	}
	m.insert(pos, id)
	if m.Exposed(pos) {
		m.ShowBlock(pos)
	}
	m.CheckNeighbors(pos)
}

// AddBlockDeferred ставит блок, а показ откладывает в очередь.
// Соседи не пересчитываются: это сделает стриминг секторов.
func (m *Model) AddBlockDeferred(pos vec.Vec3, id block.BlockID) {
	if _, ok := m.blocks[pos]; ok {
		m.RemoveBlockDeferred(pos)
	}
	m.insert(pos, id)
	m.ShowBlockDeferred(pos)
}

// RemoveBlock убирает блок, сразу скрывает его и открывает соседей.
// Пустая позиция - не ошибка.
func (m *Model) RemoveBlock(pos vec.Vec3) {
	if !m.erase(pos) {
		return
	}
	if _, ok := m.shown[pos]; ok {
		m.HideBlock(pos)
	} else {
		// меш мог остаться после отложенного скрытия, которое ещё в очереди
		m.deleteMesh(pos)
	}
	m.CheckNeighbors(pos)
}

// RemoveBlockDeferred убирает блок, скрытие откладывает в очередь
func (m *Model) RemoveBlockDeferred(pos vec.Vec3) {
	if !m.erase(pos) {
		return
	}
	if _, ok := m.shown[pos]; ok {
		m.HideBlockDeferred(pos)
	}
}

func (m *Model) insert(pos vec.Vec3, id block.BlockID) {
	m.blocks[pos] = id
	m.sectors.Insert(pos)
}

func (m *Model) erase(pos vec.Vec3) bool {
	if _, ok := m.blocks[pos]; !ok {
		return false
	}
	delete(m.blocks, pos)
	m.sectors.Remove(pos)
	return true
}

// BlockAt возвращает материал в позиции
func (m *Model) BlockAt(pos vec.Vec3) (block.BlockID, bool) {
	id, ok := m.blocks[pos]
	return id, ok
}

// Solid сообщает, занята ли позиция
func (m *Model) Solid(pos vec.Vec3) bool {
	_, ok := m.blocks[pos]
	return ok
}

// Len возвращает число блоков в мире
func (m *Model) Len() int { return len(m.blocks) }

// Sectors возвращает индекс секторов (только для чтения)
func (m *Model) Sectors() *SectorIndex { return m.sectors }

// StreamRadius возвращает радиус диска секторов
func (m *Model) StreamRadius() int { return m.pad }

// Stats - снимок счётчиков модели для метрик и строки статуса
type Stats struct {
	Blocks         int
	Sectors        int
	Shown          int
	Rendered       int
	Queued         int
	Processed      uint64
	StaleSkipped   uint64
	UploadFailures uint64
}

// Stats возвращает текущие счётчики
func (m *Model) Stats() Stats {
	return Stats{
		Blocks:         len(m.blocks),
		Sectors:        m.sectors.Len(),
		Shown:          len(m.shown),
		Rendered:       len(m.rendered),
		Queued:         m.queue.Len(),
		Processed:      m.processed,
		StaleSkipped:   m.staleSkipped,
		UploadFailures: m.uploadFailures,
	}
}
