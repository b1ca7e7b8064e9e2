package world

import (
	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// Exposed возвращает true, если хотя бы одна из шести граней граничит с пустотой
func (m *Model) Exposed(pos vec.Vec3) bool {
	for _, n := range pos.Neighbors() {
		if _, ok := m.blocks[n]; !ok {
			return true
		}
	}
	return false
}

// CheckNeighbors пересчитывает видимость шести соседей после изменения в pos.
// Экспозиция зависит только от соседей, поэтому одного шага достаточно.
func (m *Model) CheckNeighbors(pos vec.Vec3) {
	for _, n := range pos.Neighbors() {
		if _, ok := m.blocks[n]; !ok {
			continue
		}
		_, shown := m.shown[n]
		if m.Exposed(n) {
			if !shown {
				m.ShowBlock(n)
			}
		} else if shown {
			m.HideBlock(n)
		}
	}
}

// Shown сообщает, отмечен ли блок как видимый
func (m *Model) Shown(pos vec.Vec3) bool {
	_, ok := m.shown[pos]
	return ok
}

// Rendered сообщает, держит ли бэкенд меш для позиции
func (m *Model) Rendered(pos vec.Vec3) bool {
	_, ok := m.rendered[pos]
	return ok
}

// ShowBlock отмечает блок видимым и сразу загружает меш
func (m *Model) ShowBlock(pos vec.Vec3) {
	id, ok := m.markShown(pos)
	if !ok {
		return
	}
	m.upload(pos, id)
}

// ShowBlockDeferred отмечает блок видимым, загрузка меша уходит в очередь
func (m *Model) ShowBlockDeferred(pos vec.Vec3) {
	id, ok := m.markShown(pos)
	if !ok {
		return
	}
	m.queue.Push(ShowItem(pos, id))
}

// HideBlock снимает отметку видимости и сразу удаляет меш.
// Для не показанного блока ничего не делает.
func (m *Model) HideBlock(pos vec.Vec3) {
	if !m.markHidden(pos) {
		return
	}
	m.deleteMesh(pos)
}

// HideBlockDeferred снимает отметку видимости, удаление меша уходит в очередь
func (m *Model) HideBlockDeferred(pos vec.Vec3) {
	if !m.markHidden(pos) {
		return
	}
	m.queue.Push(HideItem(pos))
}

// markShown записывает материал позиции в множество показанных.
// Позиции вне мира показать нельзя.
func (m *Model) markShown(pos vec.Vec3) (block.BlockID, bool) {
	id, ok := m.blocks[pos]
	if !ok {
		return 0, false
	}
	m.shown[pos] = id
	return id, true
}

func (m *Model) markHidden(pos vec.Vec3) bool {
	if _, ok := m.shown[pos]; !ok {
		return false
	}
	delete(m.shown, pos)
	return true
}

// upload заменяет меш позиции. Ошибка бэкенда не фатальна: позиция остаётся
// в показанных, но без меша.
func (m *Model) upload(pos vec.Vec3, id block.BlockID) {
	m.deleteMesh(pos)

	material, err := block.Lookup(id)
	if err != nil {
		m.uploadFailures++
		m.log.Warn("Меш %v не загружен: %v", pos, err)
		return
	}

	h, err := m.backend.UploadMesh(pos, material)
	if err != nil {
		m.uploadFailures++
		m.log.Warn("Меш %v (%s) не загружен: %v", pos, material.Name(), err)
		return
	}
	m.rendered[pos] = h
}

func (m *Model) deleteMesh(pos vec.Vec3) {
	h, ok := m.rendered[pos]
	if !ok {
		return
	}
	delete(m.rendered, pos)
	if err := m.backend.DeleteMesh(h); err != nil {
		m.log.Warn("Меш %v не удалён: %v", pos, err)
	}
}
