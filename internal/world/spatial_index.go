package world

import (
	"slices"

	"github.com/advikgoyal02/Minecraft/internal/vec"
)

// SectorIndex группирует позиции блоков по секторам для стриминга.
// Позиция лежит в корзине Sectorize(pos) тогда и только тогда, когда она есть в мире.
type SectorIndex struct {
	buckets map[vec.Vec3][]vec.Vec3
	count   int
}

// NewSectorIndex создаёт пустой индекс
func NewSectorIndex() *SectorIndex {
	return &SectorIndex{buckets: make(map[vec.Vec3][]vec.Vec3)}
}

// Insert добавляет позицию в корзину её сектора
func (si *SectorIndex) Insert(pos vec.Vec3) {
	s := vec.Sectorize(pos)
	si.buckets[s] = append(si.buckets[s], pos)
	si.count++
}

// Remove удаляет позицию линейным поиском по корзине
func (si *SectorIndex) Remove(pos vec.Vec3) bool {
	s := vec.Sectorize(pos)
	bucket := si.buckets[s]
	i := slices.Index(bucket, pos)
	if i < 0 {
		return false
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(si.buckets, s)
	} else {
		si.buckets[s] = bucket
	}
	si.count--
	return true
}

// Positions возвращает позиции сектора. Срез принадлежит индексу.
func (si *SectorIndex) Positions(sector vec.Vec3) []vec.Vec3 {
	return si.buckets[sector]
}

// Contains проверяет наличие позиции в корзине её сектора
func (si *SectorIndex) Contains(pos vec.Vec3) bool {
	return slices.Contains(si.buckets[vec.Sectorize(pos)], pos)
}

// Len возвращает число непустых секторов
func (si *SectorIndex) Len() int { return len(si.buckets) }

// Count возвращает общее число позиций
func (si *SectorIndex) Count() int { return si.count }

// IndexStats содержит статистику индекса
type IndexStats struct {
	Sectors     int
	Positions   int
	LargestSize int
}

// GetStats возвращает статистику индекса
func (si *SectorIndex) GetStats() IndexStats {
	st := IndexStats{Sectors: len(si.buckets), Positions: si.count}
	for _, b := range si.buckets {
		if len(b) > st.LargestSize {
			st.LargestSize = len(b)
		}
	}
	return st
}
