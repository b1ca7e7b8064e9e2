package world

import (
	"github.com/advikgoyal02/Minecraft/internal/vec"
)

// SectorChange - результат смены сектора: какие секторы показаны и скрыты
type SectorChange struct {
	Show []vec.Vec3
	Hide []vec.Vec3
}

// SectorDisk возвращает секторы в круге радиуса pad вокруг center
// (только слой y=0, отсечение по квадрату расстояния (pad+1)^2).
func SectorDisk(center vec.Vec3, pad int) []vec.Vec3 {
	limit := (pad + 1) * (pad + 1)
	out := make([]vec.Vec3, 0, (2*pad+1)*(2*pad+1))
	for dx := -pad; dx <= pad; dx++ {
		for dz := -pad; dz <= pad; dz++ {
			if dx*dx+dz*dz > limit {
				continue
			}
			out = append(out, vec.Vec3{X: center.X + dx, Y: center.Y, Z: center.Z + dz})
		}
	}
	return out
}

// ChangeSectors показывает секторы, вошедшие в диск вокруг after, и скрывает
// вышедшие из диска вокруг before. nil означает пустой диск.
func (m *Model) ChangeSectors(before, after *vec.Vec3) SectorChange {
	var beforeDisk, afterDisk []vec.Vec3
	if before != nil {
		beforeDisk = SectorDisk(*before, m.pad)
	}
	if after != nil {
		afterDisk = SectorDisk(*after, m.pad)
	}

	beforeSet := make(map[vec.Vec3]struct{}, len(beforeDisk))
	for _, s := range beforeDisk {
		beforeSet[s] = struct{}{}
	}
	afterSet := make(map[vec.Vec3]struct{}, len(afterDisk))
	for _, s := range afterDisk {
		afterSet[s] = struct{}{}
	}

	var change SectorChange
	for _, s := range afterDisk {
		if _, ok := beforeSet[s]; !ok {
			change.Show = append(change.Show, s)
		}
	}
	for _, s := range beforeDisk {
		if _, ok := afterSet[s]; !ok {
			change.Hide = append(change.Hide, s)
		}
	}

	for _, s := range change.Show {
		m.ShowSector(s)
	}
	for _, s := range change.Hide {
		m.HideSector(s)
	}
	m.log.Debug("Смена сектора %v -> %v: показано %d, скрыто %d", before, after, len(change.Show), len(change.Hide))
	return change
}

// ShowSector ставит в очередь показ открытых и ещё не показанных блоков сектора
func (m *Model) ShowSector(sector vec.Vec3) {
	for _, pos := range m.sectors.Positions(sector) {
		if _, shown := m.shown[pos]; !shown && m.Exposed(pos) {
			m.ShowBlockDeferred(pos)
		}
	}
}

// HideSector ставит в очередь скрытие показанных блоков сектора
func (m *Model) HideSector(sector vec.Vec3) {
	for _, pos := range m.sectors.Positions(sector) {
		if _, shown := m.shown[pos]; shown {
			m.HideBlockDeferred(pos)
		}
	}
}
