package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/advikgoyal02/Minecraft/internal/vec"
)

const (
	// DefaultHitDistance - дальность выбора блока в блоках
	DefaultHitDistance = 8
	// hitSubsteps - шагов луча на один блок
	hitSubsteps = 8
)

// Hit - результат трассировки луча
type Hit struct {
	// Block - первый занятый блок на луче
	Block vec.Vec3
	// Previous - позиция перед ним, место для установки нового блока.
	// HasPrevious == false, если луч начался внутри блока.
	Previous    vec.Vec3
	HasPrevious bool
}

// HitTest идёт по лучу фиксированными шагами 1/8 блока и возвращает первый
// занятый блок не дальше maxDistance. Это не точный DDA: шаг подобран так,
// чтобы не проскочить единичный куб.
func (m *Model) HitTest(origin, direction mgl64.Vec3, maxDistance int) (Hit, bool) {
	if maxDistance <= 0 {
		maxDistance = DefaultHitDistance
	}
	length := direction.Len()
	if length == 0 {
		return Hit{}, false
	}
	step := direction.Mul(1 / (length * hitSubsteps))

	p := origin
	var prev vec.Vec3
	hasPrev := false
	for i := 0; i < maxDistance*hitSubsteps; i++ {
		key := vec.Normalize(p)
		if (!hasPrev || key != prev) && m.Solid(key) {
			return Hit{Block: key, Previous: prev, HasPrevious: hasPrev}, true
		}
		prev = key
		hasPrev = true
		p = p.Add(step)
	}
	return Hit{}, false
}
