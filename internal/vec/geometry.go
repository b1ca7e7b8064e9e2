package vec

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SectorSize - ширина сектора в блоках по x и z. По вертикали мир не делится.
const SectorSize = 16

// Normalize округляет непрерывную позицию до ближайшего блока.
// Половины округляются от нуля.
func Normalize(p mgl64.Vec3) Vec3 {
	return Vec3{
		X: int(math.Round(p[0])),
		Y: int(math.Round(p[1])),
		Z: int(math.Round(p[2])),
	}
}

// Sectorize возвращает сектор (sx, 0, sz) для позиции блока
func Sectorize(p Vec3) Vec3 {
	return Vec3{X: FloorDiv(p.X, SectorSize), Y: 0, Z: FloorDiv(p.Z, SectorSize)}
}

// SectorOf нормализует непрерывную позицию и возвращает её сектор
func SectorOf(p mgl64.Vec3) Vec3 {
	return Sectorize(Normalize(p))
}

// FloorDiv - целочисленное деление с округлением вниз (корректно для отрицательных)
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
