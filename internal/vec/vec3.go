package vec

import "github.com/go-gl/mathgl/mgl64"

// Vec3 представляет целочисленную позицию блока в мире (x, y, z)
type Vec3 struct {
	X int
	Y int
	Z int
}

// Направления шести граней куба. Порядок важен для разрешения коллизий:
// сначала вертикаль (+y, -y), затем x и z.
var (
	Up    = Vec3{X: 0, Y: 1, Z: 0}
	Down  = Vec3{X: 0, Y: -1, Z: 0}
	Left  = Vec3{X: -1, Y: 0, Z: 0}
	Right = Vec3{X: 1, Y: 0, Z: 0}
	Front = Vec3{X: 0, Y: 0, Z: 1}
	Back  = Vec3{X: 0, Y: 0, Z: -1}
)

// Faces перечисляет нормали граней в каноническом порядке
var Faces = [6]Vec3{Up, Down, Left, Right, Front, Back}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub вычитает вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// DistanceSq возвращает квадрат расстояния до другого вектора
func (v Vec3) DistanceSq(other Vec3) int {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Axis возвращает компоненту по индексу оси (0 - x, 1 - y, 2 - z)
func (v Vec3) Axis(i int) int {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// WithAxis возвращает копию вектора с заменённой компонентой
func (v Vec3) WithAxis(i, value int) Vec3 {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

// Neighbors возвращает шесть соседних позиций по граням
func (v Vec3) Neighbors() [6]Vec3 {
	var out [6]Vec3
	for i, f := range Faces {
		out[i] = v.Add(f)
	}
	return out
}

// Sector возвращает координаты сектора, содержащего позицию
func (v Vec3) Sector() Vec3 {
	return Sectorize(v)
}

// ToVec2 возвращает координаты колонны (x, z)
func (v Vec3) ToVec2() Vec2 {
	return Vec2{X: v.X, Z: v.Z}
}

// Float переводит позицию в непрерывные координаты центра блока
func (v Vec3) Float() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}
