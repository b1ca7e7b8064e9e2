package vec

// Vec2 представляет координаты колонны блоков (x, z)
type Vec2 struct {
	X, Z int
}

// ToSector возвращает сектор, в который попадает колонна
func (v Vec2) ToSector() Vec3 {
	return Vec3{X: FloorDiv(v.X, SectorSize), Y: 0, Z: FloorDiv(v.Z, SectorSize)}
}

// Add складывает координаты колонн
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Z: v.Z + other.Z}
}

// LengthSq возвращает квадрат длины
func (v Vec2) LengthSq() int {
	return v.X*v.X + v.Z*v.Z
}

// At поднимает колонну на высоту y
func (v Vec2) At(y int) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Z}
}
