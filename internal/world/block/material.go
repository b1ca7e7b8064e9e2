package block

// Material описывает внешний вид блока: ячейки атласа для каждой группы граней.
// Равенство материалов сравнивается по ID.
type Material interface {
	ID() BlockID
	Name() string
	Textures() FaceTextures
	// Indestructible - блок нельзя убрать игроку
	Indestructible() bool
}

// FaceTextures задаёт ячейки атласа для верха, низа и четырёх боковых граней
type FaceTextures struct {
	Top    AtlasCell
	Bottom AtlasCell
	Side   AtlasCell
}

// Uniform возвращает одинаковые текстуры для всех граней
func Uniform(col, row int) FaceTextures {
	c := AtlasCell{Col: col, Row: row}
	return FaceTextures{Top: c, Bottom: c, Side: c}
}

// TexCoords разворачивает текстуры граней в UV-координаты куба:
// верх, низ и четыре боковые грани, по 4 вершины (u, v) на грань.
func TexCoords(ft FaceTextures, grid int) []float32 {
	out := make([]float32, 0, 6*8)
	out = append(out, ft.Top.Quad(grid)...)
	out = append(out, ft.Bottom.Quad(grid)...)
	side := ft.Side.Quad(grid)
	for i := 0; i < 4; i++ {
		out = append(out, side...)
	}
	return out
}
