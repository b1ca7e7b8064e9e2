package block

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
)

// DefaultAtlasGrid - атлас текстур состоит из 4x4 квадратных ячеек
const DefaultAtlasGrid = 4

// ErrAtlasInvalid возвращается, если изображение атласа не подходит по размерам
var ErrAtlasInvalid = errors.New("invalid texture atlas")

// AtlasCell - индекс ячейки атласа (столбец, строка)
type AtlasCell struct {
	Col int
	Row int
}

// Bounds возвращает нормализованные UV-границы ячейки
func (c AtlasCell) Bounds(grid int) (u0, v0, u1, v1 float32) {
	m := 1 / float32(grid)
	u0 = float32(c.Col) * m
	v0 = float32(c.Row) * m
	return u0, v0, u0 + m, v0 + m
}

// Quad возвращает UV четырёх вершин грани против часовой стрелки
func (c AtlasCell) Quad(grid int) []float32 {
	u0, v0, u1, v1 := c.Bounds(grid)
	return []float32{u0, v0, u1, v0, u1, v1, u0, v1}
}

// Atlas описывает загруженное изображение атласа
type Atlas struct {
	Path     string
	Grid     int
	Width    int
	Height   int
	CellSize int
}

// LoadAtlas читает PNG атласа и проверяет, что он делится на grid x grid квадратных ячеек.
// Без атласа материалы не отрисовать, поэтому вызывающий код считает ошибку фатальной.
func LoadAtlas(path string, grid int) (*Atlas, error) {
	if grid <= 0 {
		grid = DefaultAtlasGrid
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть атлас %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать атлас %s: %w", path, err)
	}

	return newAtlas(path, grid, cfg.Width, cfg.Height)
}

func newAtlas(path string, grid, width, height int) (*Atlas, error) {
	if width != height {
		return nil, fmt.Errorf("%w: %dx%d не квадрат", ErrAtlasInvalid, width, height)
	}
	if width == 0 || width%grid != 0 {
		return nil, fmt.Errorf("%w: ширина %d не делится на %d", ErrAtlasInvalid, width, grid)
	}
	return &Atlas{
		Path:     path,
		Grid:     grid,
		Width:    width,
		Height:   height,
		CellSize: width / grid,
	}, nil
}

// Validate проверяет, что все ячейки материалов лежат внутри атласа
func (a *Atlas) Validate() error {
	for _, id := range Registered() {
		m := registry[id]
		ft := m.Textures()
		for _, c := range []AtlasCell{ft.Top, ft.Bottom, ft.Side} {
			if c.Col < 0 || c.Row < 0 || c.Col >= a.Grid || c.Row >= a.Grid {
				return fmt.Errorf("%w: материал %s ссылается на ячейку (%d,%d)", ErrAtlasInvalid, m.Name(), c.Col, c.Row)
			}
		}
	}
	return nil
}
