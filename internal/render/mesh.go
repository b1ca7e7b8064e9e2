package render

import (
	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// halfSize - половина ребра единичного куба
const halfSize = 0.5

// Порядок граней совпадает с block.TexCoords: верх, низ, лево, право, перед, зад.
// Каждая грань - четыре вершины против часовой стрелки.
var cubeCorners = [6][4][3]float32{
	{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},     // верх
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // низ
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // лево
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // право
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // перед
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // зад
}

// quadTriangles разбивает грань на два треугольника
var quadTriangles = [6]uint16{0, 1, 2, 0, 2, 3}

// Mesh - геометрия одного куба, готовая к загрузке
type Mesh struct {
	Position vec.Vec3
	Material block.BlockID
	// Vertices - координаты xyz
	Vertices []float32
	// UVs - текстурные координаты uv, по паре на вершину
	UVs []float32
	// Indices пуст для неиндексированной геометрии
	Indices []uint16
}

// VertexCount возвращает число вершин
func (m Mesh) VertexCount() int { return len(m.Vertices) / 3 }

// Indexed сообщает, что меш использует индексы
func (m Mesh) Indexed() bool { return len(m.Indices) > 0 }

// MeshBuilder строит меши кубов в формате, выбранном по возможностям бэкенда
type MeshBuilder struct {
	indexed bool
	grid    int
}

// NewMeshBuilder выбирает формат геометрии один раз: индексированный (24 вершины
// и 36 индексов) или развёрнутый (36 вершин).
func NewMeshBuilder(caps Capabilities, atlasGrid int) *MeshBuilder {
	if atlasGrid <= 0 {
		atlasGrid = block.DefaultAtlasGrid
	}
	return &MeshBuilder{indexed: caps.IndexedDraw, grid: atlasGrid}
}

// Indexed сообщает выбранный формат
func (b *MeshBuilder) Indexed() bool { return b.indexed }

// Build строит меш куба в позиции pos
func (b *MeshBuilder) Build(pos vec.Vec3, material block.Material) Mesh {
	uv := block.TexCoords(material.Textures(), b.grid)
	x, y, z := float32(pos.X), float32(pos.Y), float32(pos.Z)

	verts := make([]float32, 0, 6*4*3)
	for _, face := range cubeCorners {
		for _, c := range face {
			verts = append(verts, x+c[0]*halfSize, y+c[1]*halfSize, z+c[2]*halfSize)
		}
	}

	mesh := Mesh{Position: pos, Material: material.ID()}
	if b.indexed {
		mesh.Vertices = verts
		mesh.UVs = uv
		mesh.Indices = make([]uint16, 0, 36)
		for face := 0; face < 6; face++ {
			base := uint16(face * 4)
			for _, i := range quadTriangles {
				mesh.Indices = append(mesh.Indices, base+i)
			}
		}
		return mesh
	}

	mesh.Vertices = make([]float32, 0, 36*3)
	mesh.UVs = make([]float32, 0, 36*2)
	for face := 0; face < 6; face++ {
		for _, i := range quadTriangles {
			v := face*4 + int(i)
			mesh.Vertices = append(mesh.Vertices, verts[v*3:v*3+3]...)
			mesh.UVs = append(mesh.UVs, uv[v*2:v*2+2]...)
		}
	}
	return mesh
}
