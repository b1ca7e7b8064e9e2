package render

import (
	"fmt"

	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// Op - тип вызова бэкенда
type Op int

const (
	OpUpload Op = iota
	OpDelete
)

// String возвращает имя операции
func (o Op) String() string {
	if o == OpUpload {
		return "upload"
	}
	return "delete"
}

// Call - запись об одном вызове бэкенда
type Call struct {
	Op       Op
	Pos      vec.Vec3
	Material block.BlockID
	Handle   MeshHandle
}

// MemoryBackend держит меши в памяти. Используется безголовым сервером и тестами.
type MemoryBackend struct {
	caps    Capabilities
	builder *MeshBuilder
	meshes  map[MeshHandle]Mesh
	next    MeshHandle
	calls   []Call
	record  bool

	// FailUpload, если задан, может отклонить загрузку меша
	FailUpload func(pos vec.Vec3) error
}

// NewMemoryBackend создает бэкенд с заданными возможностями
func NewMemoryBackend(caps Capabilities, atlasGrid int) *MemoryBackend {
	if caps.Name == "" {
		caps.Name = "memory"
	}
	return &MemoryBackend{
		caps:    caps,
		builder: NewMeshBuilder(caps, atlasGrid),
		meshes:  make(map[MeshHandle]Mesh),
	}
}

// RecordCalls включает журнал вызовов
func (b *MemoryBackend) RecordCalls(on bool) { b.record = on }

// Capabilities возвращает возможности бэкенда
func (b *MemoryBackend) Capabilities() Capabilities { return b.caps }

// UploadMesh строит меш и выдаёт новый дескриптор
func (b *MemoryBackend) UploadMesh(pos vec.Vec3, material block.Material) (MeshHandle, error) {
	if b.FailUpload != nil {
		if err := b.FailUpload(pos); err != nil {
			return 0, err
		}
	}
	b.next++
	h := b.next
	b.meshes[h] = b.builder.Build(pos, material)
	if b.record {
		b.calls = append(b.calls, Call{Op: OpUpload, Pos: pos, Material: material.ID(), Handle: h})
	}
	return h, nil
}

// DeleteMesh удаляет меш
func (b *MemoryBackend) DeleteMesh(h MeshHandle) error {
	mesh, ok := b.meshes[h]
	if !ok {
		return fmt.Errorf("delete %d: %w", h, ErrUnknownHandle)
	}
	delete(b.meshes, h)
	if b.record {
		b.calls = append(b.calls, Call{Op: OpDelete, Pos: mesh.Position, Material: mesh.Material, Handle: h})
	}
	return nil
}

// Calls возвращает журнал вызовов
func (b *MemoryBackend) Calls() []Call { return b.calls }

// ResetCalls очищает журнал
func (b *MemoryBackend) ResetCalls() { b.calls = nil }

// Live возвращает число живых мешей
func (b *MemoryBackend) Live() int { return len(b.meshes) }

// Mesh возвращает меш по дескриптору
func (b *MemoryBackend) Mesh(h MeshHandle) (Mesh, bool) {
	m, ok := b.meshes[h]
	return m, ok
}

// VertexCount возвращает суммарное число вершин, которое ушло бы в отрисовку кадра
func (b *MemoryBackend) VertexCount() int {
	total := 0
	for _, m := range b.meshes {
		total += m.VertexCount()
	}
	return total
}
