package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// DefaultPadding - радиус сущности: ближе к грани блока подойти нельзя
const DefaultPadding = 0.25

// BoxCollider - вертикальная колонна из Height клеток с зазором Padding
type BoxCollider struct {
	Height  int     // Высота в блоках
	Padding float64 // Зазор до граней блоков
}

// NewBoxCollider создаёт коллайдер указанной высоты с зазором по умолчанию
func NewBoxCollider(height int) *BoxCollider {
	return &BoxCollider{
		Height:  height,
		Padding: DefaultPadding,
	}
}

// Contacts - флаги касаний после разрешения коллизий
type Contacts struct {
	Top    bool // Стоит на блоке (касание снизу, грань -y)
	Bottom bool // Упёрся в потолок (грань +y)
	Left   bool // Грань -x
	Right  bool // Грань +x
	Front  bool // Грань +z
	Back   bool // Грань -z
}

// Grounded сообщает, что сущность стоит на земле
func (c Contacts) Grounded() bool { return c.Top }

// Vertical сообщает о касании по вертикали
func (c Contacts) Vertical() bool { return c.Top || c.Bottom }

// Any сообщает о любом касании
func (c Contacts) Any() bool {
	return c.Top || c.Bottom || c.Left || c.Right || c.Front || c.Back
}

func (c *Contacts) set(face vec.Vec3) {
	switch face {
	case vec.Down:
		c.Top = true
	case vec.Up:
		c.Bottom = true
	case vec.Left:
		c.Left = true
	case vec.Right:
		c.Right = true
	case vec.Front:
		c.Front = true
	case vec.Back:
		c.Back = true
	}
}

// Resolve корректирует желаемую позицию относительно блоков мира.
// Оси обрабатываются независимо по шести граням. Для каждой грани перебираются
// клетки колонны сверху вниз, и первая занятая останавливает движение по оси:
// ближайшее касание не ищется. Скольжение вдоль других осей сохраняется.
func (bc *BoxCollider) Resolve(desired mgl64.Vec3, world block.Source) (mgl64.Vec3, Contacts) {
	p := desired
	np := vec.Normalize(desired)
	var contacts Contacts

	for _, face := range vec.Faces {
		for i := 0; i < 3; i++ {
			dir := face.Axis(i)
			if dir == 0 {
				continue
			}
			d := (p[i] - float64(np.Axis(i))) * float64(dir)
			if d < bc.Padding {
				continue
			}
			for dy := 0; dy < bc.Height; dy++ {
				op := np
				op.Y -= dy
				op = op.WithAxis(i, op.Axis(i)+dir)
				if !world.Solid(op) {
					continue
				}
				p[i] -= (d - bc.Padding) * float64(dir)
				contacts.set(face)
				break
			}
		}
	}
	return p, contacts
}

// Body - тело с позицией и вертикальной скоростью
type Body struct {
	Position  mgl64.Vec3
	VelocityY float64
	Collider  *BoxCollider
	Contacts  Contacts
}

// NewBody создаёт тело в позиции pos
func NewBody(pos mgl64.Vec3, height int) *Body {
	return &Body{Position: pos, Collider: NewBoxCollider(height)}
}

// MoveTo переносит тело в желаемую позицию с учётом коллизий.
// Касание пола или потолка обнуляет вертикальную скорость.
func (b *Body) MoveTo(desired mgl64.Vec3, world block.Source) Contacts {
	pos, contacts := b.Collider.Resolve(desired, world)
	b.Position = pos
	b.Contacts = contacts
	if contacts.Vertical() {
		b.VelocityY = 0
	}
	return contacts
}
