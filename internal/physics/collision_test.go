package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// solidSet - мир из набора занятых позиций
type solidSet map[vec.Vec3]bool

func (s solidSet) source() block.Source {
	return block.SourceFunc(func(p vec.Vec3) bool { return s[p] })
}

func TestResolve_LandsOnBlock(t *testing.T) {
	world := solidSet{{X: 0, Y: 0, Z: 0}: true}
	body := NewBody(mgl64.Vec3{0, 1.0, 0}, 2)
	body.VelocityY = -3

	contacts := body.MoveTo(mgl64.Vec3{0, 0.5, 0}, world.source())

	assert.True(t, contacts.Top, "должно быть касание пола")
	assert.False(t, contacts.Bottom)
	assert.InDelta(t, 0.75, body.Position.Y(), 1e-9, "y = 1 - 0.25")
	assert.Equal(t, 0.0, body.VelocityY, "вертикальная скорость обнуляется")
}

func TestResolve_Ceiling(t *testing.T) {
	// Голова в клетке y=1, потолок в y=2
	world := solidSet{{X: 0, Y: 2, Z: 0}: true}
	bc := NewBoxCollider(2)

	pos, contacts := bc.Resolve(mgl64.Vec3{0, 1.4, 0}, world.source())

	assert.True(t, contacts.Bottom)
	assert.InDelta(t, 1.25, pos.Y(), 1e-9)
}

func TestResolve_FreeSpaceUnchanged(t *testing.T) {
	bc := NewBoxCollider(2)
	desired := mgl64.Vec3{3.4, 10.2, -7.3}
	pos, contacts := bc.Resolve(desired, solidSet{}.source())
	assert.Equal(t, desired, pos)
	assert.False(t, contacts.Any())
}

func TestResolve_WallStopsOneAxisAndSlidesAlongOther(t *testing.T) {
	// Стена в x=1 на уровне ног (y=0) и головы (y=1)
	world := solidSet{
		{X: 1, Y: 1, Z: 0}: true,
		{X: 1, Y: 0, Z: 0}: true,
	}
	bc := NewBoxCollider(2)

	pos, contacts := bc.Resolve(mgl64.Vec3{0.4, 1.0, 0.1}, world.source())

	assert.True(t, contacts.Right)
	assert.InDelta(t, 0.25, pos.X(), 1e-9, "упор в зазор 0.25")
	assert.InDelta(t, 0.1, pos.Z(), 1e-9, "по z движение сохраняется")
	assert.False(t, contacts.Front || contacts.Back)
}

func TestResolve_LowerCellAlsoBlocks(t *testing.T) {
	// Блок только на уровне ног: при высоте 2 он проверяется вторым смещением
	world := solidSet{{X: -1, Y: 0, Z: 0}: true}
	bc := NewBoxCollider(2)

	pos, contacts := bc.Resolve(mgl64.Vec3{-0.3, 1.0, 0}, world.source())
	assert.True(t, contacts.Left)
	assert.InDelta(t, -0.25, pos.X(), 1e-9)

	// При высоте 1 нижняя клетка не проверяется
	pos, contacts = NewBoxCollider(1).Resolve(mgl64.Vec3{-0.3, 1.0, 0}, world.source())
	assert.False(t, contacts.Left)
	assert.InDelta(t, -0.3, pos.X(), 1e-9)
}

func TestResolve_FirstOffsetWins(t *testing.T) {
	// Обе клетки колонны заняты: коррекция применяется один раз
	world := solidSet{
		{X: 0, Y: 1, Z: 1}: true,
		{X: 0, Y: 0, Z: 1}: true,
	}
	pos, contacts := NewBoxCollider(2).Resolve(mgl64.Vec3{0, 1, 0.45}, world.source())
	assert.True(t, contacts.Front)
	assert.InDelta(t, 0.25, pos.Z(), 1e-9)
}

func TestResolve_WithinPaddingIgnored(t *testing.T) {
	world := solidSet{{X: 1, Y: 1, Z: 0}: true}
	pos, contacts := NewBoxCollider(2).Resolve(mgl64.Vec3{0.2, 1, 0}, world.source())
	assert.False(t, contacts.Right, "0.2 < зазора 0.25")
	assert.InDelta(t, 0.2, pos.X(), 1e-9)
}

func TestBody_HorizontalContactKeepsVelocity(t *testing.T) {
	world := solidSet{{X: 1, Y: 5, Z: 0}: true}
	body := NewBody(mgl64.Vec3{0, 5, 0}, 2)
	body.VelocityY = -2

	contacts := body.MoveTo(mgl64.Vec3{0.4, 5, 0}, world.source())
	assert.True(t, contacts.Right)
	assert.Equal(t, -2.0, body.VelocityY)
	assert.Equal(t, contacts, body.Contacts)
}
