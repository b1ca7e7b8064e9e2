package app

import (
	"context"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advikgoyal02/Minecraft/internal/config"
	"github.com/advikgoyal02/Minecraft/internal/observability"
	"github.com/advikgoyal02/Minecraft/internal/render"
	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
	_ "github.com/advikgoyal02/Minecraft/internal/world/block/implementations"
)

// panicBackend падает на загрузке, пока включён флаг
type panicBackend struct {
	*render.MemoryBackend
	panicking bool
}

func (b *panicBackend) UploadMesh(pos vec.Vec3, m block.Material) (render.MeshHandle, error) {
	if b.panicking {
		panic("mesh buffer corrupted")
	}
	return b.MemoryBackend.UploadMesh(pos, m)
}

func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.World.Size = 16
	cfg.World.TreeChance = 0
	cfg.Player.Spawn = [3]float64{8, 30, 8}
	return cfg
}

func newTestSession(t *testing.T, opts ...SessionOption) (*Session, *panicBackend) {
	t.Helper()
	backend := &panicBackend{MemoryBackend: render.NewMemoryBackend(render.Capabilities{IndexedDraw: true}, block.DefaultAtlasGrid)}
	s, err := NewSession(context.Background(), testConfig(), backend, opts...)
	require.NoError(t, err)
	return s, backend
}

// skyPlayer переносит игрока в пустое небо в режиме полёта
func skyPlayer(s *Session) {
	s.SetFlying(true)
	s.Player().Body.Position = mgl64.Vec3{5, 50, 5}
	s.Player().Yaw = 0
	s.Player().Pitch = 0
}

func TestNewSession(t *testing.T) {
	id := uuid.New()
	s, backend := newTestSession(t, WithSessionID(id))

	assert.Equal(t, id, s.ID)
	assert.Greater(t, s.Model().Len(), 16*16, "в каждой колонне есть блоки")
	assert.Equal(t, 0, s.Model().QueueLen(), "очередь выполнена после генерации")
	assert.Equal(t, s.Model().Stats().Rendered, backend.Live())
	_, ok := s.Sector()
	assert.False(t, ok, "сектор известен только после первого тика")
}

func TestNewSession_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Simulation.Substeps = 0
	_, err := NewSession(context.Background(), cfg, render.NewMemoryBackend(render.Capabilities{}, 4))
	assert.Error(t, err)
}

func TestTick_PlayerFallsToGround(t *testing.T) {
	s, _ := newTestSession(t)

	for i := 0; i < 300; i++ {
		require.NoError(t, s.Tick(context.Background(), 1.0/60))
	}

	sector, ok := s.Sector()
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{}, sector)

	p := s.Player()
	assert.True(t, p.Body.Contacts.Top, "игрок стоит на земле")
	assert.InDelta(t, 0.75, p.Position().Y()-math.Floor(p.Position().Y()), 1e-9)
	assert.True(t, s.Model().Solid(p.BlockPos().Add(vec.Down)), "под игроком блок")
	assert.Equal(t, 8.0, p.Position().X())
	assert.Equal(t, uint64(300), s.Ticks())
}

func TestTick_SectorChange(t *testing.T) {
	s, _ := newTestSession(t)
	skyPlayer(s)
	require.NoError(t, s.Tick(context.Background(), 1.0/60))

	s.Player().Body.Position = mgl64.Vec3{20, 50, 5}
	require.NoError(t, s.Tick(context.Background(), 1.0/60))

	sector, _ := s.Sector()
	assert.Equal(t, vec.Vec3{X: 1}, sector)
}

func TestTick_RecoversPanic(t *testing.T) {
	me := observability.NewMetricsExporter("test")
	s, backend := newTestSession(t, WithMetrics(me))
	skyPlayer(s)

	s.Model().AddBlockDeferred(vec.Vec3{X: 5, Y: 60, Z: 5}, block.BrickBlockID)
	backend.panicking = true
	err := s.Tick(context.Background(), 1.0/60)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "паника")

	backend.panicking = false
	assert.NoError(t, s.Tick(context.Background(), 1.0/60), "следующий тик выполняется")
}

func TestLook(t *testing.T) {
	s, _ := newTestSession(t)
	s.Look(100, 1000)
	assert.InDelta(t, 15.0, s.Player().Yaw, 1e-9)
	assert.Equal(t, 90.0, s.Player().Pitch, "наклон ограничен")
}

func TestRemoveBlock(t *testing.T) {
	s, _ := newTestSession(t)
	stone := vec.Vec3{X: 3, Y: 40, Z: 3}
	brick := vec.Vec3{X: 4, Y: 40, Z: 3}
	s.Model().AddBlock(stone, block.StoneBlockID)
	s.Model().AddBlock(brick, block.BrickBlockID)

	assert.ErrorIs(t, s.RemoveBlock(stone), ErrIndestructible)
	assert.True(t, s.Model().Solid(stone))

	assert.NoError(t, s.RemoveBlock(brick))
	assert.False(t, s.Model().Solid(brick))

	assert.ErrorIs(t, s.RemoveBlock(brick), ErrNoTarget)
}

func TestPlaceBlock(t *testing.T) {
	s, _ := newTestSession(t)
	skyPlayer(s)
	head := s.Player().BlockPos()

	assert.ErrorIs(t, s.PlaceBlock(head, block.BrickBlockID), ErrOccupied)
	assert.ErrorIs(t, s.PlaceBlock(head.Add(vec.Down), block.BrickBlockID), ErrOccupied)
	assert.ErrorIs(t, s.PlaceBlock(vec.Vec3{X: 9, Y: 45}, block.AirBlockID), block.ErrUnknownMaterial)

	target := head.Add(vec.Vec3{Z: -2})
	require.NoError(t, s.PlaceBlock(target, block.SandBlockID))
	require.NoError(t, s.PlaceBlock(target, block.GrassBlockID), "занятая клетка заменяется")
	id, _ := s.Model().BlockAt(target)
	assert.Equal(t, block.GrassBlockID, id)
	assert.True(t, s.Model().Rendered(target))
}

func TestUseTarget(t *testing.T) {
	s, _ := newTestSession(t)
	skyPlayer(s)

	assert.ErrorIs(t, s.UseTarget(true), ErrNoTarget, "перед игроком пусто")

	target := vec.Vec3{X: 5, Y: 50, Z: 2}
	s.Model().AddBlock(target, block.BrickBlockID)

	s.SelectSlot(2)
	require.NoError(t, s.UseTarget(true))
	id, ok := s.Model().BlockAt(vec.Vec3{X: 5, Y: 50, Z: 3})
	require.True(t, ok, "блок поставлен перед целью")
	assert.Equal(t, block.SandBlockID, id)

	require.NoError(t, s.UseTarget(false))
	assert.False(t, s.Model().Solid(vec.Vec3{X: 5, Y: 50, Z: 3}), "разрушен ближайший блок")
	assert.True(t, s.Model().Solid(target))
}

func TestStatusLine(t *testing.T) {
	s, _ := newTestSession(t)
	line := s.StatusLine(60)
	assert.Contains(t, line, "60 tps")
	assert.Contains(t, line, "(8.00, 30.00, 8.00)")
}

func TestTick_ObservesMetrics(t *testing.T) {
	me := observability.NewMetricsExporter("m")
	s, _ := newTestSession(t, WithMetrics(me))
	require.NoError(t, s.Tick(context.Background(), 1.0/60))

	n, err := testutil.GatherAndCount(me.Registry(), "voxel_sim_ticks_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
