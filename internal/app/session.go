package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/advikgoyal02/Minecraft/internal/config"
	"github.com/advikgoyal02/Minecraft/internal/logging"
	"github.com/advikgoyal02/Minecraft/internal/observability"
	"github.com/advikgoyal02/Minecraft/internal/render"
	"github.com/advikgoyal02/Minecraft/internal/util"
	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world"
	"github.com/advikgoyal02/Minecraft/internal/world/entity"
)

// playerID - единственный игрок сессии
const playerID uint64 = 1

// Session связывает мир, игрока и бэкенд отрисовки. Все методы вызываются
// из одного цикла симуляции.
type Session struct {
	ID uuid.UUID

	cfg     *config.Config
	model   *world.Model
	player  *entity.Player
	sector  *vec.Vec3 // nil до первого тика
	metrics *observability.MetricsExporter
	tracer  trace.Tracer
	log     *logging.Logger
	ticks   uint64
}

// SessionOption настраивает Session
type SessionOption func(*Session)

// WithMetrics подключает экспортер метрик
func WithMetrics(me *observability.MetricsExporter) SessionOption {
	return func(s *Session) { s.metrics = me }
}

// WithSessionID задаёт идентификатор сессии вместо случайного
func WithSessionID(id uuid.UUID) SessionOption {
	return func(s *Session) { s.ID = id }
}

// NewSession генерирует мир по конфигурации, выгружает его в бэкенд и
// ставит игрока в точку появления.
func NewSession(ctx context.Context, cfg *config.Config, backend render.Backend, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("конфигурация сессии: %w", err)
	}

	s := &Session{
		ID:     uuid.New(),
		cfg:    cfg,
		tracer: observability.Tracer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logging.GetSessionLogger().With("session", s.ID.String())

	caps := backend.Capabilities()
	s.log.Info("Бэкенд отрисовки %q: indexed=%v", caps.Name, caps.IndexedDraw)

	s.model = world.NewModel(backend,
		world.WithLogger(logging.GetWorldLogger()),
		world.WithStreamRadius(cfg.World.StreamRadius),
	)
	s.generate(ctx)

	spawn := mgl64.Vec3(cfg.Player.Spawn)
	s.player = entity.NewPlayer(playerID, spawn, entity.MovementFromConfig(cfg.Player))
	return s, nil
}

// generate заполняет мир и сразу выполняет всю отложенную работу
func (s *Session) generate(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "world.generate", trace.WithAttributes(
		attribute.Int64("world.seed", s.cfg.World.Seed),
		attribute.Int("world.size", s.cfg.World.Size),
	))
	defer span.End()

	wc := s.cfg.World
	heights := util.NewHeightMap(wc.Seed, wc.NoiseScale, wc.MaxHeight)
	gen := world.NewWorldGenerator(wc.Seed, wc.Size, heights)
	gen.SeaLevel = wc.SeaLevel
	gen.BeachLevel = wc.BeachLevel
	gen.TreeChance = wc.TreeChance

	start := time.Now()
	placed := gen.Populate(s.model)
	processed := s.model.ProcessEntireQueue()
	st := s.model.Stats()

	span.SetAttributes(
		attribute.Int("world.placed", placed),
		attribute.Int("world.blocks", st.Blocks),
		attribute.Int("world.rendered", st.Rendered),
	)
	s.log.Info("🌍 Мир %dx%d сгенерирован за %v: блоков %d, операций %d, мешей %d",
		wc.Size, wc.Size, time.Since(start), st.Blocks, processed, st.Rendered)
}

// Tick продвигает симуляцию на dt секунд: очередь под бюджет тика, стриминг
// секторов, затем физика подшагами. Паника внутри тика возвращается ошибкой.
func (s *Session) Tick(ctx context.Context, dt float64) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("тик %d: паника: %v", s.ticks, r)
		}
		if s.metrics == nil {
			return
		}
		if err != nil {
			s.metrics.ObserveTickError()
			return
		}
		s.metrics.Observe(s.model.Stats(), time.Since(start))
	}()

	s.ticks++
	s.model.ProcessQueue(s.cfg.Simulation.TickPeriod())

	sector := s.player.Sector()
	if s.sector == nil || *s.sector != sector {
		s.changeSectors(ctx, sector)
	}

	dt = math.Min(dt, s.cfg.Simulation.MaxDelta)
	steps := s.cfg.Simulation.Substeps
	for i := 0; i < steps; i++ {
		s.player.Update(dt/float64(steps), s.model)
	}
	return nil
}

func (s *Session) changeSectors(ctx context.Context, sector vec.Vec3) {
	_, span := s.tracer.Start(ctx, "world.change_sectors", trace.WithAttributes(
		attribute.Int("sector.x", sector.X),
		attribute.Int("sector.z", sector.Z),
	))
	defer span.End()

	change := s.model.ChangeSectors(s.sector, &sector)
	if s.sector == nil {
		s.model.ProcessEntireQueue()
	}
	s.sector = &sector

	span.SetAttributes(
		attribute.Int("sectors.shown", len(change.Show)),
		attribute.Int("sectors.hidden", len(change.Hide)),
	)
	s.log.Debug("Игрок в секторе %v", sector)
}

// Model возвращает модель мира
func (s *Session) Model() *world.Model { return s.model }

// Player возвращает игрока
func (s *Session) Player() *entity.Player { return s.player }

// Sector возвращает сектор, для которого загружен диск
func (s *Session) Sector() (vec.Vec3, bool) {
	if s.sector == nil {
		return vec.Vec3{}, false
	}
	return *s.sector, true
}

// Ticks возвращает число выполненных тиков
func (s *Session) Ticks() uint64 { return s.ticks }

// StatusLine формирует строку статуса: частота тиков, позиция, меши и очередь
func (s *Session) StatusLine(tps float64) string {
	p := s.player.Position()
	st := s.model.Stats()
	return fmt.Sprintf("%02.0f tps (%.2f, %.2f, %.2f) %d / %d очередь %d",
		tps, p.X(), p.Y(), p.Z(), st.Rendered, st.Blocks, st.Queued)
}
