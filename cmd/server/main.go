package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/advikgoyal02/Minecraft/internal/app"
	"github.com/advikgoyal02/Minecraft/internal/config"
	"github.com/advikgoyal02/Minecraft/internal/logging"
	"github.com/advikgoyal02/Minecraft/internal/observability"
	"github.com/advikgoyal02/Minecraft/internal/render"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
	_ "github.com/advikgoyal02/Minecraft/internal/world/block/implementations"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (или $GAME_CONFIG)")
	autopilot := flag.Bool("autopilot", false, "игрок идёт вперёд и поворачивает, чтобы нагружать стриминг секторов")
	maxTicks := flag.Uint64("ticks", 0, "остановиться после N тиков (0 - работать до сигнала)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализируем систему логирования
	if err := logging.InitDefaultLoggerWithOptions("server", logging.Options{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
		Dir:    cfg.Logging.Dir,
	}); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🎮 Запуск воксельного мира (seed=%d, size=%d)", cfg.World.Seed, cfg.World.Size)

	// Атлас обязателен: без него материалы не отрисовать
	atlas, err := block.LoadAtlas(cfg.Atlas.Path, cfg.Atlas.Grid)
	if err != nil {
		logging.Fatal("❌ Атлас текстур %s: %v", cfg.Atlas.Path, err)
	}
	if err := atlas.Validate(); err != nil {
		logging.Fatal("❌ Атлас текстур %s: %v", cfg.Atlas.Path, err)
	}
	logging.Info("🧱 Атлас %s: %dx%d, сетка %d", atlas.Path, atlas.Width, atlas.Height, atlas.Grid)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.InitTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		logging.Error("❌ Ошибка инициализации OpenTelemetry: %v", err)
		shutdownTelemetry = func(context.Context) error { return nil }
	}

	backend := render.NewMemoryBackend(render.Capabilities{IndexedDraw: true}, atlas.Grid)

	id := uuid.New()
	metrics := observability.NewMetricsExporter(id.String())
	metrics.StartHTTP(cfg.Server.MetricsAddr())

	session, err := app.NewSession(ctx, cfg, backend, app.WithSessionID(id), app.WithMetrics(metrics))
	if err != nil {
		logging.Fatal("❌ Ошибка создания сессии: %v", err)
	}

	procStats, err := observability.NewProcessStats()
	if err != nil {
		logging.Warn("Метрики процесса недоступны: %v", err)
	}

	logging.Info("✅ Сессия %s запущена, вершин в кадре: %d", session.ID, backend.VertexCount())

	run(ctx, session, cfg, metrics, procStats, *autopilot, *maxTicks)

	// === GRACEFUL SHUTDOWN ===
	logging.Debug("Остановка сервисов...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metrics.Stop(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки Prometheus: %v", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки OpenTelemetry: %v", err)
	}
	logging.Info("👋 Сервер успешно остановлен после %d тиков", session.Ticks())
}

// run крутит цикл симуляции до сигнала или лимита тиков
func run(ctx context.Context, session *app.Session, cfg *config.Config, metrics *observability.MetricsExporter,
	procStats *observability.ProcessStats, autopilot bool, maxTicks uint64) {
	ticker := time.NewTicker(cfg.Simulation.TickPeriod())
	defer ticker.Stop()
	status := time.NewTicker(time.Second)
	defer status.Stop()

	if autopilot {
		session.SetDesiredStrafe(1, 0)
		session.SetSprinting(true)
	}

	last := time.Now()
	ticksSinceStatus := 0
	for {
		select {
		case <-ctx.Done():
			logging.Info("📡 Получен сигнал завершения")
			return

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := session.Tick(ctx, dt); err != nil {
				logging.Error("Тик пропущен: %v", err)
			}
			ticksSinceStatus++
			if autopilot {
				steer(session)
			}
			if maxTicks > 0 && session.Ticks() >= maxTicks {
				return
			}

		case <-status.C:
			line := session.StatusLine(float64(ticksSinceStatus))
			ticksSinceStatus = 0
			if procStats != nil {
				if s, err := procStats.Sample(); err == nil {
					metrics.ObserveProcess(s)
					line += " | " + procStats.Uptime()
				}
			}
			logging.Info("%s", line)
		}
	}
}

// steer разворачивает автопилот, когда тот упирается в стену, и прыгает на ступеньки
func steer(session *app.Session) {
	c := session.Player().Body.Contacts
	blocked := c.Left || c.Right || c.Front || c.Back
	session.RequestJump(blocked)
	if blocked && !session.Player().Sprinting {
		session.Look(600, 0)
		session.SetSprinting(true)
	}
}
