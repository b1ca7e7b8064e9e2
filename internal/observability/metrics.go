package observability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/advikgoyal02/Minecraft/internal/logging"
	"github.com/advikgoyal02/Minecraft/internal/world"
)

const namespace = "voxel"

// MetricsExporter держит Prometheus-метрики мира и HTTP-эндпоинт /metrics.
// Метрики живут в собственном регистре, поэтому экспортеров может быть несколько.
type MetricsExporter struct {
	registry *prometheus.Registry
	server   *http.Server

	blocks   prometheus.Gauge
	sectors  prometheus.Gauge
	shown    prometheus.Gauge
	rendered prometheus.Gauge
	queued   prometheus.Gauge

	processed      prometheus.Counter
	staleSkipped   prometheus.Counter
	uploadFailures prometheus.Counter
	ticks          prometheus.Counter
	tickErrors     prometheus.Counter
	tickDuration   prometheus.Histogram

	cpuPercent prometheus.Gauge
	rssBytes   prometheus.Gauge

	// Счётчики модели накопительные: храним прошлый снимок и прибавляем дельту
	prev world.Stats
}

// NewMetricsExporter создаёт экспортер, но не запускает HTTP-сервер.
// session попадает в константную метку всех метрик.
func NewMetricsExporter(session string) *MetricsExporter {
	labels := prometheus.Labels{"session": session}
	gauge := func(subsystem, name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: name, Help: help, ConstLabels: labels,
		})
	}
	counter := func(subsystem, name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: name, Help: help, ConstLabels: labels,
		})
	}

	me := &MetricsExporter{
		registry: prometheus.NewRegistry(),
		blocks:   gauge("world", "blocks", "Число блоков в мире."),
		sectors:  gauge("world", "sectors", "Число непустых секторов."),
		shown:    gauge("world", "shown_blocks", "Блоков, отмеченных видимыми."),
		rendered: gauge("world", "rendered_blocks", "Блоков с живым мешем в бэкенде."),
		queued:   gauge("queue", "depth", "Операций, ожидающих в очереди."),

		processed:      counter("queue", "processed_total", "Выполнено операций очереди."),
		staleSkipped:   counter("queue", "stale_skipped_total", "Показов, пропущенных из-за устаревшей записи."),
		uploadFailures: counter("render", "upload_failures_total", "Отказов бэкенда при загрузке меша."),
		ticks:          counter("sim", "ticks_total", "Выполнено тиков симуляции."),
		tickErrors:     counter("sim", "tick_errors_total", "Тиков, прерванных ошибкой."),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "sim",
			Name:        "tick_duration_seconds",
			Help:        "Длительность тика симуляции.",
			ConstLabels: labels,
			Buckets:     []float64{.0005, .001, .002, .004, .008, .016, .033, .066, .1, .2},
		}),

		cpuPercent: gauge("process", "cpu_percent", "Загрузка CPU процессом."),
		rssBytes:   gauge("process", "resident_memory_bytes", "Резидентная память процесса."),
	}

	me.registry.MustRegister(
		me.blocks, me.sectors, me.shown, me.rendered, me.queued,
		me.processed, me.staleSkipped, me.uploadFailures,
		me.ticks, me.tickErrors, me.tickDuration,
		me.cpuPercent, me.rssBytes,
	)
	return me
}

// Registry возвращает регистр экспортера
func (m *MetricsExporter) Registry() *prometheus.Registry { return m.registry }

// Handler возвращает HTTP-обработчик /metrics
func (m *MetricsExporter) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Observe записывает снимок модели после тика
func (m *MetricsExporter) Observe(stats world.Stats, tick time.Duration) {
	m.blocks.Set(float64(stats.Blocks))
	m.sectors.Set(float64(stats.Sectors))
	m.shown.Set(float64(stats.Shown))
	m.rendered.Set(float64(stats.Rendered))
	m.queued.Set(float64(stats.Queued))

	addDelta(m.processed, stats.Processed, m.prev.Processed)
	addDelta(m.staleSkipped, stats.StaleSkipped, m.prev.StaleSkipped)
	addDelta(m.uploadFailures, stats.UploadFailures, m.prev.UploadFailures)
	m.prev = stats

	m.ticks.Inc()
	m.tickDuration.Observe(tick.Seconds())
}

// ObserveTickError учитывает прерванный тик
func (m *MetricsExporter) ObserveTickError() {
	m.tickErrors.Inc()
}

// ObserveProcess записывает замер процесса
func (m *MetricsExporter) ObserveProcess(s ProcessSample) {
	m.cpuPercent.Set(s.CPUPercent)
	m.rssBytes.Set(float64(s.RSSBytes))
}

func addDelta(c prometheus.Counter, cur, prev uint64) {
	if cur > prev {
		c.Add(float64(cur - prev))
	}
}

// StartHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе (например, ":2112").
// Метод неблокирующий: HTTP-сервер стартует в отдельной горутине.
func (m *MetricsExporter) StartHTTP(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	m.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}

// Stop останавливает HTTP-сервер, если он был запущен
func (m *MetricsExporter) Stop(ctx context.Context) error {
	if m.server == nil {
		return nil
	}
	return m.server.Shutdown(ctx)
}
