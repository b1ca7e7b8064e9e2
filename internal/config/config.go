package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Atlas      AtlasConfig      `yaml:"atlas"`
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// WorldConfig описывает генерацию мира и стриминг секторов
type WorldConfig struct {
	Seed int64 `yaml:"seed"`
	// Size - сторона квадрата мира в колоннах
	Size int `yaml:"size"`
	// StreamRadius - радиус диска секторов вокруг игрока (pad)
	StreamRadius int `yaml:"stream_radius"`
	SeaLevel     int `yaml:"sea_level"`
	BeachLevel   int `yaml:"beach_level"`
	MaxHeight    int `yaml:"max_height"`
	// TreeChance - вероятность дерева на подходящей колонне
	TreeChance float64 `yaml:"tree_chance"`
	NoiseScale float64 `yaml:"noise_scale"`
}

// SimulationConfig задаёт шаг симуляции
type SimulationConfig struct {
	TickRate int `yaml:"tick_rate"`
	Substeps int `yaml:"substeps"`
	// MaxDelta - верхняя граница dt одного тика в секундах
	MaxDelta float64 `yaml:"max_delta"`
}

// PlayerConfig содержит параметры движения игрока
type PlayerConfig struct {
	Height           int        `yaml:"height"`
	WalkingSpeed     float64    `yaml:"walking_speed"`
	FlyingSpeed      float64    `yaml:"flying_speed"`
	CrouchSpeed      float64    `yaml:"crouch_speed"`
	SprintSpeed      float64    `yaml:"sprint_speed"`
	Gravity          float64    `yaml:"gravity"`
	MaxJumpHeight    float64    `yaml:"max_jump_height"`
	TerminalVelocity float64    `yaml:"terminal_velocity"`
	Spawn            [3]float64 `yaml:"spawn"`
}

// AtlasConfig указывает на атлас текстур
type AtlasConfig struct {
	Path string `yaml:"path"`
	Grid int    `yaml:"grid"`
}

// LoggingConfig задаёт уровень и вывод логов
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

// ServerConfig описывает сетевые порты процесса
type ServerConfig struct {
	MetricsPort int `yaml:"metrics_port"`
}

// TelemetryConfig включает экспорт трасс OTLP
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// Defaults возвращает конфигурацию по умолчанию
func Defaults() *Config {
	return &Config{
		World: WorldConfig{
			Seed:         452692,
			Size:         160,
			StreamRadius: 4,
			SeaLevel:     4,
			BeachLevel:   6,
			MaxHeight:    20,
			TreeChance:   0.01,
			NoiseScale:   0.02,
		},
		Simulation: SimulationConfig{
			TickRate: 60,
			Substeps: 8,
			MaxDelta: 0.2,
		},
		Player: PlayerConfig{
			Height:           2,
			WalkingSpeed:     5,
			FlyingSpeed:      15,
			CrouchSpeed:      2,
			SprintSpeed:      7,
			Gravity:          20,
			MaxJumpHeight:    1,
			TerminalVelocity: 50,
			Spawn:            [3]float64{80, 30, 80},
		},
		Atlas: AtlasConfig{
			Path: "assets/texture.png",
			Grid: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Dir:    "logs",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "voxel-world",
		},
	}
}

// TickPeriod возвращает длительность одного тика
func (s SimulationConfig) TickPeriod() time.Duration {
	if s.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.TickRate)
}

// JumpSpeed - начальная скорость прыжка на высоту MaxJumpHeight: v = sqrt(2gh)
func (p PlayerConfig) JumpSpeed() float64 {
	return math.Sqrt(2 * p.Gravity * p.MaxJumpHeight)
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "GAME_METRICS_PORT", 2112)
}

// MetricsAddr возвращает адрес вида ":2112"
func (s *ServerConfig) MetricsAddr() string {
	return fmt.Sprintf(":%d", s.GetMetricsPort())
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Validate проверяет значения, без которых мир не собрать
func (c *Config) Validate() error {
	if c.World.Size <= 0 {
		return fmt.Errorf("world.size должен быть > 0, получено %d", c.World.Size)
	}
	if c.World.StreamRadius < 0 {
		return fmt.Errorf("world.stream_radius не может быть отрицательным")
	}
	if c.Simulation.Substeps <= 0 {
		return fmt.Errorf("simulation.substeps должен быть > 0")
	}
	if c.Player.Height <= 0 {
		return fmt.Errorf("player.height должен быть > 0")
	}
	if c.Atlas.Grid <= 0 {
		return fmt.Errorf("atlas.grid должен быть > 0")
	}
	return nil
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV GAME_CONFIG, иначе возвращает Defaults().
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return cfg, nil // конфиг не задан, используем дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
