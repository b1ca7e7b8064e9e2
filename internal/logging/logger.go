package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает уровень из конфигурации. Неизвестное значение даёт INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// zapLevel переводит уровень в zap. У zap нет TRACE, он пишется как DEBUG.
func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Options задаёт параметры логгера
type Options struct {
	Level LogLevel
	// Format: "console" (по умолчанию) или "json"
	Format string
	// Dir - каталог для файлового лога. Пустая строка отключает файл.
	Dir string
}

// DefaultOptions возвращает параметры по умолчанию: INFO в консоль, файл в logs/
func DefaultOptions() Options {
	return Options{Level: INFO, Format: "console", Dir: "logs"}
}

// Logger - printf-обёртка над zap с фильтром по LogLevel
type Logger struct {
	component string
	level     LogLevel
	zl        *zap.Logger
	sugar     *zap.SugaredLogger
	file      *os.File
}

// NewLogger создает логгер компонента: консоль плюс JSON-файл logs/<component>_<time>.log
func NewLogger(component string, opts Options) (*Logger, error) {
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleCfg.ConsoleSeparator = "  "

	var consoleEnc zapcore.Encoder
	if opts.Format == "json" {
		consoleEnc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		consoleEnc = zapcore.NewConsoleEncoder(consoleCfg)
	}

	lvl := zap.NewAtomicLevelAt(opts.Level.zapLevel())
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stdout), lvl),
	}

	var file *os.File
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("ошибка создания директории %s: %w", opts.Dir, err)
		}
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		filename := filepath.Join(opts.Dir, fmt.Sprintf("%s_%s.log", component, timestamp))

		var err error
		file, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания файла логов: %w", err)
		}
		// В файл пишем всё, начиная с DEBUG
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			zapcore.DebugLevel,
		))
	}

	zl := zap.New(zapcore.NewTee(cores...)).Named(component)
	l := newFromZap(zl, component, opts.Level)
	l.file = file
	return l, nil
}

// FromZap оборачивает готовый zap.Logger (например, zaptest/observer в тестах)
func FromZap(zl *zap.Logger, level LogLevel) *Logger {
	return newFromZap(zl, "", level)
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Logger {
	return newFromZap(zap.NewNop(), "", ERROR)
}

func newFromZap(zl *zap.Logger, component string, level LogLevel) *Logger {
	return &Logger{
		component: component,
		level:     level,
		zl:        zl,
		sugar:     zl.Sugar(),
	}
}

// Named возвращает дочерний логгер подкомпонента с тем же выводом
func (l *Logger) Named(name string) *Logger {
	child := newFromZap(l.zl.Named(name), name, l.level)
	return child
}

// With возвращает логгер с постоянными полями
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	child := newFromZap(l.sugar.With(keysAndValues...).Desugar(), l.component, l.level)
	return child
}

// Zap возвращает нижележащий zap.Logger
func (l *Logger) Zap() *zap.Logger { return l.zl }

// Level возвращает минимальный уровень
func (l *Logger) Level() LogLevel { return l.level }

// Enabled сообщает, будет ли записано сообщение уровня level
func (l *Logger) Enabled(level LogLevel) bool { return level >= l.level }

// Trace логирует сообщение уровня TRACE
func (l *Logger) Trace(format string, args ...interface{}) {
	if l.Enabled(TRACE) {
		l.sugar.Debugf("[TRACE] "+format, args...)
	}
}

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.Enabled(DEBUG) {
		l.sugar.Debugf(format, args...)
	}
}

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, args ...interface{}) {
	if l.Enabled(INFO) {
		l.sugar.Infof(format, args...)
	}
}

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.Enabled(WARN) {
		l.sugar.Warnf(format, args...)
	}
}

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Close сбрасывает буферы и закрывает файл
func (l *Logger) Close() error {
	_ = l.zl.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
