package logging

import (
	"fmt"
	"os"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger = Nop()
)

// InitDefaultLogger создает глобальный логгер процесса с параметрами по умолчанию
func InitDefaultLogger(component string) error {
	return InitDefaultLoggerWithOptions(component, DefaultOptions())
}

// InitDefaultLoggerWithOptions создает глобальный логгер с заданными параметрами
func InitDefaultLoggerWithOptions(component string, opts Options) error {
	l, err := NewLogger(component, opts)
	if err != nil {
		return err
	}
	SetDefault(l)
	return nil
}

// SetDefault подменяет глобальный логгер
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default возвращает глобальный логгер
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// CloseDefaultLogger закрывает глобальный логгер
func CloseDefaultLogger() {
	if err := Default().Close(); err != nil {
		fmt.Fprintf(os.Stderr, "ошибка закрытия логгера: %v\n", err)
	}
}

// Trace логирует сообщение уровня TRACE в глобальный логгер
func Trace(format string, args ...interface{}) { Default().Trace(format, args...) }

// Debug логирует сообщение уровня DEBUG в глобальный логгер
func Debug(format string, args ...interface{}) { Default().Debug(format, args...) }

// Info логирует сообщение уровня INFO в глобальный логгер
func Info(format string, args ...interface{}) { Default().Info(format, args...) }

// Warn логирует сообщение уровня WARN в глобальный логгер
func Warn(format string, args ...interface{}) { Default().Warn(format, args...) }

// Error логирует сообщение уровня ERROR в глобальный логгер
func Error(format string, args ...interface{}) { Default().Error(format, args...) }

// Fatal логирует ошибку и завершает процесс
func Fatal(format string, args ...interface{}) {
	l := Default()
	l.Error(format, args...)
	_ = l.Close()
	os.Exit(1)
}
