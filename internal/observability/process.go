package observability

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcessSample - замер ресурсов процесса
type ProcessSample struct {
	CPUPercent float64
	RSSBytes   uint64
	HeapMB     float64
	Goroutines int
}

// ProcessStats снимает метрики текущего процесса для строки статуса
type ProcessStats struct {
	StartTime time.Time
	proc      *process.Process
}

// NewProcessStats создает сборщик метрик процесса
func NewProcessStats() (*ProcessStats, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("процесс %d: %w", os.Getpid(), err)
	}
	return &ProcessStats{StartTime: time.Now(), proc: proc}, nil
}

// Uptime возвращает время работы процесса
func (ps *ProcessStats) Uptime() string {
	return formatUptime(time.Since(ps.StartTime))
}

func formatUptime(uptime time.Duration) string {
	days := int(uptime.Hours()) / 24
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dд %dч %dм %dс", days, hours, minutes, seconds)
	} else if hours > 0 {
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	}
	return fmt.Sprintf("%dс", seconds)
}

// systemCPUPercent не ждёт интервал, а сравнивает с предыдущим вызовом.
// Sample вызывается из цикла симуляции и не должен блокировать тик.
var systemCPUPercent = func() ([]float64, error) {
	return cpu.Percent(0, false)
}

// Sample снимает CPU, память и число горутин
func (ps *ProcessStats) Sample() (ProcessSample, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s := ProcessSample{
		HeapMB:     float64(m.HeapAlloc) / 1024 / 1024,
		Goroutines: runtime.NumGoroutine(),
	}

	cpuPercent, err := ps.proc.CPUPercent()
	if err != nil {
		// Если не удалось получить метрику процесса, берём системную
		cpuPercents, sysErr := systemCPUPercent()
		if sysErr != nil || len(cpuPercents) == 0 {
			return s, fmt.Errorf("загрузка CPU: %w", err)
		}
		cpuPercent = cpuPercents[0]
	}
	s.CPUPercent = cpuPercent

	mem, err := ps.proc.MemoryInfo()
	if err != nil {
		return s, fmt.Errorf("память процесса: %w", err)
	}
	s.RSSBytes = mem.RSS
	return s, nil
}
