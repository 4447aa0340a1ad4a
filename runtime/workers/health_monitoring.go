package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthMonitoringWorker samples the process's own resource usage and
// the fan-out queue depth on a fixed interval and reports them through
// the logger. The delivery core runs embedded, so there is no separate
// process to watch.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	queueDepth     func() int
}

func NewHealthMonitoringWorker(log *slog.Logger, metricInterval time.Duration, queueDepth func() int) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{log: log, metricInterval: metricInterval, queueDepth: queueDepth}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			status, err := self.Status()
			if err != nil {
				w.log.Error("Error while finding process status", "err", err)
				continue
			}
			cpu, err := self.CPUPercent()
			if err != nil {
				w.log.Error("Error while finding process cpu usage", "err", err)
				continue
			}
			ram, err := self.MemoryPercent()
			if err != nil {
				w.log.Error("Error while finding process ram usage", "err", err)
				continue
			}
			depth := 0
			if w.queueDepth != nil {
				depth = w.queueDepth()
			}
			w.log.Info("Process health", "status", status, "cpu", cpu, "ram", ram, "queueDepth", depth)
		}
	}
}
