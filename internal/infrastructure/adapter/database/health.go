package database

import (
	"context"
	"time"

	coreport "github.com/multinvest/platform/internal/domain/port/core"
)

// HealthMonitor periodically pings the database and watches pool pressure
type HealthMonitor struct {
	manager *Manager
	logger  coreport.Logger
	stop    chan struct{}
}

// NewHealthMonitor creates a monitor bound to an established connection
func NewHealthMonitor(manager *Manager, logger coreport.Logger) *HealthMonitor {
	return &HealthMonitor{
		manager: manager,
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

// Start launches the monitoring goroutine
func (h *HealthMonitor) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				h.check()
			}
		}
	}()
}

// Stop stops the monitoring goroutine
func (h *HealthMonitor) Stop() {
	close(h.stop)
}

func (h *HealthMonitor) check() {
	sqlDB, err := h.manager.DB().DB()
	if err != nil {
		h.logger.Error("Failed to get SQL DB instance during health check", map[string]any{
			"error": err.Error(),
		})
		return
	}

	ctx, cancel := h.manager.timeProvider.WithTimeout(context.Background(), h.manager.QueryTimeout())
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		h.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
		return
	}

	stats := sqlDB.Stats()
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*0.8 {
		h.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
