package logging

import (
	"log/slog"
	"time"

	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"gorm.io/gorm"
)

const (
	logRetention    = 30 * 24 * time.Hour
	cleanupInterval = 24 * time.Hour
)

// StartCleanup prunes system_logs past the retention window once a day
// until done is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				pruneLogs(db)
			}
		}
	}()
}

func pruneLogs(db *gorm.DB) {
	cutoff := time.Now().Add(-logRetention)
	res := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	switch {
	case res.Error != nil:
		slog.Error("log retention prune failed", "error", res.Error)
	case res.RowsAffected > 0:
		slog.Info("pruned old system logs", "deleted", res.RowsAffected, "cutoff", cutoff)
	}
}
