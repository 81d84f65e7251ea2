package logging

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"bloghub/internal/models"
)

const (
	logRetention    = 30 * 24 * time.Hour
	cleanupInterval = 24 * time.Hour
)

// StartCleanup prunes system_logs past the retention window once a
// day until done is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().Add(-logRetention)
				res := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if res.Error != nil {
					slog.Error("log cleanup failed", "error", res.Error)
				} else if res.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", res.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
