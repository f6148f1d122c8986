package jobs

import (
	"context"
	"time"

	"rentalcar-backend/internal/logger"
)

// ExpirePendingRentals cancels bookings that were never confirmed within the
// configured TTL and returns their cars to the available pool.
func (jr *JobRunner) ExpirePendingRentals() {
	jr.runWithRecovery("ExpirePendingRentals", func() {
		ctx := context.Background()
		ttl := time.Duration(jr.config.Scheduler.PendingTTLHours) * time.Hour

		expired, err := jr.rentalSvc.ExpirePendingRentals(ctx, ttl)
		if err != nil {
			logger.Error("Failed to expire pending rentals", "error", err)
			return
		}
		logger.Info("Expired pending rentals", "count", expired, "ttl_hours", jr.config.Scheduler.PendingTTLHours)
	})
}
