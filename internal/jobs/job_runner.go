package jobs

import (
	"rentalcar-backend/internal/config"
	"rentalcar-backend/internal/logger"
	"rentalcar-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalSvc service.RentalService
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rentalSvc service.RentalService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentalSvc: rentalSvc,
		config:    cfg,
	}
}

// Config exposes the configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every registered job (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.ExpirePendingRentals()
}
