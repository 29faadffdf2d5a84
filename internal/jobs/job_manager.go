package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"procurement/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reservationSweepJob *ReservationSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.SweepReservationsCommandHandler,
	reservationTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reservationSweepJob: NewReservationSweepJob(sweepHandler, reservationTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reservationSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start reservation sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reservationSweepJob.Stop()
}
