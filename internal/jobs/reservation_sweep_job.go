package jobs

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationSweepJob periodically releases number reservations that were
// never confirmed, returning their slots to the pool. Runs every minute.
type ReservationSweepJob struct {
	handler commands.SweepReservationsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationSweepJob creates the sweep job. A non-positive ttl disables
// the job entirely.
func NewReservationSweepJob(
	handler commands.SweepReservationsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *ReservationSweepJob {
	return &ReservationSweepJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reservation_sweep_job"),
	}
}

// Start begins the sweep job, running at the top of every minute.
func (j *ReservationSweepJob) Start() error {
	if j.ttl <= 0 {
		j.logger.InfoContext(context.Background(), "Reservation sweep job disabled (ttl is zero)")
		return nil
	}

	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSweepReservationsCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Reservation sweep command invalid", "error", cmdErr)
			return
		}

		released, sweepErr := j.handler.Handle(ctx, cmd)
		if sweepErr != nil {
			j.logger.ErrorContext(ctx, "Reservation sweep failed", "error", sweepErr)
			return
		}
		if released > 0 {
			j.logger.InfoContext(ctx, "Released stale reservations", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation sweep job started", "ttl", j.ttl.String())
	return nil
}

// Stop stops the sweep job.
func (j *ReservationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation sweep job stopped")
}
