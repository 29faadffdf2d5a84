// Package jobs provides scheduled background tasks for the procurement
// service, built on github.com/robfig/cron/v3.
//
// The only job today is ReservationSweepJob: it runs every minute and
// releases number reservations that were reserved more than TTL ago without
// being confirmed, so abandoned slots return to the pool.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(sweepHandler, reservationTTL, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A zero reservation TTL disables the sweep; the manager still reports the
// job as started so shutdown stays uniform.
package jobs
