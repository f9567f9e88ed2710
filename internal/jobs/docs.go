// Package jobs provides scheduled background tasks for the work-order service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six-field schedules with
// seconds) and run the same command handlers as the HTTP API, inside their
// own units of work.
//
// # Available Jobs
//
// LegacyStateSweepJob rewrites state labels written by older clients
// ("reviewed", "visited", "repaired") to their canonical form. Reads already
// normalize these labels, so the sweep only tidies the stored data; it never
// changes the order of a work order. It runs nightly by default; the
// schedule is taken from LEGACY_STATE_SWEEP_SCHEDULE.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(normalizeHandler, cfg.LegacyStateSweepSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
