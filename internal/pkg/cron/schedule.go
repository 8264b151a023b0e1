package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/compoff"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
)

// ScheduleJobs holds the background maintenance jobs for schedules and the
// comp-off ledger.
type ScheduleJobs struct {
	scheduleRepo schedule.ScheduleRepository
	compOffSvc   compoff.CompOffService
}

func NewScheduleJobs(
	scheduleRepo schedule.ScheduleRepository,
	compOffSvc compoff.CompOffService,
) *ScheduleJobs {
	return &ScheduleJobs{
		scheduleRepo: scheduleRepo,
		compOffSvc:   compOffSvc,
	}
}

func (j *ScheduleJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("complete_past_schedules", 1*time.Hour, j.CompletePastSchedules)
	scheduler.AddJob("expire_comp_off", 1*time.Hour, j.ExpireCompOff)
}

// CompletePastSchedules settles yesterday's scheduled rows: completed when an
// attendance record exists for the date, missed otherwise.
func (j *ScheduleJobs) CompletePastSchedules(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting complete past schedules job")

	cutoff := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	affected, err := j.scheduleRepo.MarkPastSchedules(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to mark past schedules: %w", err)
	}

	slog.Info("Cron: Settled past schedules", "count", affected, "cutoff", cutoff.Format("2006-01-02"))
	return nil
}

// ExpireCompOff writes off comp-off balances earned before the current month.
// The expiry itself is idempotent, so running hourly on the first day of the
// month only expires each balance once.
func (j *ScheduleJobs) ExpireCompOff(ctx context.Context) error {
	now := time.Now().UTC()

	// Only run on the first day of the month, within the first hour
	if now.Day() != 1 || now.Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting comp-off expiry job")

	expired, err := j.compOffSvc.ExpireOutdated(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to expire comp-off balances: %w", err)
	}

	slog.Info("Cron: Expired comp-off balances", "days", expired)
	return nil
}
