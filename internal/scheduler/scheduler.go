// Package scheduler triggers extraction runs on a fixed cadence.
//
// Runs fire daily at 06:00 Lagos time year-round, and every six hours
// during the configured peak month when the source site turns over fastest.
// A manual trigger serves operator-invoked runs. Triggers from any source
// are serialized: the pipeline assumes at most one active run, so an
// overlapping trigger is skipped, not queued.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/olade/naija-events/internal/logger"
	"github.com/olade/naija-events/internal/pipeline"
)

const (
	dailyHour    = 6
	peakInterval = 6 * time.Hour
)

// Runner executes one extraction run.
type Runner interface {
	Run(ctx context.Context) (pipeline.Summary, error)
}

// Result is the structured outcome of an operator-invoked run.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Scheduler owns the cadences and the single-run guard.
type Scheduler struct {
	runner    Runner
	log       *logger.Logger
	location  *time.Location
	peakMonth time.Month

	mu      sync.Mutex
	running bool
}

// New creates a scheduler. peakMonth selects the elevated-frequency
// cadence (December on the source site). The Lagos timezone anchors the
// daily run; if unavailable the scheduler degrades to UTC.
func New(runner Runner, log *logger.Logger, peakMonth time.Month) *Scheduler {
	location, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		log.Warn("Lagos timezone unavailable, scheduling in UTC", nil)
		location = time.UTC
	}
	return &Scheduler{
		runner:    runner,
		log:       log,
		location:  location,
		peakMonth: peakMonth,
	}
}

// Start runs both cadences until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.loop(ctx, "daily", s.nextDaily)
	go s.loop(ctx, "peak", s.nextPeakTick)
}

func (s *Scheduler) loop(ctx context.Context, cadence string, next func(time.Time) time.Time) {
	for {
		timer := time.NewTimer(time.Until(next(time.Now().In(s.location))))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if cadence == "peak" && !s.InPeakMonth(time.Now().In(s.location)) {
			continue
		}

		s.log.Info("scheduled scraping starting", logger.Fields{"cadence": cadence})
		result := s.runOnce(ctx)
		if result.Success {
			s.log.Info("scheduled scraping completed", logger.Fields{
				"cadence": cadence,
				"message": result.Message,
			})
		} else {
			s.log.Error("scheduled scraping failed", logger.Fields{
				"cadence": cadence,
				"message": result.Message,
			}, nil)
		}
	}
}

// nextDaily returns the next 06:00 in the scheduler's timezone.
func (s *Scheduler) nextDaily(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), dailyHour, 0, 0, 0, s.location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// nextPeakTick returns the next six-hour boundary (00, 06, 12, 18). The
// tick always fires; whether it runs is decided at fire time by the month
// check, matching a cron that guards internally.
func (s *Scheduler) nextPeakTick(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	for tick := midnight; ; tick = tick.Add(peakInterval) {
		if tick.After(now) {
			return tick
		}
	}
}

// InPeakMonth reports whether t falls in the elevated-frequency month.
func (s *Scheduler) InPeakMonth(t time.Time) bool {
	return t.In(s.location).Month() == s.peakMonth
}

// TriggerManual serves operator-invoked runs with a structured result.
func (s *Scheduler) TriggerManual(ctx context.Context) Result {
	s.log.Info("manual scraping triggered", nil)
	return s.runOnce(ctx)
}

// runOnce executes a single run under the overlap guard.
func (s *Scheduler) runOnce(ctx context.Context) Result {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return Result{Success: false, Message: "a scraping run is already in progress"}
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	summary, err := s.runner.Run(ctx)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("scraping completed: %d/%d events saved", summary.Succeeded, summary.Attempted),
	}
}
