package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Scheduler runs periodic maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

func NewScheduler(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log.With().Str("component", "cron").Logger(),
	}
}

// AddDBHealthCheck pings the database on schedule and logs failures. The
// GORM pool reconnects on the next query once the server is back.
func (s *Scheduler) AddDBHealthCheck(schedule string, db Pinger) error {
	_, err := s.cron.AddFunc(schedule, func() { s.checkDB(db) })
	if err != nil {
		return fmt.Errorf("schedule db health check %q: %w", schedule, err)
	}
	return nil
}

func (s *Scheduler) checkDB(db Pinger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	if err := db.Ping(ctx); err != nil {
		s.log.Error().Err(err).Msg("database health check failed")
		return
	}
	s.log.Debug().Dur("latency", time.Since(start)).Msg("database health check ok")
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("cron scheduler started")
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn().Msg("cron jobs still running at shutdown")
	}
}
