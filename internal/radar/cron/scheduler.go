package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/radar-hub/techradar-backend/internal/radar/service"
	"github.com/robfig/cron/v3"
)

const refreshTimeout = 10 * time.Second

// Scheduler periodically rebuilds the radar snapshot so the common read path
// stays warm between mutations.
type Scheduler struct {
	svc  *service.RadarService
	spec string
	c    *cron.Cron
}

// NewScheduler creates a scheduler that refreshes on the given cron spec
// (six-field, with seconds).
func NewScheduler(svc *service.RadarService, spec string) *Scheduler {
	return &Scheduler{svc: svc, spec: spec}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := s.svc.RefreshSnapshot(ctx); err != nil {
			log.Printf("scheduled radar snapshot refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("radar snapshot refresher started (spec %q)", s.spec)
	c.Start()
	s.c = c
	return nil
}

// Stop halts the cron loop; a refresh already in flight runs to completion.
func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}
