// Package scheduler runs periodic jobs. The only job today is the
// old-tickets digest, which mails the admin a summary of tickets that have
// been open too long.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"fixmylab/internal/application/ticket/usecases"
	"fixmylab/internal/shared/logger"
)

type Scheduler struct {
	cron           *cron.Cron
	oldTicketsSpec string
	oldTickets     usecases.OldTicketsCheckExecutor
	logger         logger.Interface
}

func New(oldTicketsSpec string, oldTickets usecases.OldTicketsCheckExecutor, log logger.Interface) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		oldTicketsSpec: oldTicketsSpec,
		oldTickets:     oldTickets,
		logger:         log,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.oldTicketsSpec, s.runOldTicketsCheck); err != nil {
		return fmt.Errorf("failed to schedule old-tickets check: %w", err)
	}

	s.cron.Start()
	s.logger.Infow("scheduler started", "old_tickets_cron", s.oldTicketsSpec)
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Infow("scheduler stopped")
}

func (s *Scheduler) runOldTicketsCheck() {
	sent, err := s.oldTickets.Execute(context.Background())
	if err != nil {
		s.logger.Errorw("old-tickets check failed", "error", err)
		return
	}
	s.logger.Infow("old-tickets check completed", "digest_sent", sent)
}
