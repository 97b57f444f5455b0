package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
)

// Service periodically purges predictions older than the retention window
type Service struct {
	store     metadatastore.MetadataStore
	logger    *zap.Logger
	cron      *cron.Cron
	schedule  string
	retention time.Duration
	now       func() time.Time
}

// NewService creates a retention scheduler. A retention of zero days
// disables purging; Start then schedules nothing.
func NewService(store metadatastore.MetadataStore, logger *zap.Logger, schedule string, retentionDays int) (*Service, error) {
	if retentionDays < 0 {
		return nil, fmt.Errorf("retention days must not be negative: %d", retentionDays)
	}
	if retentionDays > 0 {
		if _, err := cron.ParseStandard(schedule); err != nil {
			return nil, fmt.Errorf("invalid cron expression: %w", err)
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		store:     store,
		logger:    logger,
		cron:      cron.New(),
		schedule:  schedule,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
	}, nil
}

// Enabled reports whether a retention window is configured
func (s *Service) Enabled() bool {
	return s.retention > 0
}

// Start schedules the purge job and starts the scheduler
func (s *Service) Start() error {
	if !s.Enabled() {
		s.logger.Info("prediction retention disabled")
		return nil
	}

	schedule, err := cron.ParseStandard(s.schedule)
	if err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	s.cron.Schedule(schedule, cron.FuncJob(func() {
		if _, err := s.Purge(); err != nil {
			s.logger.Error("prediction purge failed", zap.Error(err))
		}
	}))

	s.cron.Start()
	s.logger.Info("retention scheduler started",
		zap.String("schedule", s.schedule),
		zap.Duration("retention", s.retention))
	return nil
}

// Stop stops the scheduler and waits for a running purge to finish or ctx
// to expire.
func (s *Service) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("retention scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Purge deletes predictions older than the retention window
func (s *Service) Purge() (int64, error) {
	if !s.Enabled() {
		return 0, nil
	}

	cutoff := s.now().Add(-s.retention)
	deleted, err := s.store.DeletePredictionsBefore(cutoff)
	if err != nil {
		return 0, err
	}

	s.logger.Info("purged expired predictions",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff))
	return deleted, nil
}
