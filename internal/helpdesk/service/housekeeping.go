package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store"
)

// DefaultSessionRetention is how long expired or revoked sessions are kept
// before cleanup removes them.
const DefaultSessionRetention = 24 * time.Hour

// HousekeepingService periodically deletes stale sessions. Invitations are
// kept forever as an audit trail and are never touched here.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration
	Clock     Clock

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to one hour and a
// non-positive retention to DefaultSessionRetention.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = DefaultSessionRetention
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs cleanup once and then on every tick until Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "retention", s.Retention)
}

// Stop blocks until an in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	_, _ = s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			_, _ = s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce deletes sessions that expired or were revoked more than Retention
// ago and returns how many were removed.
func (s *HousekeepingService) RunOnce(ctx context.Context) (int64, error) {
	cutoff := s.Clock.now().Add(-s.Retention)

	n, err := s.Store.Sessions().DeleteStaleSessions(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete stale sessions", "error", err)
		return 0, err
	}

	s.Logger.Info("housekeeping cleanup completed", "deleted_sessions", n, "cutoff", cutoff)
	return n, nil
}
