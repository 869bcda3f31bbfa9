// Package service runs the analytics engine over the activity log and keeps the
// most recent report for the dashboard.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"group-analytics/analytics"
	"group-analytics/models"
	"group-analytics/repository"
)

// ErrNoData is returned when no report exists yet and one could not be built.
var ErrNoData = errors.New("no analytics report available")

type RecordFetcher interface {
	Fetch(ctx context.Context, f repository.Filter) ([]models.GroupActivityRecord, error)
}

// Snapshot is a report together with when it was built.
type Snapshot struct {
	analytics.Report
	GeneratedAt time.Time `json:"geradoEm"`
	Stale       bool      `json:"desatualizado"`
}

// Session fetches the activity log once per refresh and caches the resulting report.
// Concurrent refreshes share a single fetch and computation.
type Session struct {
	fetcher RecordFetcher
	opts    analytics.Options
	log     *zap.Logger
	now     func() time.Time

	flight singleflight.Group

	mu      sync.RWMutex
	current *Snapshot
}

func NewSession(fetcher RecordFetcher, opts analytics.Options, log *zap.Logger) *Session {
	return &Session{
		fetcher: fetcher,
		opts:    opts,
		log:     log,
		now:     time.Now,
	}
}

// Current returns the cached report, if any.
func (s *Session) Current() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

// Report returns the cached report, building it on first use.
func (s *Session) Report(ctx context.Context) (*Snapshot, error) {
	if snap, ok := s.Current(); ok {
		return snap, nil
	}
	snap, err := s.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoData, err)
	}
	return snap, nil
}

// Refresh rebuilds the cached report from the full log. On a fetch failure the
// previous report is kept and the error is returned.
func (s *Session) Refresh(ctx context.Context) (*Snapshot, error) {
	v, err, shared := s.flight.Do("refresh", func() (interface{}, error) {
		snap, err := s.build(ctx, repository.Filter{})
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.current = snap
		s.mu.Unlock()
		return snap, nil
	})
	if shared {
		s.log.Debug("joined in-flight refresh")
	}
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Analyze builds an uncached report for a filtered view of the log.
func (s *Session) Analyze(ctx context.Context, f repository.Filter) (*Snapshot, error) {
	if f.IsZero() {
		return s.Report(ctx)
	}
	return s.build(ctx, f)
}

// Stale returns the cached report flagged as out of date, for use when a
// refresh has failed.
func (s *Session) Stale() (*Snapshot, bool) {
	snap, ok := s.Current()
	if !ok {
		return nil, false
	}
	stale := *snap
	stale.Stale = true
	return &stale, true
}

// Run refreshes the report every interval until ctx is done.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Failures are logged by build; the previous report stays in place.
			_, _ = s.Refresh(ctx)
		}
	}
}

func (s *Session) build(ctx context.Context, f repository.Filter) (*Snapshot, error) {
	start := s.now()
	records, err := s.fetcher.Fetch(ctx, f)
	if err != nil {
		s.log.Error("activity fetch failed", zap.Error(err))
		return nil, err
	}

	report := analytics.Analyze(records, s.opts)
	s.log.Info("analytics report built",
		zap.Int("records", len(records)),
		zap.Int("groups", report.Stats.TotalGroups),
		zap.Bool("filtered", !f.IsZero()),
		zap.Duration("duration", s.now().Sub(start)),
	)
	return &Snapshot{Report: report, GeneratedAt: s.now().UTC()}, nil
}
