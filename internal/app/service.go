// Package service composes timeline derivation, reconciliation, ordering and
// percentile weighting into the operations served by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/ranking"
	"github.com/okian/scorecard/internal/domain/timeline"
	"github.com/okian/scorecard/pkg/logger"
	"github.com/okian/scorecard/pkg/metrics"
)

const (
	defaultMaxItems = 10_000

	kindCompetition = "competition"
	kindClub        = "club"
	kindAssociation = "association"
	kindAccount     = "account"
)

// Service implements the API dependencies for the scorecard.
type Service struct {
	// Core components
	calc *timeline.Calculator

	// Configuration
	maxItems    int
	dimensions  []string
	statusOrder timeline.StatusOrder

	// State
	startedAt time.Time
	counters  counters

	// Logging
	logger logger.Logger
}

type counters struct {
	timelines    atomic.Int64
	competitions atomic.Int64
	clubs        atomic.Int64
	associations atomic.Int64
	accounts     atomic.Int64
	rejected     atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the source of "now" for timeline derivation.
func WithClock(c timeline.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.calc = timeline.NewCalculator(timeline.WithClock(c))
		}
	}
}

// WithMaxItems caps the number of entities accepted per collection.
func WithMaxItems(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxItems = n
		}
	}
}

// WithWeightingDimensions sets the association dimensions weighted when a
// caller does not name its own. Names are validated by New.
func WithWeightingDimensions(names ...string) Option {
	return func(s *Service) {
		if len(names) > 0 {
			s.dimensions = names
		}
	}
}

// WithStatusOrder sets the display order of competition statuses.
func WithStatusOrder(order timeline.StatusOrder) Option {
	return func(s *Service) {
		if len(order) > 0 {
			s.statusOrder = order
		}
	}
}

// New constructs a Service. It fails only when a configured weighting
// dimension is unknown.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		calc:        timeline.NewCalculator(),
		maxItems:    defaultMaxItems,
		dimensions:  DefaultDimensions(),
		statusOrder: timeline.ActiveFirst,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger = s.logger.Named("service")

	dims, err := resolveDimensions(s.dimensions)
	if err != nil {
		return nil, err
	}
	s.dimensions = dimensionNames(dims)
	s.startedAt = s.calc.Now()
	return s, nil
}

// Timeline derives the timeline of [start, end] and reconciles it with the
// upstream's own values, which win wherever they are usable.
func (s *Service) Timeline(ctx context.Context, start, end string, supplied *timeline.Timeline) timeline.Timeline {
	computed := s.calc.Timeline(start, end)
	out := s.reconcile(computed, supplied)
	s.counters.timelines.Add(1)
	s.logger.Debug(ctx, "derived timeline",
		logger.String("start", start),
		logger.String("end", end),
		logger.String("status", string(out.Status)),
	)
	return out
}

// Competitions reconciles the timeline of every competition against a single
// reading of the clock and orders them by status then start date.
func (s *Service) Competitions(ctx context.Context, in []model.Competition) ([]model.CompetitionView, error) {
	if err := s.admit(ctx, kindCompetition, len(in)); err != nil {
		return nil, err
	}
	began := time.Now()

	now := s.calc.Now()
	views := make([]model.CompetitionView, len(in))
	for i, c := range in {
		computed := timeline.Compute(string(c.StartDate), string(c.EndDate), now)
		views[i] = model.CompetitionView{
			ID:        c.ID,
			Name:      c.Name,
			StartDate: c.StartDate,
			EndDate:   c.EndDate,
			Timeline:  s.reconcile(computed, c.Timeline),
		}
	}
	out := ranking.Competitions(views, s.statusOrder)

	s.counters.competitions.Add(1)
	s.observe(ctx, kindCompetition, len(out), began)
	return out, nil
}

// Clubs orders clubs by team count, largest first, then by name.
func (s *Service) Clubs(ctx context.Context, in []model.Club) ([]model.Club, error) {
	if err := s.admit(ctx, kindClub, len(in)); err != nil {
		return nil, err
	}
	began := time.Now()
	out := ranking.Clubs(in)
	s.counters.clubs.Add(1)
	s.observe(ctx, kindClub, len(out), began)
	return out, nil
}

// Accounts orders accounts by last name, first name, then id.
func (s *Service) Accounts(ctx context.Context, in []model.Account) ([]model.Account, error) {
	if err := s.admit(ctx, kindAccount, len(in)); err != nil {
		return nil, err
	}
	began := time.Now()
	out := ranking.Accounts(in)
	s.counters.accounts.Add(1)
	s.observe(ctx, kindAccount, len(out), began)
	return out, nil
}

// Associations orders associations like clubs and annotates each with its
// percentile rank per dimension and the combined weighting. An empty dims
// uses the configured default dimensions.
func (s *Service) Associations(ctx context.Context, in []model.Association, dims []string) ([]model.AssociationView, error) {
	if len(dims) == 0 {
		dims = s.dimensions
	}
	resolved, err := resolveDimensions(dims)
	if err != nil {
		s.reject(ctx, kindAssociation, "unknown_dimension", err)
		return nil, err
	}
	if err := s.admit(ctx, kindAssociation, len(in)); err != nil {
		return nil, err
	}
	began := time.Now()

	out := weigh(ranking.Associations(in), resolved)
	metrics.RecordWeightingRun()

	s.counters.associations.Add(1)
	s.observe(ctx, kindAssociation, len(out), began)
	return out, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	order := make([]string, len(s.statusOrder))
	for i, st := range s.statusOrder {
		order[i] = string(st)
	}
	return map[string]interface{}{
		"startedAt":           s.startedAt.UTC().Format(time.RFC3339),
		"maxItems":            s.maxItems,
		"weightingDimensions": s.dimensions,
		"statusOrder":         order,
		"timelinesDerived":    s.counters.timelines.Load(),
		"competitionsOrdered": s.counters.competitions.Load(),
		"clubsOrdered":        s.counters.clubs.Load(),
		"associationsRanked":  s.counters.associations.Load(),
		"accountsOrdered":     s.counters.accounts.Load(),
		"requestsRejected":    s.counters.rejected.Load(),
	}
}

func (s *Service) reconcile(computed timeline.Timeline, supplied *timeline.Timeline) timeline.Timeline {
	for _, field := range timeline.Fallbacks(computed, supplied) {
		metrics.RecordReconcileFallback(field)
	}
	out := timeline.ReconcilePtr(computed, supplied)
	metrics.RecordTimelineDerived(string(out.Status))
	return out
}

// admit rejects cancelled requests and collections above the configured cap.
func (s *Service) admit(ctx context.Context, kind string, n int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n > s.maxItems {
		err := fmt.Errorf("%w: %d %ss, limit %d", ErrTooManyItems, n, kind, s.maxItems)
		s.reject(ctx, kind, "too_many_items", err)
		return err
	}
	return nil
}

func (s *Service) reject(ctx context.Context, kind, reason string, err error) {
	s.counters.rejected.Add(1)
	metrics.RecordRequestRejected(reason)
	s.logger.Warn(ctx, "collection rejected",
		logger.String("kind", kind),
		logger.String("reason", reason),
		logger.Error(err),
	)
}

func (s *Service) observe(ctx context.Context, kind string, n int, began time.Time) {
	elapsed := time.Since(began)
	metrics.RecordCollectionOrdered(kind, n, float64(elapsed.Microseconds())/1000)
	s.logger.Debug(ctx, "ordered collection",
		logger.String("kind", kind),
		logger.Int("count", n),
		logger.Duration("elapsed", elapsed),
	)
}
