package services

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"impactio/internal/dashboard"
	"impactio/internal/models"
	"impactio/internal/monitoring"
	"impactio/internal/repositories"
)

var ErrNoSession = eris.New("no valid session")

// Snapshot is one read of the record source. Failed reads are already replaced by empty slices.
type Snapshot struct {
	Leads         []models.Lead
	Conversations []models.Conversation
	FetchedAt     time.Time
}

type DashboardService struct {
	leads        repositories.LeadRepository
	convs        repositories.ConversationRepository
	filters      FilterStore
	dates        dashboard.DateFormat
	queryTimeout time.Duration
}

func NewDashboardService(
	leads repositories.LeadRepository,
	convs repositories.ConversationRepository,
	filters FilterStore,
	dates dashboard.DateFormat,
	queryTimeout time.Duration,
) *DashboardService {
	return &DashboardService{
		leads:        leads,
		convs:        convs,
		filters:      filters,
		dates:        dates,
		queryTimeout: queryTimeout,
	}
}

func (s *DashboardService) DateFormat() dashboard.DateFormat { return s.dates }

// Snapshot fetches leads and conversations for the session.
// A failed read is logged and counted, and the collection is treated as empty.
func (s *DashboardService) Snapshot(ctx context.Context, sess *models.Session) (*Snapshot, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}
	log := zap.L().With(zap.Int("user_id", sess.UserID))

	snap := &Snapshot{FetchedAt: time.Now()}
	leads, err := s.leads.ListLeads(ctx)
	if err != nil {
		log.Error("fetch leads failed", zap.String("entity", "leads"), zap.Error(err))
		monitoring.RecordFetchFailure("leads")
		leads = nil
	}
	snap.Leads = nonNilLeads(leads)

	convs, err := s.convs.ListConversations(ctx)
	if err != nil {
		log.Error("fetch conversations failed", zap.String("entity", "conversations"), zap.Error(err))
		monitoring.RecordFetchFailure("conversations")
		convs = nil
	}
	if convs == nil {
		convs = []models.Conversation{}
	}
	snap.Conversations = convs
	return snap, nil
}

func nonNilLeads(leads []models.Lead) []models.Lead {
	if leads == nil {
		return []models.Lead{}
	}
	return leads
}

// ResolveCriteria returns the criteria to apply: the override when given (and remembered),
// otherwise the stored selections, otherwise the all-sentinels.
func (s *DashboardService) ResolveCriteria(ctx context.Context, sess *models.Session, override *models.FilterCriteria) (dashboard.Criteria, error) {
	if !sess.Valid() {
		return dashboard.Criteria{}, ErrNoSession
	}
	if override != nil {
		c := dashboard.CriteriaFrom(*override)
		if err := s.filters.Save(ctx, sess.UserID, c.Model()); err != nil {
			// фильтр всё равно применяем
			zap.L().Warn("save filter selections failed", zap.Int("user_id", sess.UserID), zap.Error(err))
		}
		return c, nil
	}
	stored, ok, err := s.filters.Load(ctx, sess.UserID)
	if err != nil {
		zap.L().Warn("load filter selections failed", zap.Int("user_id", sess.UserID), zap.Error(err))
	}
	if !ok || err != nil {
		return dashboard.Criteria{}.Normalize(), nil
	}
	return dashboard.CriteriaFrom(stored), nil
}

func (s *DashboardService) SaveFilters(ctx context.Context, sess *models.Session, f models.FilterCriteria) (models.FilterCriteria, error) {
	if !sess.Valid() {
		return models.FilterCriteria{}, ErrNoSession
	}
	c := dashboard.CriteriaFrom(f).Model()
	if err := s.filters.Save(ctx, sess.UserID, c); err != nil {
		return models.FilterCriteria{}, err
	}
	return c, nil
}

func (s *DashboardService) ResetFilters(ctx context.Context, sess *models.Session) error {
	if !sess.Valid() {
		return ErrNoSession
	}
	return s.filters.Reset(ctx, sess.UserID)
}

// Overview builds the whole dashboard view for the session.
func (s *DashboardService) Overview(ctx context.Context, sess *models.Session, c dashboard.Criteria) (*models.DashboardView, error) {
	snap, err := s.Snapshot(ctx, sess)
	if err != nil {
		return nil, err
	}
	m := dashboard.ComputeMetrics(snap.Leads, len(snap.Conversations))
	return &models.DashboardView{
		User:    *sess,
		Metrics: m,
		Cards:   dashboard.Cards(m),
		Charts:  dashboard.BuildCharts(snap.Leads),
		Table:   dashboard.Table(snap.Leads, c, s.dates),
	}, nil
}

func (s *DashboardService) Metrics(ctx context.Context, sess *models.Session) (models.Metrics, error) {
	snap, err := s.Snapshot(ctx, sess)
	if err != nil {
		return models.Metrics{}, err
	}
	return dashboard.ComputeMetrics(snap.Leads, len(snap.Conversations)), nil
}

func (s *DashboardService) Charts(ctx context.Context, sess *models.Session) (models.Charts, error) {
	snap, err := s.Snapshot(ctx, sess)
	if err != nil {
		return models.Charts{}, err
	}
	return dashboard.BuildCharts(snap.Leads), nil
}

func (s *DashboardService) Table(ctx context.Context, sess *models.Session, c dashboard.Criteria) (models.LeadTable, error) {
	snap, err := s.Snapshot(ctx, sess)
	if err != nil {
		return models.LeadTable{}, err
	}
	return dashboard.Table(snap.Leads, c, s.dates), nil
}
