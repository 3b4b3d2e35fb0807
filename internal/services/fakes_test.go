package services

import (
	"context"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"impactio/internal/models"
	"impactio/internal/repositories"
)

type fakeLeads struct {
	leads []models.Lead
	err   error
	calls int
}

func (f *fakeLeads) ListLeads(context.Context) ([]models.Lead, error) {
	f.calls++
	return f.leads, f.err
}

type fakeConvs struct {
	convs []models.Conversation
	err   error
}

func (f *fakeConvs) ListConversations(context.Context) ([]models.Conversation, error) {
	return f.convs, f.err
}

type fakeUsers struct {
	byEmail map[string]*models.User
	err     error
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

type failingStore struct{ err error }

func (s failingStore) Load(context.Context, int) (models.FilterCriteria, bool, error) {
	return models.FilterCriteria{}, false, s.err
}
func (s failingStore) Save(context.Context, int, models.FilterCriteria) error { return s.err }
func (s failingStore) Reset(context.Context, int) error                       { return s.err }

func strPtr(s string) *string { return &s }

var session = &models.Session{UserID: 7, Email: "owner@impactio.one", Name: "Owner"}

func sampleLeads() []models.Lead {
	at := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	return []models.Lead{
		{ID: "1", Name: "Ana Ruiz", Email: "ana@acme.io", Company: strPtr("Acme"), Source: models.SourceWebsite, Status: models.StatusNew, Priority: models.PriorityHigh, CreatedAt: at},
		{ID: "2", Name: "Bo Chen", Email: "bo@globex.com", Phone: strPtr("+1 555"), Source: models.SourceLinkedIn, Status: models.StatusQualified, Priority: models.PriorityLow, CreatedAt: at},
		{ID: "3", Name: "Cy Park", Email: "cy@initech.com", Company: strPtr("Initech, Inc"), Source: models.SourceWebsite, Status: models.StatusProposal, Priority: models.PriorityMedium, CreatedAt: at},
		{ID: "4", Name: "Di Lowe", Email: "di@hooli.com", Source: models.SourceReferral, Status: models.StatusClosed, Priority: models.PriorityMedium, CreatedAt: at},
	}
}
