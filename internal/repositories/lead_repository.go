package repositories

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"impactio/internal/models"
)

type LeadRepository interface {
	ListLeads(ctx context.Context) ([]models.Lead, error)
}

type leadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) LeadRepository {
	if db == nil {
		zap.L().Fatal("received nil database connection")
	}
	return &leadRepository{db: db}
}

// ListLeads returns every lead, newest first.
func (r *leadRepository) ListLeads(ctx context.Context) ([]models.Lead, error) {
	const query = `
		SELECT id, name, email, phone, company, source, status, priority, created_at
		FROM leads
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, eris.Wrap(err, "leads: query")
	}
	defer rows.Close()

	out := []models.Lead{}
	for rows.Next() {
		var (
			l                        models.Lead
			phone, company           sql.NullString
			source, status, priority sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &phone, &company, &source, &status, &priority, &l.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "leads: scan")
		}
		l.Phone = nullableString(phone)
		l.Company = nullableString(company)
		l.Source = models.Source(source.String)
		l.Status = models.Status(status.String)
		l.Priority = models.Priority(priority.String)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "leads: rows")
	}
	return out, nil
}

// nullableString maps NULL and blank values to nil.
func nullableString(ns sql.NullString) *string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	s := ns.String
	return &s
}
