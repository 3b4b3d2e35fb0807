package dashboard

import (
	"strings"

	"impactio/internal/models"
)

// All is the sentinel that disables a categorical filter.
const All = "all"

const noMatchesMessage = "No leads match the current filters."
const noLeadsMessage = "There are no leads yet."

// Criteria selects leads for the table.
type Criteria struct {
	Search string
	Status string
	Source string
}

func CriteriaFrom(f models.FilterCriteria) Criteria {
	return Criteria{Search: f.Search, Status: f.Status, Source: f.Source}.Normalize()
}

func (c Criteria) Model() models.FilterCriteria {
	return models.FilterCriteria{Search: c.Search, Status: c.Status, Source: c.Source}
}

// Normalize maps empty categorical filters to All. The search term is used verbatim.
func (c Criteria) Normalize() Criteria {
	c.Status = strings.TrimSpace(c.Status)
	c.Source = strings.TrimSpace(c.Source)
	if c.Status == "" {
		c.Status = All
	}
	if c.Source == "" {
		c.Source = All
	}
	return c
}

// IsDefault reports whether the criteria select every lead.
func (c Criteria) IsDefault() bool {
	return c.Search == "" && c.Status == All && c.Source == All
}

func (c Criteria) match(l models.Lead, needle string) bool {
	if c.Status != All && string(l.Status) != c.Status {
		return false
	}
	if c.Source != All && string(l.Source) != c.Source {
		return false
	}
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Name), needle) || strings.Contains(strings.ToLower(l.Email), needle) {
		return true
	}
	return l.Company != nil && strings.Contains(strings.ToLower(*l.Company), needle)
}

// Filter returns the leads satisfying every criterion, in input order.
// Empty status or source means All.
func Filter(leads []models.Lead, c Criteria) []models.Lead {
	c = c.Normalize()
	needle := strings.ToLower(c.Search)
	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if c.match(l, needle) {
			out = append(out, l)
		}
	}
	return out
}

// Table filters the snapshot and renders the table view-model.
func Table(leads []models.Lead, c Criteria, df DateFormat) models.LeadTable {
	matched := Filter(leads, c)
	t := models.LeadTable{
		Filters: c.Model(),
		Total:   len(leads),
		Matched: len(matched),
		Rows:    make([]models.LeadRow, 0, len(matched)),
		Options: FilterOptions(),
	}
	for _, l := range matched {
		t.Rows = append(t.Rows, Row(l, df))
	}
	t.EmptyState, t.Message = EmptyState(len(leads), len(matched))
	return t
}

// EmptyState tells "no leads at all" apart from "nothing matches the filters".
func EmptyState(total, matched int) (models.EmptyState, string) {
	switch {
	case total == 0:
		return models.EmptyNoLeads, noLeadsMessage
	case matched == 0:
		return models.EmptyNoMatches, noMatchesMessage
	}
	return models.EmptyNone, ""
}

func Row(l models.Lead, df DateFormat) models.LeadRow {
	return models.LeadRow{
		ID:       l.ID,
		Name:     l.Name,
		Email:    l.Email,
		Phone:    l.PhoneOr(Placeholder),
		Company:  l.CompanyOr(Placeholder),
		Source:   Label(string(l.Source)),
		Status:   statusBadge(l.Status),
		Priority: priorityBadge(l.Priority),
		Date:     df.Format(l.CreatedAt),
	}
}

// FilterOptions lists the select entries for the status and source filters, All first.
func FilterOptions() models.FilterOptions {
	opts := models.FilterOptions{
		Statuses: []models.Option{{Value: All, Label: "All statuses"}},
		Sources:  []models.Option{{Value: All, Label: "All sources"}},
	}
	for _, s := range models.KnownStatuses {
		opts.Statuses = append(opts.Statuses, models.Option{Value: string(s), Label: Label(string(s))})
	}
	for _, s := range models.KnownSources {
		opts.Sources = append(opts.Sources, models.Option{Value: string(s), Label: Label(string(s))})
	}
	return opts
}
