package dashboard

import (
	"fmt"
	"time"

	"impactio/internal/models"
)

func strPtr(s string) *string { return &s }

func lead(id string, status models.Status, source models.Source) models.Lead {
	return models.Lead{
		ID:        id,
		Name:      "Lead " + id,
		Email:     fmt.Sprintf("lead%s@example.com", id),
		Source:    source,
		Status:    status,
		Priority:  models.PriorityMedium,
		CreatedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
}

func withStatuses(statuses ...models.Status) []models.Lead {
	out := make([]models.Lead, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, lead(fmt.Sprint(i+1), s, models.SourceWebsite))
	}
	return out
}
