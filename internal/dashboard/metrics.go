// Package dashboard turns lead and conversation snapshots into metrics, chart
// series and the filtered lead table. Everything here is a pure function of its input.
package dashboard

import (
	"fmt"
	"math"

	"impactio/internal/models"
)

// ComputeMetrics reduces a lead snapshot and the conversation count to the dashboard figures.
func ComputeMetrics(leads []models.Lead, conversations int) models.Metrics {
	m := models.Metrics{
		TotalLeads:         len(leads),
		TotalConversations: conversations,
	}
	converted := 0
	for _, l := range leads {
		if l.Status == models.StatusNew {
			m.NewLeads++
		}
		if l.Status.Converted() {
			converted++
		}
	}
	m.ConversionRate = percent(converted, len(leads))
	return m
}

// ConversionRate is the rounded share of qualified or proposal leads, 0 for no leads.
func ConversionRate(leads []models.Lead) int {
	return ComputeMetrics(leads, 0).ConversionRate
}

// percent returns round(100*part/whole), or 0 when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// Cards renders the metrics as the four dashboard tiles.
func Cards(m models.Metrics) []models.MetricCard {
	return []models.MetricCard{
		{Key: "total_leads", Title: "Total Leads", Value: fmt.Sprint(m.TotalLeads)},
		{Key: "new_leads", Title: "New Leads", Value: fmt.Sprint(m.NewLeads)},
		{Key: "total_conversations", Title: "Conversations", Value: fmt.Sprint(m.TotalConversations)},
		{Key: "conversion_rate", Title: "Conversion Rate", Value: fmt.Sprintf("%d%%", m.ConversionRate)},
	}
}
