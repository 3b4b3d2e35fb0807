package dashboard

import (
	"sort"

	"impactio/internal/models"
)

// Palette is cycled over pie slices.
var Palette = []string{"#3B82F6", "#7C3AED", "#10B981", "#F59E0B", "#EF4444"}

// GroupBySource counts leads per raw source value.
func GroupBySource(leads []models.Lead) map[string]int {
	return groupBy(leads, func(l models.Lead) string { return string(l.Source) })
}

// GroupByStatus counts leads per raw status value.
func GroupByStatus(leads []models.Lead) map[string]int {
	return groupBy(leads, func(l models.Lead) string { return string(l.Status) })
}

func groupBy(leads []models.Lead, key func(models.Lead) string) map[string]int {
	out := make(map[string]int)
	for _, l := range leads {
		out[key(l)]++
	}
	return out
}

type bucket struct {
	key   string
	count int
}

// sortedBuckets orders by count desc, then key asc.
func sortedBuckets(groups map[string]int) []bucket {
	out := make([]bucket, 0, len(groups))
	for k, v := range groups {
		out = append(out, bucket{key: k, count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

// BuildCharts produces the source bar series and the status pie series.
func BuildCharts(leads []models.Lead) models.Charts {
	charts := models.Charts{
		BySource: []models.BarPoint{},
		ByStatus: []models.PieSlice{},
	}
	for _, b := range sortedBuckets(GroupBySource(leads)) {
		charts.BySource = append(charts.BySource, models.BarPoint{
			Key:   b.key,
			Label: Label(b.key),
			Count: b.count,
		})
	}
	for i, b := range sortedBuckets(GroupByStatus(leads)) {
		charts.ByStatus = append(charts.ByStatus, models.PieSlice{
			Key:     b.key,
			Label:   Label(b.key),
			Value:   b.count,
			Percent: percent(b.count, len(leads)),
			Color:   Palette[i%len(Palette)],
		})
	}
	return charts
}
