package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/fabrikaops/nonconf_backend/models"
	"github.com/fabrikaops/nonconf_backend/utils"
)

const maxWeeklyBuckets = 8

// GetWeeklyDistribution tallies records per Sunday-aligned week of their
// creation time, labeled day/month, keeping only the most recent 8 weeks in
// chronological order. Week starts are always derived as fresh values;
// a record's own timestamp is never shifted in place.
func GetWeeklyDistribution(records []models.NonConformity) []LabelValue {
	type week struct {
		start time.Time
		count int
	}
	counts := make(map[string]*week)
	for i := range records {
		start := utils.WeekStart(records[i].CreatedAt)
		key := start.Format("2006-01-02")
		if counts[key] == nil {
			counts[key] = &week{start: start}
		}
		counts[key].count++
	}

	weeks := make([]*week, 0, len(counts))
	for _, w := range counts {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].start.Before(weeks[j].start) })
	if len(weeks) > maxWeeklyBuckets {
		weeks = weeks[len(weeks)-maxWeeklyBuckets:]
	}

	out := make([]LabelValue, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, LabelValue{
			Label: fmt.Sprintf("%d/%d", w.start.Day(), int(w.start.Month())),
			Value: w.count,
		})
	}
	return out
}
