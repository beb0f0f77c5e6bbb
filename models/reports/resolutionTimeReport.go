package reports

import (
	"math"

	"github.com/fabrikaops/nonconf_backend/models"
	"github.com/fabrikaops/nonconf_backend/utils"
	"github.com/shopspring/decimal"
)

// GetResolutionByDepartment reports min/average/max resolution days per
// source label (the department axis of the dashboard).
func GetResolutionByDepartment(records []models.NonConformity) []ResolutionStat {
	return resolutionStats(records, func(n *models.NonConformity) string {
		return n.SourceLabel
	})
}

// GetResolutionByTeamLeader reports min/average/max resolution days per team
// leader. Records without a leader are not grouped under a placeholder; they
// simply don't contribute.
func GetResolutionByTeamLeader(records []models.NonConformity) []ResolutionStat {
	return resolutionStats(records, func(n *models.NonConformity) string {
		return utils.DereferencePtr(n.TeamLeader)
	})
}

// resolutionStats groups closed records with a parseable closing date by the
// given key and reports per-group min, rounded average and max of
// ceil(closedDate - createdAt) in days. Groups with no contributing records
// are omitted entirely; there is never a group with undefined statistics.
// Group order is first-seen over the snapshot, so output is deterministic
// for a given input order.
func resolutionStats(records []models.NonConformity, keyOf func(*models.NonConformity) string) []ResolutionStat {
	type group struct {
		days []int64
	}
	groups := make(map[string]*group)
	var order []string

	for i := range records {
		record := &records[i]
		if record.Status != models.StatusClosed {
			continue
		}
		closed, ok := record.ParsedClosedDate()
		if !ok {
			continue
		}
		key := keyOf(record)
		if key == "" {
			continue
		}
		days := int64(math.Ceil(closed.Sub(record.CreatedAt).Hours() / 24))
		if groups[key] == nil {
			groups[key] = &group{}
			order = append(order, key)
		}
		groups[key].days = append(groups[key].days, days)
	}

	stats := make([]ResolutionStat, 0, len(order))
	for _, key := range order {
		g := groups[key]
		min, max, sum := g.days[0], g.days[0], int64(0)
		for _, d := range g.days {
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
			sum += d
		}
		average := decimal.NewFromInt(sum).
			Div(decimal.NewFromInt(int64(len(g.days)))).
			Round(0).IntPart()
		stats = append(stats, ResolutionStat{
			Group:   key,
			Min:     int(min),
			Average: int(average),
			Max:     int(max),
		})
	}
	return stats
}
