package reports

import (
	"time"

	"github.com/fabrikaops/nonconf_backend/models"
	"github.com/fabrikaops/nonconf_backend/utils"
)

// GetOpenTaskTimeliness splits open records into Ongoing vs Overdue by
// comparing their target date against now. A record without a (parseable)
// target date cannot be overdue and counts as Ongoing by convention.
func GetOpenTaskTimeliness(records []models.NonConformity, now time.Time) []LabelValue {
	today := utils.TruncateToDay(now)
	ongoing, overdue := 0, 0
	for i := range records {
		if records[i].Status != models.StatusOpen {
			continue
		}
		target, ok := records[i].ParsedTargetDate()
		if ok && utils.TruncateToDay(target).Before(today) {
			overdue++
		} else {
			ongoing++
		}
	}
	return []LabelValue{
		{Label: string(models.TimelinessOngoing), Value: ongoing},
		{Label: string(models.TimelinessOverdue), Value: overdue},
	}
}

// GetClosedTaskTimeliness splits closed records that carry both a target
// date and a closing date into on-time vs late.
func GetClosedTaskTimeliness(records []models.NonConformity) []LabelValue {
	onTime, late := 0, 0
	for i := range records {
		if records[i].Status != models.StatusClosed {
			continue
		}
		target, ok := records[i].ParsedTargetDate()
		if !ok {
			continue
		}
		closed, ok := records[i].ParsedClosedDate()
		if !ok {
			continue
		}
		if !utils.TruncateToDay(closed).After(utils.TruncateToDay(target)) {
			onTime++
		} else {
			late++
		}
	}
	return []LabelValue{
		{Label: "on-time", Value: onTime},
		{Label: "late", Value: late},
	}
}
