package reports_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/fabrikaops/nonconf_backend/models"
	"github.com/fabrikaops/nonconf_backend/models/reports"
)

func TestWeeklyDistributionGroupsBySundayWeek(t *testing.T) {
	// 2024-09-01 is a Sunday; the 2nd and 4th fall in the same week,
	// the 8th starts the next one.
	snapshot := []models.NonConformity{
		record("a", models.StatusOpen, date(2024, time.September, 1)),
		record("b", models.StatusOpen, date(2024, time.September, 2)),
		record("c", models.StatusOpen, date(2024, time.September, 4)),
		record("d", models.StatusOpen, date(2024, time.September, 8)),
	}

	got := reports.GetWeeklyDistribution(snapshot)
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	if got[0].Label != "1/9" || got[0].Value != 3 {
		t.Errorf("first week = %+v", got[0])
	}
	if got[1].Label != "8/9" || got[1].Value != 1 {
		t.Errorf("second week = %+v", got[1])
	}
}

func TestWeeklyDistributionKeepsLastEightWeeks(t *testing.T) {
	start := date(2024, time.January, 7) // a Sunday
	var snapshot []models.NonConformity
	for week := 0; week < 12; week++ {
		snapshot = append(snapshot, record(
			fmt.Sprintf("w%d", week), models.StatusOpen, start.AddDate(0, 0, week*7),
		))
	}

	got := reports.GetWeeklyDistribution(snapshot)
	if len(got) != 8 {
		t.Fatalf("at most 8 buckets, got %d", len(got))
	}
	// Chronological: the oldest four weeks fell off the front.
	if got[0].Label != "4/2" {
		t.Errorf("first kept bucket = %+v", got[0])
	}
	if got[len(got)-1].Label != "24/3" {
		t.Errorf("last bucket = %+v", got[len(got)-1])
	}
}

func TestWeeklyDistributionDoesNotMutateRecords(t *testing.T) {
	created := date(2024, time.September, 4)
	rec := record("a", models.StatusOpen, created)
	snapshot := []models.NonConformity{rec}

	reports.GetWeeklyDistribution(snapshot)

	if !snapshot[0].CreatedAt.Equal(created) {
		t.Fatal("week bucketing must not shift a record's timestamp")
	}
}
