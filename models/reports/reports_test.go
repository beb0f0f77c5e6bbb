package reports_test

import (
	"testing"
	"time"

	"github.com/fabrikaops/nonconf_backend/models"
	"github.com/fabrikaops/nonconf_backend/models/reports"
	"github.com/fabrikaops/nonconf_backend/utils"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(description string, status models.Status, createdAt time.Time) models.NonConformity {
	rec := models.NewNonConformity(description, "", "", "", 1, createdAt)
	rec.Status = status
	return rec
}

func find(t *testing.T, values []reports.LabelValue, label string) int {
	t.Helper()
	for _, lv := range values {
		if lv.Label == label {
			return lv.Value
		}
	}
	t.Fatalf("label %q not found in %v", label, values)
	return 0
}

func TestStatusDistribution(t *testing.T) {
	now := date(2024, time.September, 2)
	snapshot := []models.NonConformity{
		record("a", models.StatusOpen, now),
		record("b", models.StatusOpen, now),
		record("c", models.StatusOpen, now),
		record("d", models.StatusClosed, now),
		record("e", models.StatusClosed, now),
	}

	got := reports.GetStatusDistribution(snapshot)
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	if got[0].Label != "open" || got[0].Value != 3 {
		t.Errorf("open bucket = %+v", got[0])
	}
	if got[1].Label != "closed" || got[1].Value != 2 {
		t.Errorf("closed bucket = %+v", got[1])
	}
}

func TestStatusDistributionSkipsInProgress(t *testing.T) {
	now := date(2024, time.September, 2)
	snapshot := []models.NonConformity{
		record("a", models.StatusInProgress, now),
	}
	got := reports.GetStatusDistribution(snapshot)
	if find(t, got, "open") != 0 || find(t, got, "closed") != 0 {
		t.Fatalf("in-progress records belong to neither bucket, got %v", got)
	}
}

func TestOpenTaskTimeliness(t *testing.T) {
	now := date(2024, time.September, 2)

	overdue := record("overdue", models.StatusOpen, now)
	overdue.TargetDate = utils.NewPtr("2024-08-01")

	ongoing := record("ongoing", models.StatusOpen, now)
	ongoing.TargetDate = utils.NewPtr("2024-10-01")

	noTarget := record("no target", models.StatusOpen, now)

	closedLate := record("closed, not open", models.StatusClosed, now)
	closedLate.TargetDate = utils.NewPtr("2024-08-01")

	got := reports.GetOpenTaskTimeliness([]models.NonConformity{overdue, ongoing, noTarget, closedLate}, now)
	if find(t, got, "Ongoing") != 2 {
		t.Errorf("records without a target date count as ongoing, got %v", got)
	}
	if find(t, got, "Overdue") != 1 {
		t.Errorf("overdue = %v", got)
	}
}

func TestClosedTaskTimeliness(t *testing.T) {
	now := date(2024, time.September, 2)

	onTime := record("on time", models.StatusClosed, now)
	onTime.TargetDate = utils.NewPtr("2024-09-25")
	onTime.ClosedDate = utils.NewPtr("2024-09-25")

	late := record("late", models.StatusClosed, now)
	late.TargetDate = utils.NewPtr("2024-09-25")
	late.ClosedDate = utils.NewPtr("2024-09-30")

	missingDates := record("no dates", models.StatusClosed, now)

	got := reports.GetClosedTaskTimeliness([]models.NonConformity{onTime, late, missingDates})
	if find(t, got, "on-time") != 1 || find(t, got, "late") != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestCategoryDistribution(t *testing.T) {
	now := date(2024, time.September, 2)

	a := record("a", models.StatusOpen, now)
	a.Category = utils.NewPtr("Kaynak")
	b := record("b", models.StatusOpen, now)
	b.Category = utils.NewPtr("Montaj")
	c := record("c", models.StatusOpen, now)
	c.Category = utils.NewPtr("Kaynak")
	d := record("d", models.StatusOpen, now)

	got := reports.GetCategoryDistribution([]models.NonConformity{a, b, c, d})
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	if got[0].Label != "Kaynak" || got[0].Value != 2 {
		t.Errorf("first-seen order broken: %+v", got[0])
	}
	if got[1].Label != "Montaj" || got[1].Value != 1 {
		t.Errorf("slice = %+v", got[1])
	}
	if got[2].Label != reports.UnspecifiedCategory || got[2].Value != 1 {
		t.Errorf("missing category bucket = %+v", got[2])
	}

	// Colors are recomputed per call: same input, same assignment.
	again := reports.GetCategoryDistribution([]models.NonConformity{a, b, c, d})
	for i := range got {
		if got[i].Color == "" {
			t.Fatalf("slice %d has no color", i)
		}
		if got[i].Color != again[i].Color {
			t.Fatalf("color assignment must be deterministic")
		}
	}
}

func TestReportsOnEmptySnapshot(t *testing.T) {
	var empty []models.NonConformity
	now := date(2024, time.September, 2)

	if got := reports.GetStatusDistribution(empty); find(t, got, "open") != 0 || find(t, got, "closed") != 0 {
		t.Errorf("status distribution = %v", got)
	}
	if got := reports.GetOpenTaskTimeliness(empty, now); find(t, got, "Ongoing") != 0 || find(t, got, "Overdue") != 0 {
		t.Errorf("open timeliness = %v", got)
	}
	if got := reports.GetClosedTaskTimeliness(empty); find(t, got, "on-time") != 0 || find(t, got, "late") != 0 {
		t.Errorf("closed timeliness = %v", got)
	}
	if got := reports.GetCategoryDistribution(empty); len(got) != 0 {
		t.Errorf("category distribution = %v", got)
	}
	if got := reports.GetWeeklyDistribution(empty); len(got) != 0 {
		t.Errorf("weekly distribution = %v", got)
	}
	if got := reports.GetResolutionByDepartment(empty); len(got) != 0 {
		t.Errorf("resolution stats = %v", got)
	}
}
