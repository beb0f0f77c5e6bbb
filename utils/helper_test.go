package utils_test

import (
	"testing"
	"time"

	"github.com/fabrikaops/nonconf_backend/utils"
)

func TestParseFlexibleDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-09-25", "2024-09-25"},
		{"25.09.2024", "2024-09-25"},
		{"25/09/2024", "2024-09-25"},
		{"09-25-24", "2024-09-25"},
		{"2024/09/25", "2024-09-25"},
	}
	for _, tc := range cases {
		got, ok := utils.ParseFlexibleDate(tc.in)
		if !ok {
			t.Errorf("ParseFlexibleDate(%q) failed", tc.in)
			continue
		}
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("ParseFlexibleDate(%q) = %v, want %s", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "bozuk tarih", "99/99/9999"} {
		if _, ok := utils.ParseFlexibleDate(in); ok {
			t.Errorf("ParseFlexibleDate(%q) should fail", in)
		}
	}
}

func TestWeekStart(t *testing.T) {
	// 2024-09-04 is a Wednesday; its week starts Sunday 2024-09-01.
	wednesday := time.Date(2024, time.September, 4, 15, 30, 0, 0, time.UTC)
	got := utils.WeekStart(wednesday)
	if got.Format("2006-01-02") != "2024-09-01" {
		t.Errorf("WeekStart = %v", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("week start must be midnight, got %v", got)
	}

	// A Sunday is its own week start.
	sunday := time.Date(2024, time.September, 1, 9, 0, 0, 0, time.UTC)
	if utils.WeekStart(sunday).Format("2006-01-02") != "2024-09-01" {
		t.Errorf("sunday week start = %v", utils.WeekStart(sunday))
	}

	// The input value is not mutated.
	if wednesday.Day() != 4 {
		t.Fatal("input mutated")
	}
}

func TestNilIfEmpty(t *testing.T) {
	if utils.NilIfEmpty("") != nil {
		t.Error("empty string should map to nil")
	}
	if v := utils.NilIfEmpty("x"); v == nil || *v != "x" {
		t.Errorf("got %v", v)
	}
}
