package models_test

import (
	"testing"

	"github.com/fabrikaops/nonconf_backend/models"
)

func TestClassifySource(t *testing.T) {
	cases := []struct {
		text string
		want models.Source
	}{
		{"İş Güvenlik İhlali", models.SourceSafety},
		{"SAFETY incident at line 3", models.SourceSafety},
		{"Müşteri şikayeti", models.SourceCustomerSatisfaction},
		{"customer complaint", models.SourceCustomerSatisfaction},
		{"verimlilik kaybı", models.SourceProductivity},
		{"fire oranı yüksek", models.SourceFireScrap},
		{"scrap rate", models.SourceFireScrap},
		{"ekstra navlun maliyeti", models.SourcePremiumFreight},
		{"premium freight", models.SourcePremiumFreight},
		{"something else entirely", models.SourceProductivity},
		{"", models.SourceProductivity},
	}
	for _, tc := range cases {
		if got := models.ClassifySource(tc.text); got != tc.want {
			t.Errorf("ClassifySource(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifySourceRuleOrder(t *testing.T) {
	// "güvenlik" is checked before "müşteri": a row mentioning both is safety.
	got := models.ClassifySource("müşteri sahasında güvenlik olayı")
	if got != models.SourceSafety {
		t.Fatalf("expected first-listed rule to win, got %q", got)
	}
}

func TestClassifySeverity(t *testing.T) {
	cases := []struct {
		text string
		want models.Severity
	}{
		{"Yüksek", models.SeverityHigh},
		{"kritik durum", models.SeverityHigh},
		{"HIGH", models.SeverityHigh},
		{"düşük öncelik", models.SeverityLow},
		{"low", models.SeverityLow},
		{"az önemli", models.SeverityLow},
		{"orta", models.SeverityMedium},
		{"", models.SeverityMedium},
	}
	for _, tc := range cases {
		if got := models.ClassifySeverity(tc.text); got != tc.want {
			t.Errorf("ClassifySeverity(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}

	// high keywords are checked before low: both present resolves to high.
	if got := models.ClassifySeverity("yüksek değil, düşük"); got != models.SeverityHigh {
		t.Errorf("expected high to win over low, got %q", got)
	}
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		text string
		want models.Status
	}{
		{"Kapalı", models.StatusClosed},
		{"closed", models.StatusClosed},
		{"tamamlandı", models.StatusClosed},
		{"devam ediyor", models.StatusInProgress},
		{"in progress", models.StatusInProgress},
		{"süren çalışma", models.StatusInProgress},
		{"açık", models.StatusOpen},
		{"", models.StatusOpen},
	}
	for _, tc := range cases {
		if got := models.ClassifyStatus(tc.text); got != tc.want {
			t.Errorf("ClassifyStatus(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyMatchesLiterally(t *testing.T) {
	// Matching is plain substring containment over strings.ToLower output,
	// no locale folding: a dotless-capital-I spelling does not match the
	// accented keyword and falls through to the default.
	if got := models.ClassifySource("guvenlik"); got != models.SourceProductivity {
		t.Errorf("unaccented spelling should not match, got %q", got)
	}
}
