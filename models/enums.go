package models

type Source string

const (
	SourceSafety               Source = "safety"
	SourceCustomerSatisfaction Source = "customer-satisfaction"
	SourceProductivity         Source = "productivity"
	SourceFireScrap            Source = "fire-scrap"
	SourcePremiumFreight       Source = "premium-freight"
)

// sourceLabels is the canonical label table. SourceLabel on a record is
// always derived from here, never edited independently.
var sourceLabels = map[Source]string{
	SourceSafety:               "İş Güvenliği",
	SourceCustomerSatisfaction: "Müşteri Memnuniyeti",
	SourceProductivity:         "Verimlilik",
	SourceFireScrap:            "Fire / Hurda",
	SourcePremiumFreight:       "Ekstra Navlun",
}

func (s Source) Label() string {
	return sourceLabels[s]
}

func (s Source) Valid() bool {
	_, ok := sourceLabels[s]
	return ok
}

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusClosed     Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}
