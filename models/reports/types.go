// Package reports derives dashboard views from a snapshot of the record
// collection. Every reducer is pure: it takes the snapshot (and "now" where
// date comparisons occur), recomputes from scratch, and returns an empty or
// zero-valued aggregate for an empty snapshot instead of an error.
package reports

type LabelValue struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type CategorySlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type ResolutionStat struct {
	Group   string `json:"group"`
	Min     int    `json:"min"`
	Average int    `json:"average"`
	Max     int    `json:"max"`
}
