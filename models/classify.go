package models

import "strings"

// Classification is ordered substring matching over lower-cased text:
// the first rule whose keyword is contained in the input wins, and every
// classifier has a terminal default. Matching is plain containment, not
// locale-aware normalization, so accented keywords only match literally.
type classifyRule[T ~string] struct {
	keywords []string
	result   T
}

var sourceRules = []classifyRule[Source]{
	{keywords: []string{"güvenlik", "safety"}, result: SourceSafety},
	{keywords: []string{"müşteri", "customer"}, result: SourceCustomerSatisfaction},
	{keywords: []string{"verim", "productivity"}, result: SourceProductivity},
	{keywords: []string{"fire", "scrap"}, result: SourceFireScrap},
	{keywords: []string{"navlun", "freight"}, result: SourcePremiumFreight},
}

var severityRules = []classifyRule[Severity]{
	{keywords: []string{"yüksek", "high", "kritik"}, result: SeverityHigh},
	{keywords: []string{"düşük", "low", "az"}, result: SeverityLow},
}

var statusRules = []classifyRule[Status]{
	{keywords: []string{"kapalı", "closed", "tamamlan"}, result: StatusClosed},
	{keywords: []string{"devam", "progress", "süren"}, result: StatusInProgress},
}

func classifyByRules[T ~string](text string, rules []classifyRule[T], fallback T) T {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.result
			}
		}
	}
	return fallback
}

// ClassifySource maps free text to a Source. Unrecognized or empty text
// falls back to productivity.
func ClassifySource(text string) Source {
	return classifyByRules(text, sourceRules, SourceProductivity)
}

// ClassifySeverity maps free text to a Severity, defaulting to medium.
func ClassifySeverity(text string) Severity {
	return classifyByRules(text, severityRules, SeverityMedium)
}

// ClassifyStatus maps free text to a Status, defaulting to open.
func ClassifyStatus(text string) Status {
	return classifyByRules(text, statusRules, StatusOpen)
}
