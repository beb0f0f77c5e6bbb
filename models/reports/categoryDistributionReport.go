package reports

import (
	"github.com/fabrikaops/nonconf_backend/models"
	"github.com/fabrikaops/nonconf_backend/utils"
)

// UnspecifiedCategory is the bucket for records without a category.
const UnspecifiedCategory = "Unspecified"

// categoryPalette is cycled through in first-seen order. The UI draws the
// slices; the core only pins a stable color per category.
var categoryPalette = []string{
	"#4e79a7",
	"#f28e2b",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc948",
	"#b07aa1",
	"#9c755f",
}

// GetCategoryDistribution groups records by category in first-seen insertion
// order. The category→color assignment is recomputed from scratch on every
// call, so the same input order always produces the same colors.
func GetCategoryDistribution(records []models.NonConformity) []CategorySlice {
	counts := make(map[string]int)
	var order []string
	for i := range records {
		label := utils.DereferencePtr(records[i].Category, UnspecifiedCategory)
		if label == "" {
			label = UnspecifiedCategory
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	slices := make([]CategorySlice, 0, len(order))
	for i, label := range order {
		slices = append(slices, CategorySlice{
			Label: label,
			Value: counts[label],
			Color: categoryPalette[i%len(categoryPalette)],
		})
	}
	return slices
}
