package reports

import (
	"github.com/fabrikaops/nonconf_backend/models"
)

// GetStatusDistribution counts open vs closed records over the full set.
// In-progress records land in neither bucket; the dashboard has always shown
// only the two endpoints of the lifecycle, and changing that needs a product
// decision, not a code one.
func GetStatusDistribution(records []models.NonConformity) []LabelValue {
	open, closed := 0, 0
	for i := range records {
		switch records[i].Status {
		case models.StatusOpen:
			open++
		case models.StatusClosed:
			closed++
		}
	}
	return []LabelValue{
		{Label: string(models.StatusOpen), Value: open},
		{Label: string(models.StatusClosed), Value: closed},
	}
}
