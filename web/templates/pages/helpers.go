package pages

import (
	"apple-storefront/internal/models"
)

// conditionFilters drives the catalog filter bar.
var conditionFilters = []struct {
	Value models.ProductCondition
	Label string
}{
	{"", "Все"},
	{models.ConditionNew, "Новые"},
	{models.ConditionUsed, "Б/У"},
}

// stockLabel returns the availability badge text for a product, or an
// empty string when no badge is needed.
func stockLabel(p models.Product) (label, class string) {
	switch {
	case !p.IsAvailable():
		return "Нет в наличии", "stock-badge stock-out"
	case p.IsLowStock():
		return "Осталось мало", "stock-badge stock-low"
	default:
		return "", ""
	}
}
