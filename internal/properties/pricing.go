package property

// PriceCategory buckets monthly rent into the three tiers shown on listing cards.
type PriceCategory string

const (
	PriceCategoryBudget   PriceCategory = "budget"
	PriceCategoryMidRange PriceCategory = "mid-range"
	PriceCategoryPremium  PriceCategory = "premium"
)

const (
	budgetCeiling   = 7000
	midRangeCeiling = 12000
)

// CategorizePrice maps a monthly KSh rent to its category.
func CategorizePrice(price int) PriceCategory {
	switch {
	case price < budgetCeiling:
		return PriceCategoryBudget
	case price <= midRangeCeiling:
		return PriceCategoryMidRange
	default:
		return PriceCategoryPremium
	}
}

// Label returns the display name for the category.
func (c PriceCategory) Label() string {
	switch c {
	case PriceCategoryBudget:
		return "Budget-Friendly"
	case PriceCategoryMidRange:
		return "Mid-Range"
	case PriceCategoryPremium:
		return "Premium"
	default:
		return string(c)
	}
}
