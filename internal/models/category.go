package models

// Spending categories shared by transactions, budget category limits,
// and reminders
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryAcademic      = "academic"
	CategoryEntertainment = "entertainment"
	CategoryShopping      = "shopping"
	CategoryUtilities     = "utilities"
	CategoryHealth        = "health"
	CategoryHousing       = "housing"
	CategoryOther         = "other"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryAcademic,
		CategoryEntertainment,
		CategoryShopping,
		CategoryUtilities,
		CategoryHealth,
		CategoryHousing,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// CategoryLabels maps category constants to their display labels
var CategoryLabels = map[string]string{
	CategoryFood:          "Food & Dining",
	CategoryTransport:     "Transport",
	CategoryAcademic:      "Academic",
	CategoryEntertainment: "Entertainment",
	CategoryShopping:      "Shopping",
	CategoryUtilities:     "Utilities",
	CategoryHealth:        "Health",
	CategoryHousing:       "Housing",
	CategoryOther:         "Other",
}
