package catalog

// MealSlot identifies one of the four daily meal sections.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Snack     MealSlot = "snack"
	Dinner    MealSlot = "dinner"
)

// Slots lists the meal slots in display order.
var Slots = []MealSlot{Breakfast, Lunch, Snack, Dinner}

// slotsByCategory maps a product category to the meal slots it may occupy.
// A category missing from this table yields an empty slot set, which makes
// the product unselectable by the model.
var slotsByCategory = map[string][]MealSlot{
	"cereal":    {Breakfast, Lunch, Snack, Dinner},
	"dairy":     {Breakfast, Snack},
	"egg":       {Breakfast, Dinner},
	"fruit":     {Breakfast, Snack},
	"meat":      {Lunch, Dinner},
	"fish":      {Lunch, Dinner},
	"legume":    {Lunch, Dinner},
	"vegetable": {Lunch, Dinner},
	"canned":    {Lunch, Dinner},
	"treat":     {Snack},
}

// multiPackCategories are staples that may be bought in up to two packs
// per week. Everything else is capped at a single pack.
var multiPackCategories = map[string]bool{
	"cereal":    true,
	"legume":    true,
	"canned":    true,
	"vegetable": true,
}

// Row is a raw catalog record as provided by the catalog collaborator:
// a positively priced pack with per-100g nutrition values. The JSON
// names match the import file format.
type Row struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	WeightGrams float64 `json:"weight_grams"`
	Category    string  `json:"category"`
	Icon        string  `json:"icon"`
	Protein100g float64 `json:"protein_100g"`
	Carbs100g   float64 `json:"carbs_100g"`
	Fat100g     float64 `json:"fat_100g"`
	Kcal100g    float64 `json:"kcal_100g"`
}

// Product is a normalized catalog entry ready for model building.
// Nutrition fields are scaled to the full pack and SlotID is dense
// (0..N-1) within a single optimization run.
type Product struct {
	SlotID   int
	Name     string
	Price    float64
	Category string
	Icon     string

	PackProtein float64
	PackCarbs   float64
	PackFat     float64
	PackKcal    float64

	Slots    []MealSlot
	MaxPacks int
}

// EligibleFor reports whether the product may occupy the given meal slot.
func (p Product) EligibleFor(slot MealSlot) bool {
	for _, s := range p.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
