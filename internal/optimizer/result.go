package optimizer

import (
	"fmt"
	"log"
	"math"
	"sort"

	"grocery-optimizer/internal/catalog"
)

// Item is one basket line as shown to the user. Multi-pack picks carry a
// "×N" suffix in the name and the price covers all packs.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Icon     string  `json:"icon"`
}

// Macros are daily averages: weekly totals divided by seven.
type Macros struct {
	Protein float64 `json:"protein"`
	Kcal    float64 `json:"kcal"`
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
}

// BasketVersion is the immutable result of one pass. Either Err is set
// and the rest is zero, or Err is empty and the basket is populated.
type BasketVersion struct {
	Version      string                      `json:"version"`
	Err          string                      `json:"error,omitempty"`
	PriceTotal   float64                     `json:"price_total"`
	ProductCount int                         `json:"product_count"`
	Macros       Macros                      `json:"macros"`
	Sections     map[catalog.MealSlot][]Item `json:"sections,omitempty"`
}

// assemble maps an optimal solution back to a basket: items partitioned
// by meal slot, weekly totals, and daily macro averages.
func assemble(label string, m *Model, sol *Solution) *BasketVersion {
	sections := make(map[catalog.MealSlot][]Item, len(catalog.Slots))
	for _, s := range catalog.Slots {
		sections[s] = []Item{}
	}

	var price, protein, kcal, fat, carbs float64
	count := 0

	for i, p := range m.products {
		qty := int(math.Round(sol.Values[m.quantity[i]]))
		if qty < 1 {
			continue
		}
		count++

		slot, ok := m.assignedSlot(i, sol)
		if !ok {
			// The slot-assignment equality makes this unreachable for a
			// correct model; if it happens the model is wrong, not the
			// display layer.
			log.Printf("modeling bug: %q is active without a slot assignment, parking in lunch", p.Name)
			slot = catalog.Lunch
		}

		name := p.Name
		if qty > 1 {
			name = fmt.Sprintf("%s ×%d", name, qty)
		}
		q := float64(qty)
		sections[slot] = append(sections[slot], Item{
			Name:     name,
			Price:    round2(p.Price * q),
			Category: p.Category,
			Icon:     p.Icon,
		})

		price += p.Price * q
		protein += p.PackProtein * q
		kcal += p.PackKcal * q
		fat += p.PackFat * q
		carbs += p.PackCarbs * q
	}

	for _, s := range catalog.Slots {
		items := sections[s]
		sort.Slice(items, func(a, b int) bool { return items[a].Name < items[b].Name })
	}

	return &BasketVersion{
		Version:      label,
		PriceTotal:   round2(price),
		ProductCount: count,
		Macros: Macros{
			Protein: round1(protein / 7),
			Kcal:    math.Round(kcal / 7),
			Fat:     round1(fat / 7),
			Carbs:   round1(carbs / 7),
		},
		Sections: sections,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
