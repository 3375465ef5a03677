package optimizer

import (
	"fmt"
	"testing"

	"grocery-optimizer/internal/catalog"
)

var testCategories = []string{
	"cereal", "dairy", "egg", "fruit", "meat",
	"fish", "legume", "vegetable", "canned", "treat",
}

// testRows builds a deterministic varied catalog with perCategory rows in
// every category. Prices land in 1.20–2.20, pack calories in 380–460 and
// pack protein in 20–28, so realistic budgets admit feasible baskets.
func testRows(perCategory int) []catalog.Row {
	var rows []catalog.Row
	i := 0
	for _, cat := range testCategories {
		for n := 0; n < perCategory; n++ {
			rows = append(rows, catalog.Row{
				Name:        fmt.Sprintf("%s %02d", cat, n+1),
				Price:       1.2 + 0.1*float64(i%11),
				WeightGrams: 100,
				Category:    cat,
				Icon:        "🛒",
				Protein100g: 20 + float64(i%9),
				Carbs100g:   30 + float64(i%10),
				Fat100g:     8 + float64(i%6),
				Kcal100g:    380 + 8*float64(i%11),
			})
			i++
		}
	}
	return rows
}

// testTargets is the budget-50 reference profile (budget factor 1.0).
func testTargets() Targets {
	return Request{Budget: 50, DailyProtein: 120, DailyKcal: 2200}.Targets()
}

func findRow(t *testing.T, m *Model, name string) Constraint {
	t.Helper()
	for _, c := range m.Constraints {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("Constraint %q not found", name)
	return Constraint{}
}

func hasRow(m *Model, name string) bool {
	for _, c := range m.Constraints {
		if c.Name == name {
			return true
		}
	}
	return false
}

// zeroSolution returns an optimal-status solution with every column at 0.
func zeroSolution(m *Model) *Solution {
	return &Solution{
		Status: StatusOptimal,
		Label:  "optimal",
		Values: make([]float64, len(m.Columns)),
	}
}

// choose marks product i as bought with the given quantity and slot. An
// empty slot leaves every assignment variable at zero.
func choose(m *Model, sol *Solution, i, qty int, slot catalog.MealSlot) {
	sol.Values[m.quantity[i]] = float64(qty)
	sol.Values[m.active[i]] = 1
	if slot != "" {
		sol.Values[m.assign[i][slot]] = 1
	}
}
