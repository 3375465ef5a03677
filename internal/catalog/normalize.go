package catalog

// Normalize converts raw catalog rows into model-ready products. It scales
// the per-100g nutrition to the full pack, attaches slot eligibility and
// the pack limit for the row's category, drops rows whose category is in
// excludeCategories and re-indexes the survivors with dense slot ids.
//
// Rows with a non-positive price are the collaborator's responsibility and
// are assumed to be filtered upstream. A missing or non-positive weight
// defaults to 100g so the pack factor is never a division by zero.
func Normalize(rows []Row, excludeCategories []string) []Product {
	excluded := make(map[string]bool, len(excludeCategories))
	for _, c := range excludeCategories {
		excluded[c] = true
	}

	products := make([]Product, 0, len(rows))
	for _, r := range rows {
		if excluded[r.Category] {
			continue
		}

		weight := r.WeightGrams
		if weight <= 0 {
			weight = 100
		}
		factor := weight / 100.0

		maxPacks := 1
		if multiPackCategories[r.Category] {
			maxPacks = 2
		}

		products = append(products, Product{
			SlotID:      len(products),
			Name:        r.Name,
			Price:       r.Price,
			Category:    r.Category,
			Icon:        r.Icon,
			PackProtein: r.Protein100g * factor,
			PackCarbs:   r.Carbs100g * factor,
			PackFat:     r.Fat100g * factor,
			PackKcal:    r.Kcal100g * factor,
			Slots:       slotsByCategory[r.Category],
			MaxPacks:    maxPacks,
		})
	}
	return products
}
