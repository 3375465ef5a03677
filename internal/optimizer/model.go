package optimizer

import (
	"errors"
	"fmt"
	"math"

	"grocery-optimizer/internal/catalog"
)

// Feasibility bands. Bands instead of point targets keep the model
// solvable for ordinary catalogs.
const (
	budgetFloorRatio  = 0.60 // spend at least 60% of the budget
	proteinFloorRatio = 0.70 // of the weekly protein target
	kcalFloorRatio    = 0.80 // of the weekly calorie ceiling
	macroBandRatio    = 0.15 // ±15% around optional carb/fat targets

	penaltyWeight = 0.3 // objective discount for previously chosen products

	monopolyKcalRatio = 0.25 // no single pack above 25% of weekly calories
	priceCapRatio     = 0.15 // no single product above 15% of the budget

	// Below this catalog size the slot-coverage minimums cannot be met,
	// so building a model is pointless.
	minEligibleProducts = 15
)

// ErrInsufficientCatalog is returned by BuildModel when too few products
// survive exclusion filtering to cover the meal slots.
var ErrInsufficientCatalog = errors.New("not enough eligible products after filtering")

// Targets holds the weekly feasibility targets of one optimization request.
// WeeklyCarbs and WeeklyFat are optional; zero means "no band".
type Targets struct {
	Budget        float64
	WeeklyProtein float64
	WeeklyKcal    float64
	WeeklyCarbs   float64
	WeeklyFat     float64
}

// Request carries the caller's budget and daily macro targets.
// DailyCarbs and DailyFat are optional; zero means unconstrained.
type Request struct {
	Budget            float64
	DailyProtein      float64
	DailyKcal         float64
	DailyCarbs        float64
	DailyFat          float64
	ExcludeCategories []string
}

// Targets converts the daily request values into the weekly targets the
// model constrains.
func (r Request) Targets() Targets {
	return Targets{
		Budget:        r.Budget,
		WeeklyProtein: r.DailyProtein * 7,
		WeeklyKcal:    r.DailyKcal * 7,
		WeeklyCarbs:   r.DailyCarbs * 7,
		WeeklyFat:     r.DailyFat * 7,
	}
}

// ColKind distinguishes the decision variable domains.
type ColKind int

const (
	ColContinuous ColKind = iota
	ColInteger
	ColBinary
)

// Column is one decision variable with its bounds and objective
// coefficient.
type Column struct {
	Name    string
	Kind    ColKind
	Lo, Hi  float64
	ObjCoef float64
}

// Constraint is one linear row: Lo <= sum(Coefs[k]*x[Cols[k]]) <= Hi.
// One-sided rows use ±Inf.
type Constraint struct {
	Name  string
	Cols  []int
	Coefs []float64
	Lo    float64
	Hi    float64
}

// Model is a solver-agnostic integer program for one pass, together with
// the variable index maps the assembler needs to read a solution back.
type Model struct {
	Maximize    bool
	Columns     []Column
	Constraints []Constraint

	products []catalog.Product
	quantity []int                        // product index -> quantity column
	active   []int                        // product index -> active column
	assign   []map[catalog.MealSlot]int   // product index -> slot -> column
}

// budgetFactor scales the count bounds with the requested budget. 50
// currency units is the reference basket the base minimums were tuned for.
func budgetFactor(budget float64) float64 {
	f := budget / 50
	if f < 0.4 {
		f = 0.4
	}
	if f > 1.5 {
		f = 1.5
	}
	return f
}

// Base per-slot minimum item counts for covering seven days, before
// budget-factor scaling.
var baseSlotMinimums = map[catalog.MealSlot]int{
	catalog.Breakfast: 4,
	catalog.Lunch:     7,
	catalog.Snack:     3,
	catalog.Dinner:    5,
}

type countBounds struct {
	Min, Max int
}

// Base per-category bounds on distinct products in the whole basket,
// before budget-factor scaling.
var baseCategoryBounds = map[string]countBounds{
	"meat":      {2, 5},
	"fish":      {1, 3},
	"vegetable": {3, 6},
	"fruit":     {2, 4},
	"dairy":     {2, 4},
	"legume":    {1, 3},
	"cereal":    {3, 5},
	"egg":       {1, 2},
	"treat":     {1, 3},
	"canned":    {0, 3},
}

var baseTotalBounds = countBounds{Min: 20, Max: 30}

func scaleCount(base int, f float64) int {
	return int(math.Round(float64(base) * f))
}

// scaledBounds applies the budget factor to a count bound pair, keeping at
// least a one-unit gap between minimum and maximum.
func scaledBounds(b countBounds, f float64) countBounds {
	scaled := countBounds{Min: scaleCount(b.Min, f), Max: scaleCount(b.Max, f)}
	if scaled.Max < scaled.Min+1 {
		scaled.Max = scaled.Min + 1
	}
	return scaled
}

// BuildModel constructs the integer program for one pass: quantity, active
// and slot-assignment variables for every product, the variety objective
// with the soft penalty for previously chosen ids, and the feasibility
// constraint set. The penalty set is read-only.
func BuildModel(products []catalog.Product, t Targets, penalty map[int]bool) (*Model, error) {
	if len(products) < minEligibleProducts {
		return nil, ErrInsufficientCatalog
	}

	m := &Model{
		Maximize: true,
		products: products,
		quantity: make([]int, len(products)),
		active:   make([]int, len(products)),
		assign:   make([]map[catalog.MealSlot]int, len(products)),
	}

	addCol := func(c Column) int {
		m.Columns = append(m.Columns, c)
		return len(m.Columns) - 1
	}
	addRow := func(c Constraint) {
		m.Constraints = append(m.Constraints, c)
	}

	// --- Decision variables ---
	for i, p := range products {
		// Hard exclusions are expressed as zero upper bounds so one
		// product can never dominate calories or spend.
		excluded := p.PackKcal > t.WeeklyKcal*monopolyKcalRatio ||
			p.Price > t.Budget*priceCapRatio ||
			len(p.Slots) == 0

		qtyHi := float64(p.MaxPacks)
		activeHi := 1.0
		if excluded {
			qtyHi = 0
			activeHi = 0
		}

		m.quantity[i] = addCol(Column{
			Name: fmt.Sprintf("q_%d", p.SlotID),
			Kind: ColInteger,
			Lo:   0,
			Hi:   qtyHi,
		})

		objCoef := 1.0
		if penalty[p.SlotID] {
			objCoef = 1.0 - penaltyWeight
		}
		m.active[i] = addCol(Column{
			Name:    fmt.Sprintf("b_%d", p.SlotID),
			Kind:    ColBinary,
			Lo:      0,
			Hi:      activeHi,
			ObjCoef: objCoef,
		})

		m.assign[i] = make(map[catalog.MealSlot]int, len(p.Slots))
		for _, s := range p.Slots {
			m.assign[i][s] = addCol(Column{
				Name: fmt.Sprintf("a_%d_%s", p.SlotID, s),
				Kind: ColBinary,
				Lo:   0,
				Hi:   1,
			})
		}
	}

	// --- Linking: active <= quantity <= maxPacks*active ---
	for i, p := range products {
		addRow(Constraint{
			Name:  fmt.Sprintf("link_lo_%d", p.SlotID),
			Cols:  []int{m.quantity[i], m.active[i]},
			Coefs: []float64{1, -1},
			Lo:    0,
			Hi:    math.Inf(1),
		})
		addRow(Constraint{
			Name:  fmt.Sprintf("link_hi_%d", p.SlotID),
			Cols:  []int{m.quantity[i], m.active[i]},
			Coefs: []float64{1, -float64(p.MaxPacks)},
			Lo:    math.Inf(-1),
			Hi:    0,
		})

		// An active product occupies exactly one meal slot. This is an
		// equality the solver must satisfy; the assembler logs any
		// violation as a modeling bug.
		if len(p.Slots) > 0 {
			cols := []int{m.active[i]}
			coefs := []float64{-1}
			for _, s := range p.Slots {
				cols = append(cols, m.assign[i][s])
				coefs = append(coefs, 1)
			}
			addRow(Constraint{
				Name:  fmt.Sprintf("slot_of_%d", p.SlotID),
				Cols:  cols,
				Coefs: coefs,
				Lo:    0,
				Hi:    0,
			})
		}
	}

	// --- Aggregate rows over quantities ---
	quantityRow := func(name string, coef func(catalog.Product) float64, lo, hi float64) {
		cols := make([]int, len(products))
		coefs := make([]float64, len(products))
		for i, p := range products {
			cols[i] = m.quantity[i]
			coefs[i] = coef(p)
		}
		addRow(Constraint{Name: name, Cols: cols, Coefs: coefs, Lo: lo, Hi: hi})
	}

	quantityRow("budget", func(p catalog.Product) float64 { return p.Price },
		t.Budget*budgetFloorRatio, t.Budget)
	quantityRow("protein_min", func(p catalog.Product) float64 { return p.PackProtein },
		t.WeeklyProtein*proteinFloorRatio, math.Inf(1))
	quantityRow("kcal_band", func(p catalog.Product) float64 { return p.PackKcal },
		t.WeeklyKcal*kcalFloorRatio, t.WeeklyKcal)
	if t.WeeklyCarbs > 0 {
		quantityRow("carbs_band", func(p catalog.Product) float64 { return p.PackCarbs },
			t.WeeklyCarbs*(1-macroBandRatio), t.WeeklyCarbs*(1+macroBandRatio))
	}
	if t.WeeklyFat > 0 {
		quantityRow("fat_band", func(p catalog.Product) float64 { return p.PackFat },
			t.WeeklyFat*(1-macroBandRatio), t.WeeklyFat*(1+macroBandRatio))
	}

	f := budgetFactor(t.Budget)

	// --- Per-slot minimum item counts ---
	for _, s := range catalog.Slots {
		var cols []int
		var coefs []float64
		for i := range products {
			if j, ok := m.assign[i][s]; ok {
				cols = append(cols, j)
				coefs = append(coefs, 1)
			}
		}
		if len(cols) == 0 {
			continue
		}
		minimum := scaleCount(baseSlotMinimums[s], f)
		if minimum < 1 {
			minimum = 1
		}
		addRow(Constraint{
			Name:  fmt.Sprintf("slot_min_%s", s),
			Cols:  cols,
			Coefs: coefs,
			Lo:    float64(minimum),
			Hi:    math.Inf(1),
		})
	}

	// --- Per-category count bounds ---
	for cat, base := range baseCategoryBounds {
		var cols []int
		var coefs []float64
		for i, p := range products {
			if p.Category == cat {
				cols = append(cols, m.active[i])
				coefs = append(coefs, 1)
			}
		}
		if len(cols) == 0 {
			continue
		}
		b := scaledBounds(base, f)
		addRow(Constraint{
			Name:  fmt.Sprintf("cat_%s", cat),
			Cols:  cols,
			Coefs: coefs,
			Lo:    float64(b.Min),
			Hi:    float64(b.Max),
		})
	}

	// --- Total distinct products ---
	totals := scaledBounds(baseTotalBounds, f)
	cols := make([]int, len(products))
	coefs := make([]float64, len(products))
	for i := range products {
		cols[i] = m.active[i]
		coefs[i] = 1
	}
	addRow(Constraint{
		Name:  "total_products",
		Cols:  cols,
		Coefs: coefs,
		Lo:    float64(totals.Min),
		Hi:    float64(totals.Max),
	})

	return m, nil
}

// chosenIDs returns the slot ids of every product with a positive solved
// quantity. A nil or valueless solution yields an empty set.
func (m *Model) chosenIDs(sol *Solution) []int {
	if sol == nil || len(sol.Values) < len(m.Columns) {
		return nil
	}
	var ids []int
	for i, p := range m.products {
		if sol.Values[m.quantity[i]] > 0.5 {
			ids = append(ids, p.SlotID)
		}
	}
	return ids
}

// assignedSlot resolves which meal slot the solver placed product i in.
func (m *Model) assignedSlot(i int, sol *Solution) (catalog.MealSlot, bool) {
	for _, s := range catalog.Slots {
		if j, ok := m.assign[i][s]; ok && sol.Values[j] > 0.5 {
			return s, true
		}
	}
	return "", false
}
