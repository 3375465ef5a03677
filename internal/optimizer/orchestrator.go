package optimizer

import (
	"context"
	"fmt"
	"log"
	"time"

	"grocery-optimizer/internal/catalog"
)

// Proposals bundles the three diversified basket versions under their
// stable labels. Infeasible passes appear as error records, never as
// missing entries.
type Proposals struct {
	A *BasketVersion `json:"version_a"`
	B *BasketVersion `json:"version_b"`
	C *BasketVersion `json:"version_c"`
}

// PassMetric describes one solve for observability.
type PassMetric struct {
	Label       string
	Status      string
	NumProducts int
	NumColumns  int
	NumRows     int
	Latency     time.Duration
}

// Orchestrator runs the three-pass diversification pipeline against a
// normalized catalog.
type Orchestrator struct {
	solver Solver
}

// NewOrchestrator creates an Orchestrator using the given solver.
func NewOrchestrator(solver Solver) *Orchestrator {
	return &Orchestrator{solver: solver}
}

// Generate runs passes A, B and C in order. Pass B penalizes the ids
// chosen in A, pass C the ids chosen in A and B; the penalty is a soft
// objective discount, so a penalized product can still be picked when
// feasibility needs it. The passes are strictly sequential because each
// model depends on the previous selections; every pass error is returned
// as data inside its version.
func (o *Orchestrator) Generate(ctx context.Context, products []catalog.Product, t Targets) (*Proposals, []PassMetric) {
	var metrics []PassMetric

	a, idsA, ma := o.runPass(ctx, "A", products, t, nil)
	metrics = append(metrics, ma)

	penaltyB := make(map[int]bool, len(idsA))
	for _, id := range idsA {
		penaltyB[id] = true
	}
	b, idsB, mb := o.runPass(ctx, "B", products, t, penaltyB)
	metrics = append(metrics, mb)

	penaltyC := make(map[int]bool, len(idsA)+len(idsB))
	for _, id := range idsA {
		penaltyC[id] = true
	}
	for _, id := range idsB {
		penaltyC[id] = true
	}
	c, _, mc := o.runPass(ctx, "C", products, t, penaltyC)
	metrics = append(metrics, mc)

	return &Proposals{A: a, B: b, C: c}, metrics
}

// runPass executes one build-solve-assemble cycle. The returned id slice
// is empty when the pass failed, so failed passes contribute nothing to
// later penalty sets.
func (o *Orchestrator) runPass(ctx context.Context, label string, products []catalog.Product, t Targets, penalty map[int]bool) (*BasketVersion, []int, PassMetric) {
	log.Printf("solving version %s (%d penalized)", label, len(penalty))
	start := time.Now()
	metric := PassMetric{Label: label, NumProducts: len(products)}

	m, err := BuildModel(products, t, penalty)
	if err != nil {
		metric.Status = "rejected"
		metric.Latency = time.Since(start)
		return &BasketVersion{Version: label, Err: err.Error()}, nil, metric
	}
	metric.NumColumns = len(m.Columns)
	metric.NumRows = len(m.Constraints)

	sol, err := o.solver.Solve(ctx, m)
	metric.Latency = time.Since(start)
	if err != nil {
		metric.Status = "error"
		return &BasketVersion{Version: label, Err: fmt.Sprintf("solver error: %v", err)}, nil, metric
	}
	metric.Status = sol.Label

	if sol.Status != StatusOptimal {
		return &BasketVersion{Version: label, Err: fmt.Sprintf("not solvable (%s)", sol.Label)}, nil, metric
	}

	return assemble(label, m, sol), m.chosenIDs(sol), metric
}
