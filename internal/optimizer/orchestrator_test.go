package optimizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"grocery-optimizer/internal/catalog"
)

// scriptedSolver captures every model it receives and answers from a
// per-call script, so orchestration can be tested without GLPK.
type scriptedSolver struct {
	calls   int
	models  []*Model
	respond func(call int, m *Model) (*Solution, error)
}

func (s *scriptedSolver) Solve(_ context.Context, m *Model) (*Solution, error) {
	s.models = append(s.models, m)
	call := s.calls
	s.calls++
	return s.respond(call, m)
}

func TestGeneratePenaltyProtocol(t *testing.T) {
	products := catalog.Normalize(testRows(2), nil)
	solver := &scriptedSolver{
		respond: func(call int, m *Model) (*Solution, error) {
			sol := zeroSolution(m)
			switch call {
			case 0:
				choose(m, sol, 0, 1, catalog.Breakfast)
				choose(m, sol, 1, 1, catalog.Breakfast)
			case 1:
				choose(m, sol, 2, 1, catalog.Breakfast)
				choose(m, sol, 3, 1, catalog.Breakfast)
			case 2:
				choose(m, sol, 4, 1, catalog.Breakfast)
			}
			return sol, nil
		},
	}

	o := NewOrchestrator(solver)
	proposals, metrics := o.Generate(context.Background(), products, testTargets())

	if solver.calls != 3 {
		t.Fatalf("Expected 3 solver calls, got %d", solver.calls)
	}
	for _, v := range []*BasketVersion{proposals.A, proposals.B, proposals.C} {
		if v == nil || v.Err != "" {
			t.Fatalf("Expected three clean versions, got %+v", v)
		}
	}

	// Pass A runs without penalties.
	mA := solver.models[0]
	for i := range products {
		if mA.Columns[mA.active[i]].ObjCoef != 1.0 {
			t.Errorf("Pass A should penalize nothing, product %d has coef %v", i, mA.Columns[mA.active[i]].ObjCoef)
		}
	}

	// Pass B discounts the ids chosen in A and nothing else.
	mB := solver.models[1]
	for i := range products {
		want := 1.0
		if i == 0 || i == 1 {
			want = 0.7
		}
		if got := mB.Columns[mB.active[i]].ObjCoef; got != want {
			t.Errorf("Pass B product %d coef %v, want %v", i, got, want)
		}
	}

	// Pass C discounts everything chosen in A and B.
	mC := solver.models[2]
	for i := range products {
		want := 1.0
		if i <= 3 {
			want = 0.7
		}
		if got := mC.Columns[mC.active[i]].ObjCoef; got != want {
			t.Errorf("Pass C product %d coef %v, want %v", i, got, want)
		}
	}

	if len(metrics) != 3 {
		t.Fatalf("Expected 3 metrics, got %d", len(metrics))
	}
	for k, label := range []string{"A", "B", "C"} {
		if metrics[k].Label != label {
			t.Errorf("Metric %d label %q, want %q", k, metrics[k].Label, label)
		}
		if metrics[k].Status != "optimal" {
			t.Errorf("Metric %s status %q, want optimal", label, metrics[k].Status)
		}
		if metrics[k].NumProducts != len(products) {
			t.Errorf("Metric %s reports %d products, want %d", label, metrics[k].NumProducts, len(products))
		}
		if metrics[k].NumColumns != len(solver.models[k].Columns) || metrics[k].NumRows != len(solver.models[k].Constraints) {
			t.Errorf("Metric %s model shape mismatch: %+v", label, metrics[k])
		}
	}
}

func TestGenerateInfeasiblePassContributesNothing(t *testing.T) {
	products := catalog.Normalize(testRows(2), nil)
	solver := &scriptedSolver{
		respond: func(call int, m *Model) (*Solution, error) {
			if call == 0 {
				return &Solution{Status: StatusInfeasible, Label: "infeasible"}, nil
			}
			sol := zeroSolution(m)
			choose(m, sol, 0, 1, catalog.Breakfast)
			return sol, nil
		},
	}

	o := NewOrchestrator(solver)
	proposals, metrics := o.Generate(context.Background(), products, testTargets())

	if proposals.A.Err != "not solvable (infeasible)" {
		t.Errorf("Expected an infeasibility record for A, got %q", proposals.A.Err)
	}
	if proposals.A.ProductCount != 0 || proposals.A.Sections != nil {
		t.Errorf("A failed pass must carry no basket, got %+v", proposals.A)
	}
	if metrics[0].Status != "infeasible" {
		t.Errorf("Expected infeasible metric status, got %q", metrics[0].Status)
	}

	// B sees no penalties because A chose nothing.
	mB := solver.models[1]
	for i := range products {
		if mB.Columns[mB.active[i]].ObjCoef != 1.0 {
			t.Errorf("Pass B product %d should be unpenalized after a failed A", i)
		}
	}
	if proposals.B.Err != "" || proposals.C.Err != "" {
		t.Errorf("Later passes should still run: B=%q C=%q", proposals.B.Err, proposals.C.Err)
	}
}

func TestGenerateSolverError(t *testing.T) {
	products := catalog.Normalize(testRows(2), nil)
	solver := &scriptedSolver{
		respond: func(call int, m *Model) (*Solution, error) {
			if call == 1 {
				return nil, errors.New("glpk exploded")
			}
			return zeroSolution(m), nil
		},
	}

	o := NewOrchestrator(solver)
	proposals, metrics := o.Generate(context.Background(), products, testTargets())

	if !strings.HasPrefix(proposals.B.Err, "solver error:") || !strings.Contains(proposals.B.Err, "glpk exploded") {
		t.Errorf("Expected a wrapped solver error on B, got %q", proposals.B.Err)
	}
	if metrics[1].Status != "error" {
		t.Errorf("Expected error metric status, got %q", metrics[1].Status)
	}
	if solver.calls != 3 {
		t.Errorf("A solver error must not stop later passes, got %d calls", solver.calls)
	}
}

func TestGenerateRejectsSmallCatalog(t *testing.T) {
	products := catalog.Normalize(testRows(1), nil) // 10 products
	solver := &scriptedSolver{
		respond: func(call int, m *Model) (*Solution, error) {
			t.Fatal("Solver must not be invoked for a rejected catalog")
			return nil, nil
		},
	}

	o := NewOrchestrator(solver)
	proposals, metrics := o.Generate(context.Background(), products, testTargets())

	if solver.calls != 0 {
		t.Errorf("Expected no solver calls, got %d", solver.calls)
	}
	for k, v := range []*BasketVersion{proposals.A, proposals.B, proposals.C} {
		if v.Err != ErrInsufficientCatalog.Error() {
			t.Errorf("Version %d error %q, want %q", k, v.Err, ErrInsufficientCatalog.Error())
		}
	}
	for _, metric := range metrics {
		if metric.Status != "rejected" {
			t.Errorf("Metric %s status %q, want rejected", metric.Label, metric.Status)
		}
	}
}
