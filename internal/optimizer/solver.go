package optimizer

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/lukpank/go-glpk/glpk"
)

// Status is the solver's verdict for one pass.
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusFailed
)

// Solution carries the solver verdict and, when optimal, the value of
// every column in the model.
type Solution struct {
	Status    Status
	Label     string // solver-specific status label, e.g. "optimal"
	Objective float64
	Values    []float64 // indexed like Model.Columns
}

// Solver runs one integer program to completion. Implementations must be
// synchronous: the orchestrator relies on pass N finishing before pass
// N+1 builds its model.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}

// GLPKSolver solves models with GLPK's branch-and-cut MIP solver.
type GLPKSolver struct {
	Verbose bool
}

// Solve loads the model into a fresh GLPK problem and runs the integer
// optimizer. Non-optimal outcomes are reported through Solution.Status,
// not as errors; the returned error is reserved for invocation failures.
func (s *GLPKSolver) Solve(ctx context.Context, m *Model) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lp := glpk.New()
	defer lp.Delete()

	lp.SetProbName("basket")
	lp.SetObjName("variety")
	if m.Maximize {
		lp.SetObjDir(glpk.MAX)
	} else {
		lp.SetObjDir(glpk.MIN)
	}

	lp.AddCols(len(m.Columns))
	for j, c := range m.Columns {
		idx := j + 1
		lp.SetColName(idx, c.Name)
		lp.SetColBnds(idx, bndsType(c.Lo, c.Hi), finite(c.Lo), finite(c.Hi))
		if c.Kind != ColContinuous {
			// Binary columns keep their explicit bounds so hard
			// exclusions (upper bound zero) survive.
			lp.SetColKind(idx, glpk.IV)
		}
		lp.SetObjCoef(idx, c.ObjCoef)
	}

	lp.AddRows(len(m.Constraints))
	for i, r := range m.Constraints {
		idx := i + 1
		lp.SetRowName(idx, r.Name)
		lp.SetRowBnds(idx, bndsType(r.Lo, r.Hi), finite(r.Lo), finite(r.Hi))

		// GLPK expects 1-based ind/val slices with index 0 unused.
		ind := make([]int32, len(r.Cols)+1)
		val := make([]float64, len(r.Cols)+1)
		for k, cj := range r.Cols {
			ind[k+1] = int32(cj + 1)
			val[k+1] = r.Coefs[k]
		}
		lp.SetMatRow(idx, ind, val)
	}

	if s.Verbose {
		log.Printf("solver: %d columns, %d rows", len(m.Columns), len(m.Constraints))
	}

	iocp := glpk.NewIocp()
	iocp.SetPresolve(true)
	if err := lp.Intopt(iocp); err != nil {
		// The MIP presolver reports provably infeasible models as an
		// error rather than through MipStatus.
		return &Solution{Status: StatusInfeasible, Label: err.Error()}, nil
	}

	switch st := lp.MipStatus(); st {
	case glpk.OPT:
		sol := &Solution{
			Status:    StatusOptimal,
			Label:     "optimal",
			Objective: lp.MipObjVal(),
			Values:    make([]float64, len(m.Columns)),
		}
		for j := range m.Columns {
			sol.Values[j] = lp.MipColVal(j + 1)
		}
		return sol, nil
	case glpk.NOFEAS, glpk.INFEAS:
		return &Solution{Status: StatusInfeasible, Label: "infeasible"}, nil
	default:
		return &Solution{Status: StatusFailed, Label: statusLabel(st)}, nil
	}
}

func statusLabel(st glpk.SolStat) string {
	switch st {
	case glpk.FEAS:
		return "feasible but not proven optimal"
	case glpk.UNBND:
		return "unbounded"
	case glpk.UNDEF:
		return "undefined"
	default:
		return fmt.Sprintf("solver status %d", int(st))
	}
}

func bndsType(lo, hi float64) glpk.BndsType {
	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return glpk.FR
	case math.IsInf(hi, 1):
		return glpk.LO
	case math.IsInf(lo, -1):
		return glpk.UP
	case lo == hi:
		return glpk.FX
	default:
		return glpk.DB
	}
}

// finite maps ±Inf to 0; GLPK ignores the bound on that side anyway.
func finite(v float64) float64 {
	if math.IsInf(v, 0) {
		return 0
	}
	return v
}
