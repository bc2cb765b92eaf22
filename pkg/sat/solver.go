package sat

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

var logger logrus.FieldLogger = logrus.StandardLogger().WithField("component", "sat")

// SetLogger replaces the logger used by the package
func SetLogger(l logrus.FieldLogger) {
	logger = l
}

var solvers = map[string]func() SATSolver{
	"gini":          NewGiniSolver,
	"gophersat":     NewGophersatSolver,
	"kissat":        NewKissatSolver,
	"cadical":       NewCadicalSolver,
	"cryptominisat": NewCryptominisatSolver,
	"minisat":       NewMinisatSolver,
	"glucosesimp":   NewGlucoseSimpSolver,
	"slime":         NewSlimeSolver,
	"ortoolsat":     NewOrtoolsatSolver,
}

// InProcessSolvers are the backends that need no external executable
var InProcessSolvers = []string{"gini", "gophersat"}

// Solvers returns the names accepted by NewSolver, sorted
func Solvers() []string {
	names := lo.Keys(solvers)
	sort.Strings(names)
	return names
}

func NewSolver(name string) (SATSolver, error) {
	constructor, ok := solvers[name]
	if !ok {
		return nil, errors.Errorf("%v is not a valid solver", name)
	}
	return constructor(), nil
}
