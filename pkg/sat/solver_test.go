package sat

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
)

const (
	testDirectory              = "testdata/cnfs/"
	unsatisfiableTestDirectory = "testdata/unsat/"
)

func TestGini(t *testing.T) {
	solverExecution(t, NewGiniSolver())
}

func TestGophersat(t *testing.T) {
	solverExecution(t, NewGophersatSolver())
}

func TestKissat(t *testing.T) {
	requireExecutable(t, "kissat")
	solverExecution(t, NewKissatSolver())
}

func TestCadical(t *testing.T) {
	requireExecutable(t, "cadical")
	solverExecution(t, NewCadicalSolver())
}

func TestCryptominisat(t *testing.T) {
	requireExecutable(t, "cryptominisat")
	solverExecution(t, NewCryptominisatSolver())
}

func TestMinisat(t *testing.T) {
	requireExecutable(t, "minisat")
	solverExecution(t, NewMinisatSolver())
}

func TestGlucoseSimp(t *testing.T) {
	requireExecutable(t, "glucose-simp")
	solverExecution(t, NewGlucoseSimpSolver())
}

func TestSlime(t *testing.T) {
	requireExecutable(t, "slime")
	solverExecution(t, NewSlimeSolver())
}

func TestOrtoolsat(t *testing.T) {
	requireExecutable(t, "ortoolsat")
	solverExecution(t, NewOrtoolsatSolver())
}

func TestMissingExecutable(t *testing.T) {
	g := NewWithT(t)
	SetConfig(Config{KissatPath: filepath.Join(t.TempDir(), "no-such-kissat")})
	defer SetConfig(Config{})

	solution, err := NewKissatSolver().Solve(SAT{Variables: 1, Clauses: [][]int64{{1}}})
	g.Expect(err).To(HaveOccurred())
	g.Expect(solution).To(BeNil())
}

func TestNewSolver(t *testing.T) {
	g := NewWithT(t)

	for _, name := range Solvers() {
		solver, err := NewSolver(name)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(solver).NotTo(BeNil())
	}

	_, err := NewSolver("walksat")
	g.Expect(err).To(MatchError(ContainSubstring("not a valid solver")))
	g.Expect(Solvers()).To(ContainElements(InProcessSolvers))
}

func solverExecution(t *testing.T, solver SATSolver) {
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
	t.Run("Unsatisfiable instances", func(t *testing.T) {
		unsatisfiableExecution(t, solver)
	})
	t.Run("Random instances", func(t *testing.T) {
		randomExecution(t, solver)
	})
	t.Run("Empty instance", func(t *testing.T) {
		g := NewWithT(t)
		solution, err := solver.Solve(SAT{Variables: 3})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(solution).NotTo(BeNil())
	})
	t.Run("Empty clause", func(t *testing.T) {
		g := NewWithT(t)
		solution, err := solver.Solve(SAT{Variables: 1, Clauses: [][]int64{{1}, {}}})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(solution).To(BeNil())
	})
}

func satisfiableExecution(t *testing.T, solver SATSolver) {
	g := NewWithT(t)
	for _, sat := range readInstances(t, testDirectory) {
		//** Act
		solution, err := solver.Solve(sat)

		//** Assert
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(solution).NotTo(BeNil())
		g.Expect(Verify(sat, solution)).To(BeTrue())
	}
}

func unsatisfiableExecution(t *testing.T, solver SATSolver) {
	g := NewWithT(t)
	for _, sat := range readInstances(t, unsatisfiableTestDirectory) {
		solution, err := solver.Solve(sat)

		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(solution).To(BeNil())
	}
}

func randomExecution(t *testing.T, solver SATSolver) {
	g := NewWithT(t)
	unsatisfiableCount := 0

	for range 10 {
		instance := GenerateSATInstance(20, 60)

		solution, err := solver.Solve(instance)
		g.Expect(err).NotTo(HaveOccurred())

		if solution == nil {
			unsatisfiableCount++
			continue
		}
		g.Expect(Verify(instance, solution)).To(BeTrue(), "wrong answer")
	}

	t.Logf("Unsatisfiable instances: %v", unsatisfiableCount)
}

func readInstances(t *testing.T, directory string) []SAT {
	testFiles, err := os.ReadDir(directory)
	if err != nil {
		t.Fatalf("cannot read directory: %v", err)
	}

	instances := make([]SAT, 0, len(testFiles))
	for _, file := range testFiles {
		//** Arrange
		f, err := os.Open(filepath.Join(directory, file.Name()))
		if err != nil {
			t.Fatalf("cannot open file: %v", err)
		}
		sat, err := ParseDIMACS(f)
		f.Close()
		if err != nil {
			t.Fatalf("cannot parse file %v: %v", file.Name(), err)
		}
		instances = append(instances, sat)
	}
	return instances
}

func requireExecutable(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(executablePath(name)); err != nil {
		t.Skipf("%v is not installed", name)
	}
}
