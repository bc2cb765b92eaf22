package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/limaJavier/ndsat/pkg/nd"
	"github.com/limaJavier/ndsat/pkg/sat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Exit codes follow the SAT-solver convention
const (
	exitError         = 1
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
)

type options struct {
	file       string
	out        string
	solver     string
	configPath string
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	exitCode := 0
	root := newRootCommand(stdout, &exitCode)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logrus.Error(err)
		return exitError
	}
	return exitCode
}

func newRootCommand(stdout io.Writer, exitCode *int) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "ndsat",
		Short:         "Re-encode DIMACS formulas through nondeterministic booleans and solve them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(opts)
		},
	}
	addFlags(root.PersistentFlags(), opts)

	solve := &cobra.Command{
		Use:   "solve",
		Short: "Solve the formula and print the model in SAT-competition format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := solveFormula(opts, stdout)
			*exitCode = code
			return err
		},
	}
	solve.Flags().StringVar(&opts.solver, "solver", "gini", "SAT-Solver to use. Allowed values are: "+strings.Join(sat.Solvers(), ", "))

	encode := &cobra.Command{
		Use:   "encode",
		Short: "Print the Tseitin re-encoding of the formula in DIMACS format without solving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			machine, _, err := load(opts.file)
			if err != nil {
				return err
			}
			return writeFormula(machine, opts.out, stdout)
		},
	}

	root.AddCommand(solve, encode)
	return root
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.file, "file", "", "Path to the input DIMACS file")
	flags.StringVar(&opts.out, "out", "", "Path to the file where the re-encoded formula will be written; if empty, solve won't write it and encode will write it into the Standard Output")
	flags.StringVar(&opts.configPath, "config", "", "Path to the solvers' config.json; defaults to the one next to the executable, if any")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log solver activity")
}

func setup(opts *options) error {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetOutput(os.Stderr)
	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if opts.file == "" {
		return errors.New("an input file must be specified")
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = defaultConfigPath()
		if configPath == "" {
			return nil
		}
	}
	cfg, err := sat.LoadConfig(configPath)
	if err != nil {
		return err
	}
	sat.SetConfig(cfg)
	return nil
}

// defaultConfigPath returns the config.json next to the executable, or "" when there is none
func defaultConfigPath() string {
	execPath, err := os.Executable()
	if err != nil {
		logrus.Debugf("cannot determine executable path: %v", err)
		return ""
	}
	configPath := path.Join(path.Dir(execPath), "config.json")
	if _, err := os.Stat(configPath); err != nil {
		return ""
	}
	return configPath
}

// load reads a DIMACS file and asserts every clause through a fresh machine, one Bool per variable
func load(file string) (*nd.Machine, []nd.Bool, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot open input file")
	}
	defer f.Close()

	formula, err := sat.ParseDIMACS(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot parse input file %v", file)
	}

	machine := nd.NewMachine()
	variables, err := machine.AssertFormula(formula)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot encode input file %v", file)
	}
	return machine, variables, nil
}

func solveFormula(opts *options, stdout io.Writer) (int, error) {
	solver, err := sat.NewSolver(strings.ToLower(opts.solver))
	if err != nil {
		return exitError, err
	}

	machine, variables, err := load(opts.file)
	if err != nil {
		return exitError, err
	}
	if opts.out != "" {
		if err := writeFormula(machine, opts.out, stdout); err != nil {
			return exitError, err
		}
	}

	solved, err := machine.SolveWith(solver)
	if err != nil {
		return exitError, err
	}

	encodedVariables, encodedClauses, _ := machine.Stats()
	logrus.WithFields(logrus.Fields{
		"variables": encodedVariables,
		"clauses":   encodedClauses,
		"solver":    opts.solver,
	}).Info("formula encoded")

	if !solved {
		fmt.Fprintln(stdout, "s UNSATISFIABLE")
		return exitUnsatisfiable, nil
	}

	var builder strings.Builder
	builder.WriteString("v")
	for i, variable := range variables {
		value, err := variable.Value()
		if err != nil {
			return exitError, err
		}
		literal := i + 1
		if !value {
			literal = -literal
		}
		fmt.Fprintf(&builder, " %d", literal)
	}
	builder.WriteString(" 0")

	fmt.Fprintln(stdout, "s SATISFIABLE")
	fmt.Fprintln(stdout, builder.String())
	return exitSatisfiable, nil
}

func writeFormula(machine *nd.Machine, out string, stdout io.Writer) error {
	formula, err := machine.Formula()
	if err != nil {
		return err
	}
	if out == "" {
		return formula.WriteDIMACS(stdout)
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "an error occurred while creating the output file")
	}
	defer f.Close()
	return formula.WriteDIMACS(f)
}
