package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webltl/specverify/internal/config"
	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/interp"
	"github.com/webltl/specverify/internal/loader"
)

var (
	modulePathFlag  string
	tracePathFlag   string
	diagnosticsJSON bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a specification's proposition against an observed trace",
	Long: `Load a compiled specification module and an observed-state trace,
then evaluate the proposition entry point against the trace: Accepted,
Rejected, or Undetermined.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&modulePathFlag, "module", "", "path to the compiled IR module JSON artifact")
	verifyCmd.Flags().StringVar(&tracePathFlag, "trace", "", "path to the observed-state trace JSON artifact")
	verifyCmd.Flags().BoolVar(&diagnosticsJSON, "diagnostics-json", false, "emit trace(label, p) diagnostics as JSON lines")
}

func runVerify(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	modulePath := firstNonEmpty(modulePathFlag, cfg.ModulePath)
	tracePath := firstNonEmpty(tracePathFlag, cfg.TracePath)
	if modulePath == "" {
		return fmt.Errorf("no module path given (--module or config modulePath)")
	}
	if tracePath == "" {
		return fmt.Errorf("no trace path given (--trace or config tracePath)")
	}

	mod, trace, interpreter, err := loadProgram(modulePath, tracePath)
	if err != nil {
		return err
	}
	if diagnosticsJSON || cfg.DiagnosticsJSON {
		interpreter.Diagnostics = func(d interp.Diagnostic) {
			line, err := interp.FormatDiagnosticJSON(d)
			if err != nil {
				fmt.Fprintf(os.Stderr, "diagnostic encoding failed: %v\n", err)
				return
			}
			fmt.Println(line)
		}
	}

	program := interp.NewProgram(mod.Name, mod.Bindings, interpreter)
	verdict, err := program.Verify(trace)
	if err != nil {
		if ee, ok := err.(*ierrors.EvalError); ok {
			fmt.Fprintln(os.Stderr, ierrors.Format(ee))
			return fmt.Errorf("verification failed")
		}
		return err
	}

	fmt.Println(verdict.String())
	return nil
}

func loadProgram(modulePath, tracePath string) (*loader.Module, interp.Trace, *interp.Interpreter, error) {
	moduleData, err := os.ReadFile(modulePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading %s: %w", modulePath, err)
	}
	mod, err := loader.LoadModule(moduleData)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing %s: %w", modulePath, err)
	}

	traceData, err := os.ReadFile(tracePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading %s: %w", tracePath, err)
	}
	trace, err := loader.LoadTrace(traceData)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing %s: %w", tracePath, err)
	}

	return mod, trace, interp.New(), nil
}

func loadModuleOnly(modulePath string) (*loader.Module, error) {
	moduleData, err := os.ReadFile(modulePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", modulePath, err)
	}
	mod, err := loader.LoadModule(moduleData)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", modulePath, err)
	}
	return mod, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
