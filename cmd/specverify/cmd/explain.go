package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webltl/specverify/internal/config"
	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/interp"
)

var explainModulePathFlag string

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print a specification's non-temporal entry points",
	Long: `Resolve and print a compiled specification's origin, readyWhen, and
actions entry points, without evaluating the proposition against a
trace.`,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().StringVar(&explainModulePathFlag, "module", "", "path to the compiled IR module JSON artifact")
}

func runExplain(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	modulePath := firstNonEmpty(explainModulePathFlag, cfg.ModulePath)
	if modulePath == "" {
		return fmt.Errorf("no module path given (--module or config modulePath)")
	}

	mod, err := loadModuleOnly(modulePath)
	if err != nil {
		return err
	}
	program := interp.NewProgram(mod.Name, mod.Bindings, interp.New())

	origin, err := program.Origin()
	if err != nil {
		return explainError(err)
	}
	readyWhen, err := program.ReadyWhen()
	if err != nil {
		return explainError(err)
	}
	actions, err := program.Actions()
	if err != nil {
		return explainError(err)
	}

	fmt.Printf("origin:    %s\n", origin)
	fmt.Printf("readyWhen: %s\n", readyWhen)
	fmt.Printf("actions:   %s\n", actions.String())
	return nil
}

func explainError(err error) error {
	if ee, ok := err.(*ierrors.EvalError); ok {
		fmt.Fprintln(os.Stderr, ierrors.Format(ee))
		return fmt.Errorf("explain failed")
	}
	return err
}
