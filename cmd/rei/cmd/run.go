package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zyneaa/rei/internal/config"
	"github.com/zyneaa/rei/internal/lexer"
	"github.com/zyneaa/rei/internal/parser"
	"github.com/zyneaa/rei/internal/rei"
)

// earlyDiagnosticExitCode mirrors the reference implementation's use of
// 65 for scan/parse/resolve failures, reserving a plain non-zero status
// for runtime failures (spec §6).
const earlyDiagnosticExitCode = 65

func runFile(_ *cobra.Command, args []string) error {
	path := args[0]
	if !config.HasSourceExt(path) {
		fmt.Fprintf(os.Stderr, "warning: %s does not have a recognized source extension\n", path)
	}

	project, err := config.LoadProject(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", config.ProjectFileName, err)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	tokens, scanErrs := lexer.New(string(source), path).Scan()
	if len(scanErrs) != 0 {
		for _, e := range scanErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(earlyDiagnosticExitCode)
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		for _, e := range parseErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(earlyDiagnosticExitCode)
	}

	ev := rei.New()
	ev.Strict = project.Strict
	runErr := ev.Run(stmts)
	if runErr == nil {
		return nil
	}

	var runtimeErr *rei.RuntimeError
	if errors.As(runErr, &runtimeErr) {
		fmt.Fprint(os.Stderr, runtimeErr.Report())
		os.Exit(1)
	}

	// A bare error here is either a resolver diagnostic bundle (errors.Join
	// of static-resolution failures) or a ControlFlow signal that escaped
	// top-level execution — both are pre-execution-class failures.
	fmt.Fprintln(os.Stderr, runErr)
	os.Exit(earlyDiagnosticExitCode)
	return nil
}
