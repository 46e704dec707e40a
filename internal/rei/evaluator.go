package rei

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zyneaa/rei/internal/ast"
	"github.com/zyneaa/rei/internal/resolver"
)

// Evaluator is the statement/expression visitor. Single-threaded,
// direct execution; there is no virtual machine or bytecode (spec
// §4.4).
type Evaluator struct {
	Globals *Environment
	Out     io.Writer
	ErrOut  io.Writer

	// Strict upgrades an unresolved top-level-looking variable
	// reference from a deferred runtime lookup into a hard resolve-time
	// error (SPEC_FULL §2.3's `rei.yaml` `strict` project setting).
	Strict bool

	depths resolver.Depths
}

// New constructs an evaluator with an empty global environment. Native
// registration (internal/natives) happens after construction by
// defining values directly on Globals.
func New() *Evaluator {
	return &Evaluator{
		Globals: NewEnvironment(),
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
	}
}

// Run resolves then evaluates a whole program. A non-empty resolver
// error list aborts before any statement executes (spec §4.2, §4.3).
func (e *Evaluator) Run(statements []ast.Stmt) error {
	depths, errs := resolver.Resolve(statements, resolver.Options{
		Strict:      e.Strict,
		KnownGlobal: e.Globals.Has,
	})
	if len(errs) != 0 {
		return errors.Join(errs...)
	}
	e.depths = depths

	ctx := NewExecContext()
	env := e.Globals
	for _, stmt := range statements {
		if err := e.execStmt(stmt, env, ctx); err != nil {
			if cf, ok := asControlFlow(err); ok {
				return fmt.Errorf("%s escaped top-level execution", cf.Error())
			}
			return err
		}
	}
	return nil
}

func (e *Evaluator) print(w io.Writer, v Value) {
	fmt.Fprint(w, v.String())
}
