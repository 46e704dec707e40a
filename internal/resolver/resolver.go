// Package resolver implements the single static pre-execution pass that
// computes, for every variable reference, how many lexical scopes
// separate it from its enclosing environment (spec §4.3). The result is
// a side table the evaluator consults instead of walking the
// environment chain to the global frame on every lookup.
package resolver

import (
	"fmt"

	"github.com/zyneaa/rei/internal/ast"
	"github.com/zyneaa/rei/internal/token"
)

// Depths is the {ExprId -> scope depth} side table the Resolver
// produces and the Evaluator consumes.
type Depths map[int64]int

// Error is a single resolution diagnostic.
type Error struct {
	Tok     token.Token
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] resolve error at %q: %s", e.Tok.Line, e.Tok.Lexeme, e.Message)
}

type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcMethod
	funcInitializer
	funcStatic
)

type classType int

const (
	classNone classType = iota
	classInClass
)

// binding tracks whether a name has been declared (scope slot reserved)
// or fully defined (initializer resolved) — the two-phase flag spec §4.3
// uses to reject self-referential initializers.
type binding struct{ defined bool }

// Resolver walks the statement tree exactly once.
type Resolver struct {
	scopes          []map[string]*binding
	depths          Depths
	currentFunction functionType
	currentClass    classType
	loopDepth       int
	errors          []error

	strict      bool
	knownGlobal func(name string) bool
	topLevel    map[string]bool
}

func New() *Resolver {
	return &Resolver{depths: make(Depths), topLevel: make(map[string]bool)}
}

// Options configures a Resolve pass. The zero value is fully
// permissive: non-strict, with no known-global check, matching the
// resolver's original always-defer-to-runtime behavior.
type Options struct {
	// Strict upgrades a variable reference that resolves to neither a
	// lexical scope, a name declared elsewhere at top level, nor
	// KnownGlobal into a hard resolver error instead of deferring it to
	// a runtime global lookup (SPEC_FULL §2.3's `strict` project
	// setting).
	Strict bool
	// KnownGlobal reports whether name is already bound in the global
	// environment — e.g. a native registered before Resolve runs.
	// Consulted only when Strict is set.
	KnownGlobal func(name string) bool
}

// Resolve runs the pass over a whole program and returns the
// {ExprId -> depth} table plus any accumulated errors. A non-empty
// error list means the tree must not be evaluated (spec §4.3).
func Resolve(statements []ast.Stmt, opts Options) (Depths, []error) {
	r := New()
	r.strict = opts.Strict
	r.knownGlobal = opts.KnownGlobal
	if opts.Strict {
		r.collectTopLevelNames(statements)
	}
	r.resolveStatements(statements)
	return r.depths, r.errors
}

// collectTopLevelNames pre-scans top-level declarations so a strict-mode
// reference to a name declared later in the same file (e.g. a function
// calling another defined further down) is not mistaken for an
// undefined variable.
func (r *Resolver) collectTopLevelNames(statements []ast.Stmt) {
	for _, s := range statements {
		switch n := s.(type) {
		case *ast.LetStmt:
			r.topLevel[n.Name.Lexeme] = true
		case *ast.FunctionStmt:
			r.topLevel[n.Name.Lexeme] = true
		case *ast.ClassStmt:
			r.topLevel[n.Name.Lexeme] = true
		}
	}
}

// checkStrictGlobal enforces Options.Strict: a name that resolveLocal
// could not find in any lexical scope is flagged here unless it is a
// top-level declaration or a recognized global.
func (r *Resolver) checkStrictGlobal(name token.Token) {
	if !r.strict || r.topLevel[name.Lexeme] {
		return
	}
	if r.knownGlobal != nil && r.knownGlobal(name.Lexeme) {
		return
	}
	r.error(name, fmt.Sprintf("undefined variable %q (strict mode)", name.Lexeme))
}

func (r *Resolver) error(tok token.Token, message string) {
	r.errors = append(r.errors, &Error{Tok: tok, Message: message})
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]*binding{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.error(name, fmt.Sprintf("%q is already declared in this scope", name.Lexeme))
	}
	scope[name.Lexeme] = &binding{defined: false}
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = &binding{defined: true}
}

// resolveLocal walks scopes from innermost outward; a hit records the
// depth in the side table and reports true. A miss leaves the
// expression unresolved — it becomes a global lookup at run time (spec
// §4.3.1) — and reports false so the caller may apply Options.Strict.
func (r *Resolver) resolveLocal(exprID int64, name token.Token) bool {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.depths[exprID] = len(r.scopes) - 1 - i
			return true
		}
	}
	return false
}
