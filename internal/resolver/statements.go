package resolver

import "github.com/zyneaa/rei/internal/ast"

// ErrUseUnsupported is recorded whenever a `use` statement is
// encountered. The statement parses (SPEC_FULL §5.2) but the core has
// no module-loading semantics, so the resolver rejects it outright
// rather than guessing a file-resolution scheme.
const ErrUseUnsupported = "the 'use' statement is not implemented by this core; see SPEC_FULL.md open question 2"

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(n.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(n.Expression)

	case *ast.PrintLnStmt:
		r.resolveExpr(n.Expression)

	case *ast.LetStmt:
		r.declare(n.Name)
		r.resolveExpr(n.Initializer)
		r.define(n.Name)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStatements(n.Statements)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.WhileStmt:
		r.loopDepth++
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)
		r.loopDepth--

	case *ast.LoopStepStmt:
		r.beginScope()
		r.resolveStmt(n.Body)
		r.resolveStmt(n.Step)
		r.endScope()

	case *ast.FunctionStmt:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, funcFunction)

	case *ast.ReturnStmt:
		if r.currentFunction == funcNone {
			r.error(n.Keyword, "cannot return from top-level code")
		}
		if n.Value != nil {
			if r.currentFunction == funcInitializer {
				r.error(n.Keyword, "cannot return a value from an initializer")
			}
			r.resolveExpr(n.Value)
		}

	case *ast.ClassStmt:
		r.resolveClass(n)

	case *ast.ThrowStmt:
		r.resolveExpr(n.Expression)

	case *ast.FatalStmt:
		r.resolveExpr(n.Expression)

	case *ast.ExceptionStmt:
		r.resolveStmt(n.DoBlock)
		if n.FailBinding != nil {
			r.declare(n.FailBinding.Name)
			r.define(n.FailBinding.Name)
		}
		r.resolveStmt(n.FailBlock)
		if n.FinishBlock != nil {
			r.resolveStmt(n.FinishBlock)
		}

	case *ast.BreakStmt:
		if r.loopDepth == 0 {
			r.error(n.Token(), "cannot use 'break' outside of a loop")
		}

	case *ast.ContinueStmt:
		if r.loopDepth == 0 {
			r.error(n.Token(), "cannot use 'continue' outside of a loop")
		}

	case *ast.UseStmt:
		r.error(n.Token(), ErrUseUnsupported)

	default:
		// unreachable for a well-formed parser output
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosing := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosing
}

// resolveClass validates superclass self-reference, pushes the
// intermediate superclass scope and the `this` scope (spec §4.3), and
// resolves every method body.
func (r *Resolver) resolveClass(c *ast.ClassStmt) {
	r.declare(c.Name)
	r.define(c.Name)

	enclosingClass := r.currentClass
	r.currentClass = classInClass

	for _, super := range c.Superclasses {
		if super.Name.Lexeme == c.Name.Lexeme {
			r.error(super.Name, "a class cannot inherit from itself")
		}
		r.resolveExpr(super)
	}

	if len(c.Superclasses) > 0 {
		r.beginScope()
		for _, super := range c.Superclasses {
			r.declare(super.Name)
			r.define(super.Name)
		}
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = &binding{defined: true}

	for _, method := range c.Methods {
		typ := funcMethod
		if method.IsInitializer {
			typ = funcInitializer
		}
		r.resolveFunction(method, typ)
	}
	for _, method := range c.StaticMethods {
		r.resolveFunction(method, funcStatic)
	}

	r.endScope() // this

	if len(c.Superclasses) > 0 {
		r.endScope() // superclasses
	}

	r.currentClass = enclosingClass
}
