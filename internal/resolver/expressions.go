package resolver

import "github.com/zyneaa/rei/internal/ast"

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case nil:
		return

	case *ast.LiteralExpr:
		return

	case *ast.GroupingExpr:
		r.resolveExpr(n.Inner)

	case *ast.UnaryExpr:
		r.resolveExpr(n.Operand)

	case *ast.BinaryExpr:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if b, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !b.defined {
				r.error(n.Name, "cannot read a local variable in its own initializer")
			}
		}
		if !r.resolveLocal(n.ID(), n.Name) {
			r.checkStrictGlobal(n.Name)
		}

	case *ast.AssignExpr:
		r.resolveExpr(n.Value)
		if !r.resolveLocal(n.ID(), n.Name) {
			r.checkStrictGlobal(n.Name)
		}

	case *ast.CallExpr:
		r.resolveExpr(n.Callee)
		for _, arg := range n.Args {
			r.resolveExpr(arg)
		}

	case *ast.GetExpr:
		r.resolveExpr(n.Object)

	case *ast.SetExpr:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)

	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.error(n.Keyword, "cannot use 'this' outside of a class method")
			return
		}
		if r.currentFunction == funcStatic {
			r.error(n.Keyword, "cannot use 'this' inside a static method")
			return
		}
		r.resolveLocal(n.ID(), n.Keyword)

	case *ast.RangeExpr:
		r.resolveExpr(n.Start)
		r.resolveExpr(n.End)

	case *ast.MetaExpr:
		if r.currentClass == classNone {
			r.error(n.At, "reflection calls are only resolvable inside a class method")
		} else {
			// Meta calls operate on the enclosing `this`; record the same
			// scope depth a This expression at this position would get,
			// keyed by the Meta node's own id (spec §4.3 resolver
			// responsibility list groups Variable/This/Assign/Meta).
			thisTok := n.At
			thisTok.Lexeme = "this"
			r.resolveLocal(n.ID(), thisTok)
		}
		for _, arg := range n.Args {
			r.resolveExpr(arg)
		}
	}
}
