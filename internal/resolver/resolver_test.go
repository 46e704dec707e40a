package resolver_test

import (
	"testing"

	"github.com/zyneaa/rei/internal/ast"
	"github.com/zyneaa/rei/internal/lexer"
	"github.com/zyneaa/rei/internal/parser"
	"github.com/zyneaa/rei/internal/resolver"
)

func resolveSource(t *testing.T, source string) (resolver.Depths, []ast.Stmt, []error) {
	t.Helper()
	return resolveSourceWithOptions(t, source, resolver.Options{})
}

func resolveSourceWithOptions(t *testing.T, source string, opts resolver.Options) (resolver.Depths, []ast.Stmt, []error) {
	t.Helper()
	tokens, scanErrs := lexer.New(source, "<test>").Scan()
	if len(scanErrs) != 0 {
		t.Fatalf("unexpected scan errors: %v", scanErrs)
	}
	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	depths, errs := resolver.Resolve(stmts, opts)
	return depths, stmts, errs
}

func TestResolverComputesLocalDepths(t *testing.T) {
	depths, stmts, errs := resolveSource(t, `
		let a = 1;
		{
			let b = 2;
			{
				let c = a + b;
			}
		}
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}

	outer := stmts[1].(*ast.BlockStmt)
	inner := outer.Statements[1].(*ast.BlockStmt)
	cLet := inner.Statements[0].(*ast.LetStmt)
	binary := cLet.Initializer.(*ast.BinaryExpr)

	aRef := binary.Left.(*ast.VariableExpr)
	bRef := binary.Right.(*ast.VariableExpr)

	// 'a' is a top-level global: globals are not tracked in the scope
	// stack, so the reference stays unresolved (a runtime global lookup).
	if depth, ok := depths[aRef.ID()]; ok {
		t.Fatalf("expected global 'a' to stay unresolved, got depth %d", depth)
	}
	if depth, ok := depths[bRef.ID()]; !ok || depth != 1 {
		t.Fatalf("expected 'b' to resolve at depth 1, got %d (ok=%v)", depth, ok)
	}
}

func TestResolverRejectsSelfReferentialInitializer(t *testing.T) {
	_, _, errs := resolveSource(t, `{ let x = x; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for self-referential initializer")
	}
}

func TestResolverRejectsRedeclarationInSameScope(t *testing.T) {
	_, _, errs := resolveSource(t, `{ let x = 1; let x = 2; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for redeclared binding")
	}
}

func TestResolverRejectsReturnOutsideFunction(t *testing.T) {
	_, _, errs := resolveSource(t, `return 1;`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for return outside function")
	}
}

func TestResolverRejectsValueReturnFromInitializer(t *testing.T) {
	_, _, errs := resolveSource(t, `
		class A {
			init() { return 1; }
		}
	`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for returning a value from an initializer")
	}
}

func TestResolverRejectsThisOutsideClass(t *testing.T) {
	_, _, errs := resolveSource(t, `fn f() { return this; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for 'this' outside a class")
	}
}

func TestResolverRejectsThisInsideStaticMethod(t *testing.T) {
	_, _, errs := resolveSource(t, `
		class A {
			static make() { return this; }
		}
	`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for 'this' inside a static method")
	}
}

func TestResolverRejectsSelfInheritance(t *testing.T) {
	_, _, errs := resolveSource(t, `class A : A { }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for a class inheriting from itself")
	}
}

func TestResolverRejectsBreakOutsideLoop(t *testing.T) {
	_, _, errs := resolveSource(t, `break;`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for 'break' outside a loop")
	}
}

func TestResolverRejectsContinueOutsideLoop(t *testing.T) {
	_, _, errs := resolveSource(t, `continue;`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for 'continue' outside a loop")
	}
}

func TestResolverAllowsBreakContinueInsideWhile(t *testing.T) {
	_, _, errs := resolveSource(t, `while (true) { break; continue; }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestResolverRejectsUseStatement(t *testing.T) {
	_, _, errs := resolveSource(t, `use "lib/io" as io;`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for a 'use' statement")
	}
}

func TestResolverResolvesThisInsideMethod(t *testing.T) {
	depths, stmts, errs := resolveSource(t, `
		class A {
			greet() { return this; }
		}
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}
	class := stmts[0].(*ast.ClassStmt)
	method := class.Methods[0]
	ret := method.Body[0].(*ast.ReturnStmt)
	thisExpr := ret.Value.(*ast.ThisExpr)
	if _, ok := depths[thisExpr.ID()]; !ok {
		t.Fatalf("expected 'this' reference to resolve to a scope depth")
	}
}

func TestResolverStrictModeRejectsUndefinedGlobal(t *testing.T) {
	_, _, errs := resolveSourceWithOptions(t, `println ghost;`, resolver.Options{Strict: true})
	if len(errs) == 0 {
		t.Fatalf("expected strict mode to reject a reference to an undeclared global")
	}
}

func TestResolverStrictModeAllowsTopLevelForwardReference(t *testing.T) {
	_, _, errs := resolveSourceWithOptions(t, `
		fn a() { return b(); }
		fn b() { return 1; }
	`, resolver.Options{Strict: true})
	if len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}
}

func TestResolverStrictModeAllowsKnownGlobal(t *testing.T) {
	_, _, errs := resolveSourceWithOptions(t, `println _arity_;`, resolver.Options{
		Strict:      true,
		KnownGlobal: func(name string) bool { return name == "_arity_" },
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}
}

func TestResolverNonStrictModeDefersUndefinedGlobalToRuntime(t *testing.T) {
	_, _, errs := resolveSource(t, `println ghost;`)
	if len(errs) != 0 {
		t.Fatalf("expected no resolve errors outside strict mode, got: %v", errs)
	}
}

func TestResolverAllowsGlobalFunctionForwardReference(t *testing.T) {
	// Globals are not tracked in the scopes stack, so a top-level
	// function may reference another declared later in the file.
	_, _, errs := resolveSource(t, `
		fn a() { return b(); }
		fn b() { return 1; }
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}
}
