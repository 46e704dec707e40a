package rei_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/zyneaa/rei/internal/lexer"
	"github.com/zyneaa/rei/internal/parser"
	"github.com/zyneaa/rei/internal/rei"
)

func runSource(t *testing.T, source string) (string, error) {
	t.Helper()
	tokens, scanErrs := lexer.New(source, "<test>").Scan()
	if len(scanErrs) != 0 {
		t.Fatalf("unexpected scan errors: %v", scanErrs)
	}
	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}

	var out bytes.Buffer
	ev := rei.New()
	ev.Out = &out
	err := ev.Run(stmts)
	return out.String(), err
}

func TestStrictModeRejectsUndefinedGlobalBeforeExecution(t *testing.T) {
	tokens, scanErrs := lexer.New(`println ghost;`, "<test>").Scan()
	if len(scanErrs) != 0 {
		t.Fatalf("unexpected scan errors: %v", scanErrs)
	}
	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}

	var out bytes.Buffer
	ev := rei.New()
	ev.Out = &out
	ev.Strict = true
	if err := ev.Run(stmts); err == nil {
		t.Fatalf("expected strict mode to reject an undefined global reference")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output once resolution fails, got %q", out.String())
	}
}

func TestStrictModeAllowsRegisteredGlobal(t *testing.T) {
	tokens, scanErrs := lexer.New(`println greeting;`, "<test>").Scan()
	if len(scanErrs) != 0 {
		t.Fatalf("unexpected scan errors: %v", scanErrs)
	}
	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}

	var out bytes.Buffer
	ev := rei.New()
	ev.Out = &out
	ev.Globals.Define("greeting", rei.Str("hi"))
	ev.Strict = true
	if err := ev.Run(stmts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "hi\n"; out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestClosuresCaptureByLexicalScope(t *testing.T) {
	got, err := runSource(t, `
		fn counter() {
			let n = 0;
			fn tick() { n = n + 1; return n; }
			return tick;
		}
		let t = counter();
		println t();
		println t();
		println t();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "1\n2\n3\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSingleInheritanceMethodLookup(t *testing.T) {
	got, err := runSource(t, `
		class A { greet() { println "A"; } }
		class B : A {}
		let x = B();
		x.greet();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "A\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRecoverableExceptionBinding(t *testing.T) {
	got, err := runSource(t, `
		do { throw "boom"; } fail (let e) { println e; } finish { println "done"; }
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "boom\ndone\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestForLoopDesugarPreservesStepAfterBody(t *testing.T) {
	got, err := runSource(t, `
		for (let i = 0; i < 3; i = i + 1) { println i; }
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "0\n1\n2\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestForLoopContinueStillRunsStep(t *testing.T) {
	got, err := runSource(t, `
		for (let i = 0; i < 4; i = i + 1) {
			if (i == 2) { continue; }
			println i;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "0\n1\n3\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLoopDesugarContinueStillRunsIncrement(t *testing.T) {
	got, err := runSource(t, `
		loop (let i = 0..4; 1) {
			if (i == 2) { continue; }
			println i;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "0\n1\n3\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestShortCircuitEvaluation(t *testing.T) {
	got, err := runSource(t, `
		fn bad() { println "X"; return true; }
		println (true or bad());
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "true\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	_, err := runSource(t, `println 1/0;`)
	if err == nil {
		t.Fatalf("expected an error")
	}
	re, ok := err.(*rei.RuntimeError)
	if !ok {
		t.Fatalf("expected a *rei.RuntimeError, got %T", err)
	}
	if re.Kind != rei.DividedByZero {
		t.Fatalf("expected DividedByZero, got %s", re.Kind)
	}
	var zero uuid.UUID
	if re.RunID == zero {
		t.Fatalf("expected a non-zero RunID carried on the error")
	}
	if !strings.Contains(re.Report(), re.RunID.String()) {
		t.Fatalf("expected Report() to include the run id, got %q", re.Report())
	}
}

func TestLoopDesugarWithLiteralStep(t *testing.T) {
	got, err := runSource(t, `
		loop (let i = 0..3; 1) { println i; }
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "0\n1\n2\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReflectionTypeofAndMutate(t *testing.T) {
	got, err := runSource(t, `
		class Animal {
			init(name) { this.name = name; }
			describe() {
				println @typeof(this, "Animal");
				@mutate("name", "renamed");
				println this.name;
			}

		}
		let a = Animal("rex");
		a.describe();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "true\nrenamed\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStaticMethodCannotReferenceThis(t *testing.T) {
	_, err := runSource(t, `
		class A { static make() { return this; } }
	`)
	if err == nil {
		t.Fatalf("expected a resolve error")
	}
}

func TestClassSelfInheritanceRejected(t *testing.T) {
	_, err := runSource(t, `class A : A {}`)
	if err == nil {
		t.Fatalf("expected a resolve error")
	}
}

func TestUnrecoverableFatalPropagatesAsError(t *testing.T) {
	_, err := runSource(t, `fatal "unrecoverable";`)
	if err == nil {
		t.Fatalf("expected an error")
	}
	re, ok := err.(*rei.RuntimeError)
	if !ok {
		t.Fatalf("expected a *rei.RuntimeError, got %T", err)
	}
	if re.Kind != rei.CustomMsgFatal {
		t.Fatalf("expected CustomMsgFatal, got %s", re.Kind)
	}
}

func TestNotCallableProducesTypedError(t *testing.T) {
	_, err := runSource(t, `let x = 1; x();`)
	if err == nil {
		t.Fatalf("expected an error")
	}
	re, ok := err.(*rei.RuntimeError)
	if !ok {
		t.Fatalf("expected a *rei.RuntimeError, got %T", err)
	}
	if re.Kind != rei.NotCallable {
		t.Fatalf("expected NotCallable, got %s", re.Kind)
	}
}

func TestRangeRejectsDescendingBounds(t *testing.T) {
	_, err := runSource(t, `let r = 5..1;`)
	if err == nil {
		t.Fatalf("expected an error")
	}
	re, ok := err.(*rei.RuntimeError)
	if !ok {
		t.Fatalf("expected a *rei.RuntimeError, got %T", err)
	}
	if re.Kind != rei.InvalidRange {
		t.Fatalf("expected InvalidRange, got %s", re.Kind)
	}
}
