package main_test

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/zyneaa/rei/internal/lexer"
	"github.com/zyneaa/rei/internal/parser"
	"github.com/zyneaa/rei/internal/rei"
)

// runFixture drives the same scan → parse → resolve → evaluate pipeline
// cmd/rei's run command does, capturing stdout as the observable
// fixture result (spec §8's source-in/stdout-out scenarios).
func runFixture(t *testing.T, source string) string {
	t.Helper()
	tokens, scanErrs := lexer.New(source, "<fixture>").Scan()
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
	if err := ev.Run(stmts); err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	return out.String()
}

func TestFixtureClosures(t *testing.T) {
	got := runFixture(t, `
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
	snaps.MatchSnapshot(t, "closures_output", got)
}

func TestFixtureInheritance(t *testing.T) {
	got := runFixture(t, `
		class Animal { speak() { println "..."; } }
		class Dog : Animal { speak() { println "Woof"; } }
		class Puppy : Dog {}
		let p = Puppy();
		p.speak();
	`)
	snaps.MatchSnapshot(t, "inheritance_output", got)
}

func TestFixtureExceptionBinding(t *testing.T) {
	got := runFixture(t, `
		do {
			throw "disk full";
		} fail (let e) {
			println "caught: " + e;
		} finish {
			println "cleanup";
		}
	`)
	snaps.MatchSnapshot(t, "exception_binding_output", got)
}

func TestFixtureForLoopDesugar(t *testing.T) {
	got := runFixture(t, `
		for (let i = 0; i < 4; i = i + 1) {
			if (i == 2) { continue; }
			println i;
		}
	`)
	snaps.MatchSnapshot(t, "for_loop_desugar_output", got)
}

func TestFixtureShortCircuit(t *testing.T) {
	got := runFixture(t, `
		fn noisy(tag) { println tag; return false; }
		println (false and noisy("skipped"));
		println (true or noisy("skipped"));
	`)
	snaps.MatchSnapshot(t, "short_circuit_output", got)
}
