package lexer_test

import (
	"testing"

	"github.com/zyneaa/rei/internal/lexer"
	"github.com/zyneaa/rei/internal/token"
)

func TestScanRoundTripsLexemes(t *testing.T) {
	source := `class Dog : Animal {
		init(name) { this.name = name; } // a comment
		speak() { println "Woof, " + this.name; }
	}
	let d = Dog("Rex");
	d.speak();`

	tokens, errs := lexer.New(source, "<test>").Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}

	got := lexer.Render(tokens)
	want := "classDog:Animal{init(name){this.name=name;}speak(){println\"Woof, \"+this.name;}}letd=Dog(\"Rex\");d.speak();"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScanRecognizesAllPunctuationAndOperators(t *testing.T) {
	tokens, errs := lexer.New(`( ) { } , . .. - + ; : / * ! != = == < <= > >= @`, "<test>").Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}

	want := []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.DotDot, token.Minus, token.Plus,
		token.Semicolon, token.Colon, token.Slash, token.Star, token.Bang,
		token.BangEqual, token.Equal, token.EqualEqual, token.Less,
		token.LessEqual, token.Greater, token.GreaterEqual, token.At, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Fatalf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
}

func TestScanKeywordsAndIdentifiersAreDistinguished(t *testing.T) {
	tokens, errs := lexer.New(`class classify`, "<test>").Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Kind != token.Class {
		t.Fatalf("expected %q to scan as the class keyword, got %s", tokens[0].Lexeme, tokens[0].Kind)
	}
	if tokens[1].Kind != token.Identifier {
		t.Fatalf("expected %q to scan as an identifier, got %s", tokens[1].Lexeme, tokens[1].Kind)
	}
}

func TestScanNumberLiteral(t *testing.T) {
	tokens, errs := lexer.New(`3.14 42`, "<test>").Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Literal.(float64) != 3.14 {
		t.Fatalf("got %v, want 3.14", tokens[0].Literal)
	}
	if tokens[1].Literal.(float64) != 42 {
		t.Fatalf("got %v, want 42", tokens[1].Literal)
	}
}

func TestScanUnterminatedStringIsFatal(t *testing.T) {
	tokens, errs := lexer.New(`"unterminated`, "<test>").Scan()
	if tokens != nil {
		t.Fatalf("expected a nil token stream on fatal error, got %v", tokens)
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly one fatal error, got %d", len(errs))
	}
	if _, ok := errs[0].(*lexer.FatalError); !ok {
		t.Fatalf("expected a *lexer.FatalError, got %T", errs[0])
	}
}

func TestScanUnexpectedCharacterIsNonFatal(t *testing.T) {
	tokens, errs := lexer.New(`let x = 1 # 2;`, "<test>").Scan()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one scan error, got %d: %v", len(errs), errs)
	}
	if tokens == nil {
		t.Fatalf("expected scanning to continue past the bad character")
	}
}
