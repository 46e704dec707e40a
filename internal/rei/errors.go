package rei

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zyneaa/rei/internal/token"
)

// ErrorKind enumerates the typed runtime-error variants (spec §3.6).
type ErrorKind int

const (
	UndefinedVariable ErrorKind = iota
	TypeMismatch
	DividedByZero
	OperandMustBeNumber
	InvalidOperator
	UnexpectedBinaryOperation
	InvalidArguments
	NotCallable
	InvalidRange
	InvalidRangeType
	PropertyError
	UndefinedProperty
	ErrorInNativeFn
	ErrorInReflection
	IoError
	ParentClassError
	CustomMsg
	CustomMsgFatal
)

var errorKindNames = map[ErrorKind]string{
	UndefinedVariable:         "UndefinedVariable",
	TypeMismatch:              "TypeMismatch",
	DividedByZero:             "DividedByZero",
	OperandMustBeNumber:       "OperandMustBeNumber",
	InvalidOperator:           "InvalidOperator",
	UnexpectedBinaryOperation: "UnexpectedBinaryOperation",
	InvalidArguments:          "InvalidArguments",
	NotCallable:               "NotCallable",
	InvalidRange:              "InvalidRange",
	InvalidRangeType:          "InvalidRangeType",
	PropertyError:             "PropertyError",
	UndefinedProperty:         "UndefinedProperty",
	ErrorInNativeFn:           "ErrorInNativeFn",
	ErrorInReflection:         "ErrorInReflection",
	IoError:                   "IoError",
	ParentClassError:          "ParentClassError",
	CustomMsg:                 "CustomMsg",
	CustomMsgFatal:            "CustomMsgFatal",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "UnknownErrorKind"
}

// Recoverable reports whether a `do/fail` block may catch an error of
// this kind (spec §4.4.9); only CustomMsg is recoverable.
func (k ErrorKind) Recoverable() bool { return k == CustomMsg }

// CallFrame records one in-flight callable invocation: its display
// name and the call-site source location (spec §3.6).
type CallFrame struct {
	Name   string
	Line   int
	Column int
}

// ExecContext holds the growable call-frame stack consulted to render
// a reversed stack trace on error (spec §3.6, §7).
type ExecContext struct {
	RunID uuid.UUID
	Stack []CallFrame
}

// NewExecContext starts a fresh execution context with a unique run
// identifier, used to disambiguate concurrently-running interpreters
// sharing a process (e.g. embedding scenarios).
func NewExecContext() *ExecContext {
	return &ExecContext{RunID: uuid.New()}
}

func (c *ExecContext) push(frame CallFrame) { c.Stack = append(c.Stack, frame) }

func (c *ExecContext) pop() {
	if len(c.Stack) > 0 {
		c.Stack = c.Stack[:len(c.Stack)-1]
	}
}

func (c *ExecContext) snapshot() []CallFrame {
	frames := make([]CallFrame, len(c.Stack))
	copy(frames, c.Stack)
	return frames
}

// RuntimeError bundles a typed error kind with a snapshot of the
// execution context active when it was raised (spec §3.6).
type RuntimeError struct {
	Kind    ErrorKind
	Message string
	Tok     token.Token
	Stack   []CallFrame
	RunID   uuid.UUID
}

func (e *RuntimeError) Error() string {
	if e.Tok.Lexeme != "" {
		return fmt.Sprintf("[line %d] %s at %q: %s", e.Tok.Line, e.Kind, e.Tok.Lexeme, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Report renders the full user-visible diagnostic: kind, offending
// token, originating run id, and a reversed (innermost-first) stack
// trace (spec §3.6, §7).
func (e *RuntimeError) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Message)
	fmt.Fprintf(&b, "  run %s\n", e.RunID)
	if e.Tok.Lexeme != "" {
		fmt.Fprintf(&b, "  at %q (line %d, col %d)\n", e.Tok.Lexeme, e.Tok.Line, e.Tok.Column)
	}
	for i := len(e.Stack) - 1; i >= 0; i-- {
		f := e.Stack[i]
		fmt.Fprintf(&b, "  in %s (line %d, col %d)\n", f.Name, f.Line, f.Column)
	}
	return b.String()
}

func newRuntimeError(ctx *ExecContext, kind ErrorKind, tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Tok:     tok,
		Stack:   ctx.snapshot(),
		RunID:   ctx.RunID,
	}
}
