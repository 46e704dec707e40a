// Package rei implements the tree-walking evaluator: runtime values,
// lexical environments, callables, and the statement/expression
// dispatch that drives observable program effects.
package rei

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is the runtime tagged union (spec §3.3). Every concrete type
// below implements it; type switches over Value are the evaluator's
// single source of dispatch for operator semantics.
type Value interface {
	valueNode()
	String() string
}

// Number is the sole numeric representation; integers and floats are
// not distinguished at the value level.
type Number float64

func (Number) valueNode() {}
func (n Number) String() string {
	if n == Number(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

type Bool bool

func (Bool) valueNode() {}
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

type Str string

func (Str) valueNode() {}
func (s Str) String() string { return string(s) }

// Null is the sole absent-value representation.
type Null struct{}

func (Null) valueNode() {}
func (Null) String() string { return "null" }

// Range is `start..end`, both integral (spec §4.4.4).
type Range struct {
	Start Number
	End   Number
}

func (Range) valueNode() {}
func (r Range) String() string {
	return fmt.Sprintf("<range | %s..%s>", r.Start, r.End)
}

// ByteBlock is a fixed-size raw byte buffer, the Value-level handle
// native memory-block primitives operate on (spec §3.3; the primitives
// themselves are out of core scope — SPEC_FULL §3).
type ByteBlock struct {
	Handle string
	Size   int
	Data   []byte
}

func (*ByteBlock) valueNode() {}
func (b *ByteBlock) String() string {
	return fmt.Sprintf("<mblock | ptr:%s size:%d>", b.Handle, b.Size)
}

// List is a shared, mutable sequence of values.
type List struct {
	Elements []Value
}

func (*List) valueNode() {}
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Exception wraps an owned RuntimeError so it can travel through the
// Value channel — e.g. bound to a `fail` identifier (spec §4.4.9).
type Exception struct {
	Err *RuntimeError
}

func (*Exception) valueNode() {}
func (e *Exception) String() string { return e.Err.Message }

// Dummy is a placeholder sentinel value. It must never be observable
// to a user program (spec §3.3); the evaluator does not bind it
// anywhere.
type Dummy struct{}

func (Dummy) valueNode() {}
func (Dummy) String() string { return "<dummy>" }

// InstanceValue is a live object: a shared class reference plus a
// shared mutable field map (spec §3.5).
type InstanceValue struct {
	Class  *Class
	Fields map[string]Value
}

func (*InstanceValue) valueNode() {}
func (i *InstanceValue) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<instance of %s>\n", i.Class.Name)
	fmt.Fprintf(&b, "  properties: %s\n", strings.Join(sortedKeys(i.Fields), ", "))
	fmt.Fprintf(&b, "  static methods: %s\n", strings.Join(i.Class.staticMethodNames(), ", "))
	fmt.Fprintf(&b, "  methods: %s", strings.Join(i.Class.methodNames(), ", "))
	return b.String()
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Truthy implements the truthiness rule of spec §3.3: Null and
// Bool(false) are false; everything else is true.
func Truthy(v Value) bool {
	switch n := v.(type) {
	case Null:
		return false
	case Bool:
		return bool(n)
	default:
		return true
	}
}

// Equal implements the structural equality of spec §3.3: Number/Bool/
// Str/Null compare by value; every other pairing is false, including a
// value compared against one of a different concrete type.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Null:
		_, ok := b.(Null)
		return ok
	default:
		return false
	}
}
