// Package natives is the registration contract for reserved,
// host-implemented callables. It mirrors funxy's virtual-package
// builtin registries (internal/evaluator/builtins_*.go, each exposing a
// `map[string]*Builtin`) adapted to rei's Callable shape: a name, an
// *rei.NativeFunc, and a stable identity handle independent of the
// name it is currently registered under.
//
// Individual native implementations (file/socket/time primitives and
// the like) are out of scope here — see SPEC_FULL.md §1/§3. This
// package only builds the plumbing that would let such primitives be
// inserted into a program's global environment under reserved,
// `_X_`-prefixed names, plus a handful of natives trivial enough to sit
// inside the core itself (arity/type introspection helpers a resolver
// or evaluator test can exercise without reaching into native-module
// territory).
package natives

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zyneaa/rei/internal/rei"
)

// Entry pairs a registered native with an identity handle separate
// from its display name (spec §3.5's Callable "downcast hook"
// territory, generalized to the registry itself rather than to any one
// native). Every Register call mints a fresh ID, so a re-registration,
// under the same name or another, yields a new ID.
type Entry struct {
	ID   uuid.UUID
	Name string
	Fn   *rei.NativeFunc
}

// Registry is an ordered collection of reserved natives. Insertion
// order is preserved so Names() and diagnostic dumps are stable across
// runs, matching funxy's map-literal registries being rebuilt fresh
// (and hence re-orderable) on every call — here made deterministic on
// purpose since a registry is built once per Evaluator lifetime.
type Registry struct {
	order   []string
	entries map[string]*Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Reserved returns the conventional global-environment name for a
// native registered under baseName: baseName wrapped in underscores,
// case unchanged (spec §6's "conventionally prefixed _X_").
func Reserved(baseName string) string {
	return "_" + baseName + "_"
}

// Register adds a native under its reserved name, minting a fresh
// identity handle. Re-registering the same baseName replaces the
// previous entry but keeps its position in Names().
func (r *Registry) Register(baseName string, fn *rei.NativeFunc) *Entry {
	name := Reserved(baseName)
	fn.Name = name
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	e := &Entry{ID: uuid.New(), Name: name, Fn: fn}
	r.entries[name] = e
	return e
}

// Lookup returns the entry registered under the reserved name, if any.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns the reserved names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Bind defines every registered native on env under its reserved name.
// rei.New binds no natives itself; a caller binds onto an Evaluator's
// Globals after construction.
func (r *Registry) Bind(env *rei.Environment) {
	for _, name := range r.order {
		env.Define(name, r.entries[name].Fn)
	}
}

// Core returns the small set of natives trivial enough to live inside
// the interpreter core itself — runtime arity/display introspection
// over any Callable value, grounded on funxy's own `typeOf`/`getType`
// builtins (internal/evaluator/builtins_*.go) but narrowed to the
// Callable capability this core actually exposes.
func Core() *Registry {
	r := NewRegistry()

	r.Register("arity", &rei.NativeFunc{
		ArityN: 1,
		Fn: func(_ *rei.Evaluator, args []rei.Value, ctx *rei.ExecContext) (rei.Value, error) {
			callable, ok := args[0].(rei.Callable)
			if !ok {
				return nil, fmt.Errorf("_arity_ expects a callable argument")
			}
			return rei.Number(callable.Arity()), nil
		},
	})

	r.Register("display_name", &rei.NativeFunc{
		ArityN: 1,
		Fn: func(_ *rei.Evaluator, args []rei.Value, ctx *rei.ExecContext) (rei.Value, error) {
			callable, ok := args[0].(rei.Callable)
			if !ok {
				return nil, fmt.Errorf("_display_name_ expects a callable argument")
			}
			return rei.Str(callable.DisplayName()), nil
		},
	})

	return r
}
