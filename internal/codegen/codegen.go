// Package codegen is an intentionally unfinished code-generation
// backend. A full implementation would inspect a set of native-module
// Go packages (the way funxy's internal/ext inspector loads bind
// targets with golang.org/x/tools/go/packages) and emit Go source
// wiring them into the natives registry. None of that pipeline exists
// yet — Inspect is the only entry point, and it always returns
// ErrNotImplemented. Nothing in cmd/rei or internal/natives calls this
// package.
package codegen

import (
	"errors"

	"golang.org/x/tools/go/packages"
)

// ErrNotImplemented is returned by every Inspect call.
var ErrNotImplemented = errors.New("codegen: native-binding generation is not implemented")

// Binding sketches what a resolved binding would need to carry: enough
// to later emit a natives.Registry.Register call. Left unpopulated by
// Inspect for now.
type Binding struct {
	GoPackagePath string
	GoName        string
	ReiName       string
}

// Inspect would load pkgPaths with golang.org/x/tools/go/packages and
// resolve each to a Binding. It is wired up only far enough to prove
// the dependency is reachable from this package; the loader call
// itself, the binding-resolution walk, and the Go source emission step
// are all missing.
func Inspect(pkgPaths []string) ([]Binding, error) {
	_ = packages.Config{}
	return nil, ErrNotImplemented
}
