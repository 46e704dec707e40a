package rei

import "github.com/zyneaa/rei/internal/ast"

// Function is a function or method value: its declaring statement, a
// captured closure environment, and whether it is a class initializer
// (spec §3.5). IsInitializer changes how Return is handled at call
// time rather than being modeled as its own statement variant (spec
// §9 design note).
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func NewFunction(decl *ast.FunctionStmt, closure *Environment) *Function {
	return &Function{Decl: decl, Closure: closure, IsInitializer: decl.IsInitializer}
}

func (*Function) valueNode()       {}
func (f *Function) String() string { return "<fn " + f.Decl.Name.Lexeme + ">" }

func (f *Function) Arity() int { return len(f.Decl.Params) }

func (f *Function) DisplayName() string { return f.Decl.Name.Lexeme }

func (f *Function) AsClass() (*Class, bool) { return nil, false }

// Bind returns a new Function whose closure is a fresh one-entry
// environment `{"this" -> instance}` chained to the original
// declaration closure (spec §3.5) — the binding performed at method
// lookup time, not at declaration time, so every instance gets its own
// `this`.
func (f *Function) Bind(instance *InstanceValue) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

func (f *Function) Call(e *Evaluator, args []Value, ctx *ExecContext) (Value, error) {
	callEnv := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := e.execBlock(f.Decl.Body, callEnv, ctx)
	if err == nil {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return Null{}, nil
	}

	cf, ok := asControlFlow(err)
	if !ok || cf.Kind != SignalReturn {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	if cf.Value == nil {
		return Null{}, nil
	}
	return cf.Value, nil
}
