package rei

import "github.com/zyneaa/rei/internal/ast"

// evalMeta implements the four built-in `@`-prefixed meta methods
// (spec §4.4.8). Each requires `this` to be resolvable at the call
// site; the resolver records that depth keyed by the MetaExpr's own
// id (see internal/resolver/expressions.go).
func (e *Evaluator) evalMeta(n *ast.MetaExpr, env *Environment, ctx *ExecContext) (Value, error) {
	depth, ok := e.depths[n.ID()]
	if !ok {
		return nil, newRuntimeError(ctx, ErrorInReflection, n.At, "reflection call outside of a resolvable 'this'")
	}
	thisVal := env.GetAt(depth, "this")
	instance, ok := thisVal.(*InstanceValue)
	if !ok {
		return nil, newRuntimeError(ctx, ErrorInReflection, n.At, "reflection call target is not an instance")
	}

	args := make([]Value, len(n.Args))
	for i, argExpr := range n.Args {
		val, err := e.evalExpr(argExpr, env, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	switch n.MethodName.Lexeme {
	case "typeof":
		// Unlike the other three meta methods, @typeof takes its target
		// instance as an explicit first argument (conventionally `this`)
		// rather than operating implicitly on the enclosing `this` (spec
		// §4.4.8).
		if len(args) != 2 {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "@typeof expects an instance and a class-name argument")
		}
		target, ok := args[0].(*InstanceValue)
		if !ok {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "@typeof's first argument must be an instance")
		}
		className, ok := args[1].(Str)
		if !ok {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "@typeof's second argument must be a string")
		}
		return Bool(target.Class.HasAncestor(string(className))), nil

	case "destroy":
		if len(args) != 1 {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "@destroy expects a field-name argument")
		}
		fieldName, ok := args[0].(Str)
		if !ok {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "@destroy expects a string argument")
		}
		if _, exists := instance.Fields[string(fieldName)]; !exists {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "field %q does not exist", fieldName)
		}
		delete(instance.Fields, string(fieldName))
		return Null{}, nil

	case "exist":
		if len(args) != 1 {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "@exist expects a field-name argument")
		}
		fieldName, ok := args[0].(Str)
		if !ok {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "@exist expects a string argument")
		}
		_, exists := instance.Fields[string(fieldName)]
		return Bool(exists), nil

	case "mutate":
		if len(args) != 2 {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "@mutate expects a field-name and a value")
		}
		fieldName, ok := args[0].(Str)
		if !ok {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "@mutate expects a string field name")
		}
		name := string(fieldName)
		_, hasField := instance.Fields[name]
		_, hasMethod := instance.Class.FindMethod(name)
		if !hasField && !hasMethod {
			return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "field or method %q does not exist", name)
		}
		instance.Fields[name] = args[1]
		return Null{}, nil

	default:
		return nil, newRuntimeError(ctx, ErrorInReflection, n.MethodName, "unknown reflection method %q", n.MethodName.Lexeme)
	}
}
