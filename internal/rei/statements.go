package rei

import (
	"fmt"

	"github.com/zyneaa/rei/internal/ast"
)

func (e *Evaluator) execStmt(stmt ast.Stmt, env *Environment, ctx *ExecContext) error {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := e.evalExpr(n.Expression, env, ctx)
		return err

	case *ast.PrintStmt:
		val, err := e.evalExpr(n.Expression, env, ctx)
		if err != nil {
			return err
		}
		e.print(e.Out, val)
		return nil

	case *ast.PrintLnStmt:
		val, err := e.evalExpr(n.Expression, env, ctx)
		if err != nil {
			return err
		}
		e.print(e.Out, val)
		fmt.Fprintln(e.Out)
		return nil

	case *ast.LetStmt:
		val, err := e.evalExpr(n.Initializer, env, ctx)
		if err != nil {
			return err
		}
		env.Define(n.Name.Lexeme, val)
		return nil

	case *ast.BlockStmt:
		return e.execBlock(n.Statements, NewEnclosedEnvironment(env), ctx)

	case *ast.IfStmt:
		cond, err := e.evalExpr(n.Condition, env, ctx)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return e.execStmt(n.Then, env, ctx)
		}
		if n.Else != nil {
			return e.execStmt(n.Else, env, ctx)
		}
		return nil

	case *ast.WhileStmt:
		return e.execWhile(n, env, ctx)

	case *ast.LoopStepStmt:
		return e.execLoopStep(n, env, ctx)

	case *ast.FunctionStmt:
		env.Define(n.Name.Lexeme, NewFunction(n, env))
		return nil

	case *ast.ReturnStmt:
		var val Value = Null{}
		if n.Value != nil {
			v, err := e.evalExpr(n.Value, env, ctx)
			if err != nil {
				return err
			}
			val = v
		}
		return &ControlFlow{Kind: SignalReturn, Value: val}

	case *ast.ClassStmt:
		return e.execClassDecl(n, env, ctx)

	case *ast.ThrowStmt:
		val, err := e.evalExpr(n.Expression, env, ctx)
		if err != nil {
			return err
		}
		return newRuntimeError(ctx, CustomMsg, n.Token(), "%s", val.String())

	case *ast.FatalStmt:
		val, err := e.evalExpr(n.Expression, env, ctx)
		if err != nil {
			return err
		}
		return newRuntimeError(ctx, CustomMsgFatal, n.Token(), "%s", val.String())

	case *ast.ExceptionStmt:
		return e.execException(n, env, ctx)

	case *ast.BreakStmt:
		return &ControlFlow{Kind: SignalBreak}

	case *ast.ContinueStmt:
		return &ControlFlow{Kind: SignalContinue}

	case *ast.UseStmt:
		// The resolver rejects `use` before any statement executes
		// (internal/resolver/statements.go); reaching this case is a
		// contract violation.
		return newRuntimeError(ctx, IoError, n.Token(), "'use' statements are not supported by this core")
	}
	return nil
}

// execBlock runs a statement sequence against a caller-supplied
// environment — the fresh child frame for a `{}` block, or the
// call-time frame for a function body (spec §4.4.1, §4.4.6).
func (e *Evaluator) execBlock(statements []ast.Stmt, env *Environment, ctx *ExecContext) error {
	for _, stmt := range statements {
		if err := e.execStmt(stmt, env, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execWhile(n *ast.WhileStmt, env *Environment, ctx *ExecContext) error {
	for {
		cond, err := e.evalExpr(n.Condition, env, ctx)
		if err != nil {
			return err
		}
		if !Truthy(cond) {
			return nil
		}
		err = e.execStmt(n.Body, env, ctx)
		if err == nil {
			continue
		}
		cf, ok := asControlFlow(err)
		if !ok {
			return err
		}
		switch cf.Kind {
		case SignalBreak:
			return nil
		case SignalContinue:
			continue
		default: // SignalReturn
			return err
		}
	}
}

// execLoopStep runs a for/loop body and then unconditionally runs its
// paired step, even when the body signals `continue` — continue skips
// the rest of the body, not the increment itself (spec §4.4.6). Break
// and return still propagate straight through without running step.
func (e *Evaluator) execLoopStep(n *ast.LoopStepStmt, env *Environment, ctx *ExecContext) error {
	loopEnv := NewEnclosedEnvironment(env)
	err := e.execStmt(n.Body, loopEnv, ctx)
	if err != nil {
		cf, ok := asControlFlow(err)
		if !ok || cf.Kind != SignalContinue {
			return err
		}
	}
	return e.execStmt(n.Step, loopEnv, ctx)
}

// execClassDecl declares a class's name as Null to enable
// self-reference, resolves its superclass expressions (each must
// downcast to a Class, else ParentClassError), constructs an
// intermediate environment holding the base classes keyed by their
// own name so method bodies can reference them, builds the class
// value, and rebinds the original name to it (spec §4.4.7).
func (e *Evaluator) execClassDecl(n *ast.ClassStmt, env *Environment, ctx *ExecContext) error {
	env.Define(n.Name.Lexeme, Null{})

	var superclasses []*Class
	for _, superExpr := range n.Superclasses {
		val, err := e.lookupVariable(env, superExpr.ID(), superExpr.Name, ctx)
		if err != nil {
			return err
		}
		callable, ok := val.(Callable)
		if !ok {
			return newRuntimeError(ctx, ParentClassError, superExpr.Name, "superclass %q is not callable", superExpr.Name.Lexeme)
		}
		super, ok := callable.AsClass()
		if !ok {
			return newRuntimeError(ctx, ParentClassError, superExpr.Name, "superclass %q is not a class", superExpr.Name.Lexeme)
		}
		superclasses = append(superclasses, super)
	}

	baseEnv := env
	if len(superclasses) > 0 {
		baseEnv = NewEnclosedEnvironment(env)
		for _, super := range superclasses {
			baseEnv.Define(super.Name, super)
		}
	}

	class := NewClass(n.Name.Lexeme, superclasses)

	// Static methods are never Bind()-ed with a per-instance `this`
	// environment, but the resolver unconditionally pushes a `this`
	// scope around every method body (spec §4.3 responsibility 3). An
	// empty pass-through frame here keeps scope-depth arithmetic
	// aligned with what the resolver assumed, without ever defining
	// "this" in it.
	staticClosure := NewEnclosedEnvironment(baseEnv)
	for _, method := range n.StaticMethods {
		class.AddStaticMethod(method.Name.Lexeme, NewFunction(method, staticClosure))
	}
	for _, method := range n.Methods {
		class.AddMethod(method.Name.Lexeme, NewFunction(method, baseEnv))
	}

	env.Assign(n.Name.Lexeme, class)
	return nil
}

// execException implements `do/fail/finish` per spec §4.4.9.
func (e *Evaluator) execException(n *ast.ExceptionStmt, env *Environment, ctx *ExecContext) error {
	doErr := e.execStmt(n.DoBlock, env, ctx)

	if doErr == nil {
		if n.FinishBlock != nil {
			return e.execStmt(n.FinishBlock, env, ctx)
		}
		return nil
	}

	if _, isControlFlow := asControlFlow(doErr); isControlFlow {
		if n.FinishBlock != nil {
			if err := e.execStmt(n.FinishBlock, env, ctx); err != nil {
				return err
			}
		}
		return doErr
	}

	runtimeErr, ok := asRuntimeError(doErr)
	if !ok || !runtimeErr.Kind.Recoverable() {
		if n.FinishBlock != nil {
			e.execStmt(n.FinishBlock, env, ctx)
		}
		return doErr
	}

	if n.FailBinding != nil {
		env.Define(n.FailBinding.Name.Lexeme, &Exception{Err: runtimeErr})
	}
	failErr := e.execStmt(n.FailBlock, env, ctx)

	if n.FinishBlock != nil {
		// finish is authoritative: its outcome replaces fail_block's.
		return e.execStmt(n.FinishBlock, env, ctx)
	}
	return failErr
}
