package rei

import (
	"github.com/zyneaa/rei/internal/ast"
	"github.com/zyneaa/rei/internal/token"
)

func (e *Evaluator) evalExpr(expr ast.Expr, env *Environment, ctx *ExecContext) (Value, error) {
	switch n := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(n.Value), nil

	case *ast.GroupingExpr:
		return e.evalExpr(n.Inner, env, ctx)

	case *ast.UnaryExpr:
		return e.evalUnary(n, env, ctx)

	case *ast.BinaryExpr:
		return e.evalBinary(n, env, ctx)

	case *ast.LogicalExpr:
		return e.evalLogical(n, env, ctx)

	case *ast.VariableExpr:
		return e.lookupVariable(env, n.ID(), n.Name, ctx)

	case *ast.AssignExpr:
		val, err := e.evalExpr(n.Value, env, ctx)
		if err != nil {
			return nil, err
		}
		if depth, ok := e.depths[n.ID()]; ok {
			env.AssignAt(depth, n.Name.Lexeme, val)
		} else if !e.Globals.Assign(n.Name.Lexeme, val) {
			return nil, newRuntimeError(ctx, UndefinedVariable, n.Name, "undefined variable %q", n.Name.Lexeme)
		}
		return val, nil

	case *ast.CallExpr:
		return e.evalCall(n, env, ctx)

	case *ast.GetExpr:
		obj, err := e.evalExpr(n.Object, env, ctx)
		if err != nil {
			return nil, err
		}
		return e.getProperty(obj, n.Name, ctx)

	case *ast.SetExpr:
		obj, err := e.evalExpr(n.Object, env, ctx)
		if err != nil {
			return nil, err
		}
		val, err := e.evalExpr(n.Value, env, ctx)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*InstanceValue)
		if !ok {
			return nil, newRuntimeError(ctx, PropertyError, n.Name, "cannot set property %q on a non-instance value", n.Name.Lexeme)
		}
		instance.Fields[n.Name.Lexeme] = val
		return val, nil

	case *ast.ThisExpr:
		return e.lookupVariable(env, n.ID(), n.Keyword, ctx)

	case *ast.RangeExpr:
		return e.evalRange(n, env, ctx)

	case *ast.MetaExpr:
		return e.evalMeta(n, env, ctx)
	}
	return Null{}, nil
}

func literalValue(v any) Value {
	switch lit := v.(type) {
	case nil:
		return Null{}
	case float64:
		return Number(lit)
	case string:
		return Str(lit)
	case bool:
		return Bool(lit)
	default:
		return Null{}
	}
}

// lookupVariable reads a name using the resolver's recorded depth when
// present, else walks the full chain to the global frame, producing
// UndefinedVariable on miss (spec §4.4.1).
func (e *Evaluator) lookupVariable(env *Environment, exprID int64, name token.Token, ctx *ExecContext) (Value, error) {
	if depth, ok := e.depths[exprID]; ok {
		return env.GetAt(depth, name.Lexeme), nil
	}
	if val, ok := e.Globals.Get(name.Lexeme); ok {
		return val, nil
	}
	return nil, newRuntimeError(ctx, UndefinedVariable, name, "undefined variable %q", name.Lexeme)
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpr, env *Environment, ctx *ExecContext) (Value, error) {
	operand, err := e.evalExpr(n.Operand, env, ctx)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Kind {
	case token.Minus:
		num, ok := operand.(Number)
		if !ok {
			return nil, newRuntimeError(ctx, OperandMustBeNumber, n.Operator, "unary '-' requires a number")
		}
		return -num, nil
	case token.Bang:
		return Bool(!Truthy(operand)), nil
	}
	return nil, newRuntimeError(ctx, InvalidOperator, n.Operator, "unknown unary operator %q", n.Operator.Lexeme)
}

func (e *Evaluator) evalBinary(n *ast.BinaryExpr, env *Environment, ctx *ExecContext) (Value, error) {
	left, err := e.evalExpr(n.Left, env, ctx)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right, env, ctx)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Kind {
	case token.Plus:
		return evalPlus(left, right, n.Operator, ctx)
	case token.Minus:
		l, r, err := requireNumbers(left, right, n.Operator, ctx)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.Star:
		l, r, err := requireNumbers(left, right, n.Operator, ctx)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.Slash:
		l, r, err := requireNumbers(left, right, n.Operator, ctx)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, newRuntimeError(ctx, DividedByZero, n.Operator, "division by zero")
		}
		return l / r, nil
	case token.Greater:
		l, r, err := requireNumbers(left, right, n.Operator, ctx)
		if err != nil {
			return nil, err
		}
		return Bool(l > r), nil
	case token.GreaterEqual:
		l, r, err := requireNumbers(left, right, n.Operator, ctx)
		if err != nil {
			return nil, err
		}
		return Bool(l >= r), nil
	case token.Less:
		l, r, err := requireNumbers(left, right, n.Operator, ctx)
		if err != nil {
			return nil, err
		}
		return Bool(l < r), nil
	case token.LessEqual:
		l, r, err := requireNumbers(left, right, n.Operator, ctx)
		if err != nil {
			return nil, err
		}
		return Bool(l <= r), nil
	case token.EqualEqual:
		return Bool(Equal(left, right)), nil
	case token.BangEqual:
		return Bool(!Equal(left, right)), nil
	}
	return nil, newRuntimeError(ctx, InvalidOperator, n.Operator, "unknown binary operator %q", n.Operator.Lexeme)
}

func evalPlus(left, right Value, op token.Token, ctx *ExecContext) (Value, error) {
	ln, lIsNum := left.(Number)
	rn, rIsNum := right.(Number)
	if lIsNum && rIsNum {
		return ln + rn, nil
	}
	_, lIsStr := left.(Str)
	_, rIsStr := right.(Str)
	if lIsStr || rIsStr {
		return Str(left.String() + right.String()), nil
	}
	return nil, newRuntimeError(ctx, UnexpectedBinaryOperation, op, "'+' requires two numbers or a string operand")
}

func requireNumbers(left, right Value, op token.Token, ctx *ExecContext) (Number, Number, error) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		return 0, 0, newRuntimeError(ctx, OperandMustBeNumber, op, "%q requires two numbers", op.Lexeme)
	}
	return ln, rn, nil
}

func (e *Evaluator) evalLogical(n *ast.LogicalExpr, env *Environment, ctx *ExecContext) (Value, error) {
	left, err := e.evalExpr(n.Left, env, ctx)
	if err != nil {
		return nil, err
	}
	if n.Operator.Kind == token.Or {
		if Truthy(left) {
			return left, nil
		}
	} else {
		if !Truthy(left) {
			return left, nil
		}
	}
	return e.evalExpr(n.Right, env, ctx)
}

func (e *Evaluator) evalRange(n *ast.RangeExpr, env *Environment, ctx *ExecContext) (Value, error) {
	start, err := e.evalExpr(n.Start, env, ctx)
	if err != nil {
		return nil, err
	}
	end, err := e.evalExpr(n.End, env, ctx)
	if err != nil {
		return nil, err
	}
	startN, startOk := start.(Number)
	endN, endOk := end.(Number)
	if !startOk || !endOk {
		return nil, newRuntimeError(ctx, InvalidRangeType, n.Token(), "range bounds must be numbers")
	}
	if !isIntegral(startN) || !isIntegral(endN) {
		return nil, newRuntimeError(ctx, InvalidRange, n.Token(), "range bounds must have no fractional part")
	}
	if startN > endN {
		return nil, newRuntimeError(ctx, InvalidRange, n.Token(), "range start must not exceed end")
	}
	return Range{Start: startN, End: endN}, nil
}

func isIntegral(n Number) bool { return n == Number(int64(n)) }

func (e *Evaluator) evalCall(n *ast.CallExpr, env *Environment, ctx *ExecContext) (Value, error) {
	calleeVal, err := e.evalExpr(n.Callee, env, ctx)
	if err != nil {
		return nil, err
	}
	callable, ok := calleeVal.(Callable)
	if !ok {
		return nil, newRuntimeError(ctx, NotCallable, n.Paren, "value is not callable")
	}

	args := make([]Value, len(n.Args))
	for i, argExpr := range n.Args {
		val, err := e.evalExpr(argExpr, env, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	if len(args) != callable.Arity() {
		return nil, newRuntimeError(ctx, InvalidArguments, n.Paren,
			"expected %d argument(s) but got %d", callable.Arity(), len(args))
	}

	ctx.push(CallFrame{Name: callable.DisplayName(), Line: n.Paren.Line, Column: n.Paren.Column})
	result, err := callable.Call(e, args, ctx)
	if err != nil {
		return nil, err
	}
	ctx.pop()
	return result, nil
}

func (e *Evaluator) getProperty(obj Value, name token.Token, ctx *ExecContext) (Value, error) {
	switch o := obj.(type) {
	case *InstanceValue:
		if val, ok := o.Fields[name.Lexeme]; ok {
			return val, nil
		}
		if method, ok := o.Class.FindMethod(name.Lexeme); ok {
			return method.Bind(o), nil
		}
		return nil, newRuntimeError(ctx, UndefinedProperty, name, "undefined property %q", name.Lexeme)
	case *Class:
		if method, ok := o.FindStaticMethod(name.Lexeme); ok {
			return method, nil
		}
		return nil, newRuntimeError(ctx, UndefinedProperty, name, "undefined static method %q", name.Lexeme)
	default:
		return nil, newRuntimeError(ctx, PropertyError, name, "cannot read property %q on a non-instance value", name.Lexeme)
	}
}
