package ast

import "github.com/zyneaa/rei/internal/token"

// LiteralExpr wraps a constant value produced by the scanner (number,
// string, bool, or null). Stored as `any` here; the evaluator package
// owns the runtime Value representation the parser has no need to see.
type LiteralExpr struct {
	exprBase
	Value any
}

func NewLiteralExpr(id int64, tok token.Token, value any) *LiteralExpr {
	return &LiteralExpr{exprBase: exprBase{id: id, tok: tok}, Value: value}
}

// GroupingExpr is a parenthesized sub-expression, kept distinct so error
// messages can point at the parens.
type GroupingExpr struct {
	exprBase
	Inner Expr
}

func NewGroupingExpr(id int64, tok token.Token, inner Expr) *GroupingExpr {
	return &GroupingExpr{exprBase: exprBase{id: id, tok: tok}, Inner: inner}
}

// UnaryExpr is `-x` or `!x`.
type UnaryExpr struct {
	exprBase
	Operator token.Token
	Operand  Expr
}

func NewUnaryExpr(id int64, operator token.Token, operand Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{id: id, tok: operator}, Operator: operator, Operand: operand}
}

// BinaryExpr is any of the arithmetic/comparison/equality operators.
type BinaryExpr struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinaryExpr(id int64, left Expr, operator token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{id: id, tok: operator}, Left: left, Operator: operator, Right: right}
}

// LogicalExpr is `and`/`or`, kept distinct from BinaryExpr so the
// evaluator can short-circuit (spec §4.4.3).
type LogicalExpr struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogicalExpr(id int64, left Expr, operator token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{exprBase: exprBase{id: id, tok: operator}, Left: left, Operator: operator, Right: right}
}

// VariableExpr reads a named binding.
type VariableExpr struct {
	exprBase
	Name token.Token
}

func NewVariableExpr(id int64, name token.Token) *VariableExpr {
	return &VariableExpr{exprBase: exprBase{id: id, tok: name}, Name: name}
}

// AssignExpr assigns to an existing named binding.
type AssignExpr struct {
	exprBase
	Name  token.Token
	Value Expr
}

func NewAssignExpr(id int64, name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{exprBase: exprBase{id: id, tok: name}, Name: name, Value: value}
}

// CallExpr invokes a callable value. Paren is the closing `)` token,
// carried for diagnostics (spec §4.4.5).
type CallExpr struct {
	exprBase
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCallExpr(id int64, callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{exprBase: exprBase{id: id, tok: paren}, Callee: callee, Paren: paren, Args: args}
}

// GetExpr reads a property or bound method off an object.
type GetExpr struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGetExpr(id int64, object Expr, name token.Token) *GetExpr {
	return &GetExpr{exprBase: exprBase{id: id, tok: name}, Object: object, Name: name}
}

// SetExpr writes a field on an object.
type SetExpr struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSetExpr(id int64, object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{exprBase: exprBase{id: id, tok: name}, Object: object, Name: name, Value: value}
}

// ThisExpr is a `this` reference inside a method body.
type ThisExpr struct {
	exprBase
	Keyword token.Token
}

func NewThisExpr(id int64, keyword token.Token) *ThisExpr {
	return &ThisExpr{exprBase: exprBase{id: id, tok: keyword}, Keyword: keyword}
}

// RangeExpr is `start..end`.
type RangeExpr struct {
	exprBase
	Start Expr
	End   Expr
}

func NewRangeExpr(id int64, tok token.Token, start, end Expr) *RangeExpr {
	return &RangeExpr{exprBase: exprBase{id: id, tok: tok}, Start: start, End: end}
}

// MetaExpr is a `@method(args...)` reflection call (spec §4.4.8).
type MetaExpr struct {
	exprBase
	At         token.Token
	MethodName token.Token
	Args       []Expr
}

func NewMetaExpr(id int64, at, methodName token.Token, args []Expr) *MetaExpr {
	return &MetaExpr{exprBase: exprBase{id: id, tok: at}, At: at, MethodName: methodName, Args: args}
}
