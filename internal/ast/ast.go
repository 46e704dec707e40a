// Package ast defines the syntax tree produced by the parser and walked
// by the resolver and evaluator.
package ast

import "github.com/zyneaa/rei/internal/token"

// Node is the common interface of every syntax-tree node.
type Node interface {
	Token() token.Token
}

// Expr is any expression node. Every Expr carries a process-wide unique
// ID allocated by the parser; the resolver keys its scope-depth side
// table on this ID.
type Expr interface {
	Node
	ID() int64
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// exprBase is embedded by every Expr implementation to carry the shared
// ExprId and declaring token.
type exprBase struct {
	id  int64
	tok token.Token
}

func (b exprBase) ID() int64        { return b.id }
func (b exprBase) Token() token.Token { return b.tok }
func (exprBase) exprNode()          {}

// stmtBase is embedded by every Stmt implementation.
type stmtBase struct {
	tok token.Token
}

func (b stmtBase) Token() token.Token { return b.tok }
func (stmtBase) stmtNode()            {}
