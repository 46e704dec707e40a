package ast

import "github.com/zyneaa/rei/internal/token"

// ExpressionStmt evaluates an expression for its side effects, discarding
// the result.
type ExpressionStmt struct {
	stmtBase
	Expression Expr
}

func NewExpressionStmt(tok token.Token, expr Expr) *ExpressionStmt {
	return &ExpressionStmt{stmtBase: stmtBase{tok: tok}, Expression: expr}
}

// PrintStmt emits a value with no trailing newline.
type PrintStmt struct {
	stmtBase
	Expression Expr
}

func NewPrintStmt(tok token.Token, expr Expr) *PrintStmt {
	return &PrintStmt{stmtBase: stmtBase{tok: tok}, Expression: expr}
}

// PrintLnStmt emits a value followed by a newline.
type PrintLnStmt struct {
	stmtBase
	Expression Expr
}

func NewPrintLnStmt(tok token.Token, expr Expr) *PrintLnStmt {
	return &PrintLnStmt{stmtBase: stmtBase{tok: tok}, Expression: expr}
}

// LetStmt declares a local binding. Initializer is never nil at runtime:
// the parser substitutes a LiteralExpr(null) when the source omits one.
type LetStmt struct {
	stmtBase
	Name        token.Token
	Initializer Expr
}

func NewLetStmt(tok, name token.Token, initializer Expr) *LetStmt {
	return &LetStmt{stmtBase: stmtBase{tok: tok}, Name: name, Initializer: initializer}
}

// BlockStmt is a `{ ... }` lexical block.
type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

func NewBlockStmt(tok token.Token, statements []Stmt) *BlockStmt {
	return &BlockStmt{stmtBase: stmtBase{tok: tok}, Statements: statements}
}

// IfStmt is a conditional; Else is nil when the source has no else
// branch.
type IfStmt struct {
	stmtBase
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func NewIfStmt(tok token.Token, cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{stmtBase: stmtBase{tok: tok}, Condition: cond, Then: then, Else: els}
}

// WhileStmt is the single looping primitive; `for` and `loop` desugar
// into it in the parser (spec §4.2).
type WhileStmt struct {
	stmtBase
	Condition Expr
	Body      Stmt
}

func NewWhileStmt(tok token.Token, cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{stmtBase: stmtBase{tok: tok}, Condition: cond, Body: body}
}

// LoopStepStmt pairs a `for`/`loop` body with its per-iteration step
// (the `for` clause's increment, or `loop`'s range step) so that a
// `continue` signal raised inside Body still runs Step before the
// enclosing WhileStmt re-checks its condition, rather than being
// skipped the way an ordinary sibling statement in a plain block
// would be (spec §4.4.6).
type LoopStepStmt struct {
	stmtBase
	Body Stmt
	Step Stmt
}

func NewLoopStepStmt(tok token.Token, body, step Stmt) *LoopStepStmt {
	return &LoopStepStmt{stmtBase: stmtBase{tok: tok}, Body: body, Step: step}
}

// FunctionStmt declares a named function or method. IsInitializer is set
// by the parser for methods named `init`; IsStatic for methods declared
// under the `static` modifier inside a class body.
type FunctionStmt struct {
	stmtBase
	Name          token.Token
	Params        []token.Token
	Body          []Stmt
	IsInitializer bool
	IsStatic      bool
}

func NewFunctionStmt(tok, name token.Token, params []token.Token, body []Stmt) *FunctionStmt {
	return &FunctionStmt{stmtBase: stmtBase{tok: tok}, Name: name, Params: params, Body: body}
}

// ReturnStmt; Value is nil iff the source omitted an expression before
// the semicolon (spec §3.2 invariant).
type ReturnStmt struct {
	stmtBase
	Keyword token.Token
	Value   Expr
}

func NewReturnStmt(keyword token.Token, value Expr) *ReturnStmt {
	return &ReturnStmt{stmtBase: stmtBase{tok: keyword}, Keyword: keyword, Value: value}
}

// ClassStmt declares a class. Superclasses are evaluated as expressions
// at declaration time (spec §4.4.7) so they may be arbitrary variable
// references, not just names. Exposed records the `expose` modifier,
// carried as an inert flag (spec §9 open question 3 / SPEC_FULL §5.3).
type ClassStmt struct {
	stmtBase
	Name          token.Token
	Superclasses  []*VariableExpr
	Methods       []*FunctionStmt
	StaticMethods []*FunctionStmt
	Exposed       bool
}

func NewClassStmt(tok, name token.Token, superclasses []*VariableExpr, methods, staticMethods []*FunctionStmt, exposed bool) *ClassStmt {
	return &ClassStmt{stmtBase: stmtBase{tok: tok}, Name: name, Superclasses: superclasses, Methods: methods, StaticMethods: staticMethods, Exposed: exposed}
}

// ThrowStmt raises a recoverable (CustomMsg) runtime error.
type ThrowStmt struct {
	stmtBase
	Expression Expr
}

func NewThrowStmt(tok token.Token, expr Expr) *ThrowStmt {
	return &ThrowStmt{stmtBase: stmtBase{tok: tok}, Expression: expr}
}

// FatalStmt raises an unrecoverable (CustomMsgFatal) runtime error.
type FatalStmt struct {
	stmtBase
	Expression Expr
}

func NewFatalStmt(tok token.Token, expr Expr) *FatalStmt {
	return &FatalStmt{stmtBase: stmtBase{tok: tok}, Expression: expr}
}

// ExceptionStmt is `do { } fail (binding?) { } finish { }` (spec §4.4.9).
// FailBinding is nil when the source wrote `fail { ... }` with no bound
// identifier. FinishBlock is nil when no `finish` clause was written.
type ExceptionStmt struct {
	stmtBase
	DoBlock     *BlockStmt
	FailBinding *LetStmt
	FailBlock   *BlockStmt
	FinishBlock *BlockStmt
}

func NewExceptionStmt(tok token.Token, doBlock *BlockStmt, failBinding *LetStmt, failBlock, finishBlock *BlockStmt) *ExceptionStmt {
	return &ExceptionStmt{stmtBase: stmtBase{tok: tok}, DoBlock: doBlock, FailBinding: failBinding, FailBlock: failBlock, FinishBlock: finishBlock}
}

// BreakStmt exits the nearest enclosing while loop.
type BreakStmt struct{ stmtBase }

func NewBreakStmt(tok token.Token) *BreakStmt { return &BreakStmt{stmtBase{tok: tok}} }

// ContinueStmt skips to the next iteration of the nearest enclosing
// while loop.
type ContinueStmt struct{ stmtBase }

func NewContinueStmt(tok token.Token) *ContinueStmt { return &ContinueStmt{stmtBase{tok: tok}} }

// UseStmt is `use <path> as <alias>`. Parsed so source using the syntax
// does not trip a syntax error, but rejected by the resolver — see
// SPEC_FULL §5.2 (open question 2).
type UseStmt struct {
	stmtBase
	Path  token.Token
	Alias token.Token
}

func NewUseStmt(tok, path, alias token.Token) *UseStmt {
	return &UseStmt{stmtBase: stmtBase{tok: tok}, Path: path, Alias: alias}
}
