package parser

import (
	"github.com/zyneaa/rei/internal/ast"
	"github.com/zyneaa/rei/internal/token"
)

// statement := print_stmt | println_stmt | return_stmt | block
//            | while_stmt | for_stmt | loop_stmt | if_stmt
//            | break | continue | throw_stmt | fatal_stmt | do_stmt
//            | expression_stmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement(false)
	case p.match(token.Println):
		return p.printStatement(true)
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.LeftBrace):
		return ast.NewBlockStmt(p.previous(), p.blockStatements())
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Loop):
		return p.loopStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Break):
		tok := p.previous()
		p.consume(token.Semicolon, "expected ';' after 'break'")
		return ast.NewBreakStmt(tok)
	case p.match(token.Continue):
		tok := p.previous()
		p.consume(token.Semicolon, "expected ';' after 'continue'")
		return ast.NewContinueStmt(tok)
	case p.match(token.Throw):
		return p.throwStatement()
	case p.match(token.Fatal):
		return p.fatalStatement()
	case p.match(token.Do):
		return p.doStatement()
	case p.match(token.Use):
		return p.useStatement()
	default:
		return p.expressionStatement()
	}
}

// blockStatements parses declarations up to and including the closing
// '}'; the caller has already consumed the opening '{'.
func (p *Parser) blockStatements() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		statements = append(statements, p.declaration())
	}
	p.consume(token.RightBrace, "expected '}' after block")
	return statements
}

func (p *Parser) printStatement(newline bool) ast.Stmt {
	tok := p.previous()
	expr := p.expression()
	p.consume(token.Semicolon, "expected ';' after value")
	if newline {
		return ast.NewPrintLnStmt(tok, expr)
	}
	return ast.NewPrintStmt(tok, expr)
}

// Return.Value is nil iff the source omitted an expression before the
// semicolon (spec §3.2 invariant).
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after return value")
	return ast.NewReturnStmt(keyword, value)
}

func (p *Parser) ifStatement() ast.Stmt {
	tok := p.previous()
	p.consume(token.LeftParen, "expected '(' after 'if'")
	condition := p.expression()
	p.consume(token.RightParen, "expected ')' after if condition")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return ast.NewIfStmt(tok, condition, then, elseBranch)
}

func (p *Parser) whileStatement() ast.Stmt {
	tok := p.previous()
	p.consume(token.LeftParen, "expected '(' after 'while'")
	condition := p.expression()
	p.consume(token.RightParen, "expected ')' after while condition")
	body := p.statement()
	return ast.NewWhileStmt(tok, condition, body)
}

// for_stmt desugars to `{ init?; while (cond?) { body; step? } }`; an
// absent condition defaults to literal `true` (spec §4.2). When a step
// is present, body and step are paired via LoopStepStmt rather than a
// plain block so a `continue` inside body still runs the step.
func (p *Parser) forStatement() ast.Stmt {
	tok := p.previous()
	p.consume(token.LeftParen, "expected '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Let):
		initializer = p.letDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after loop condition")

	var step ast.Expr
	if !p.check(token.RightParen) {
		step = p.expression()
	}
	p.consume(token.RightParen, "expected ')' after for clauses")

	body := p.statement()

	if step != nil {
		body = ast.NewLoopStepStmt(tok, body, ast.NewExpressionStmt(tok, step))
	}
	if condition == nil {
		condition = ast.NewLiteralExpr(p.newExprID(), tok, true)
	}
	body = ast.NewWhileStmt(tok, condition, body)

	if initializer != nil {
		body = ast.NewBlockStmt(tok, []ast.Stmt{initializer, body})
	}
	return body
}

// loop_stmt desugars `loop (let n = start..end; step) body` to
// `{ let n = start; while (n < end) { body; n = n + step } }` when step
// is a numeric literal. When step is a computed expression the
// comparison is reversed to `>` — a faithfully-reproduced quirk from the
// reference implementation, not corrected behavior (spec §9, SPEC_FULL
// §5.1).
func (p *Parser) loopStatement() ast.Stmt {
	tok := p.previous()
	p.consume(token.LeftParen, "expected '(' after 'loop'")
	p.consume(token.Let, "expected 'let' in loop header")
	name := p.consume(token.Identifier, "expected loop variable name")
	p.consume(token.Equal, "expected '=' after loop variable name")

	rangeExpr := p.rangeExpr()
	rng, ok := rangeExpr.(*ast.RangeExpr)
	if !ok {
		panic(p.fail(p.previous(), "expected a range (start..end) in loop header"))
	}

	p.consume(token.Semicolon, "expected ';' after loop range")
	step := p.expression()
	p.consume(token.RightParen, "expected ')' after loop header")

	body := p.statement()

	comparisonOp := token.Less
	if lit, isLiteral := step.(*ast.LiteralExpr); !isLiteral || !isNumber(lit.Value) {
		comparisonOp = token.Greater
	}

	condition := ast.NewBinaryExpr(p.newExprID(),
		ast.NewVariableExpr(p.newExprID(), name),
		token.New(comparisonOp, comparisonOpLexeme(comparisonOp), nil, tok.Line, tok.Column, tok.SourcePath),
		rng.End,
	)

	increment := ast.NewExpressionStmt(tok, ast.NewAssignExpr(p.newExprID(), name,
		ast.NewBinaryExpr(p.newExprID(),
			ast.NewVariableExpr(p.newExprID(), name),
			token.New(token.Plus, "+", nil, tok.Line, tok.Column, tok.SourcePath),
			step,
		),
	))

	// Paired via LoopStepStmt, not a plain block, so a `continue` inside
	// body still runs increment before the condition is re-checked.
	whileBody := ast.NewLoopStepStmt(tok, body, increment)
	whileStmt := ast.NewWhileStmt(tok, condition, whileBody)
	letStmt := ast.NewLetStmt(tok, name, rng.Start)

	return ast.NewBlockStmt(tok, []ast.Stmt{letStmt, whileStmt})
}

func isNumber(v any) bool {
	_, ok := v.(float64)
	return ok
}

func comparisonOpLexeme(k token.Kind) string {
	if k == token.Less {
		return "<"
	}
	return ">"
}

func (p *Parser) throwStatement() ast.Stmt {
	tok := p.previous()
	expr := p.expression()
	p.consume(token.Semicolon, "expected ';' after throw value")
	return ast.NewThrowStmt(tok, expr)
}

func (p *Parser) fatalStatement() ast.Stmt {
	tok := p.previous()
	expr := p.expression()
	p.consume(token.Semicolon, "expected ';' after fatal value")
	return ast.NewFatalStmt(tok, expr)
}

// do_stmt := "do" block "fail" ("(" "let" IDENTIFIER ")")? block
//          ("finish" block)?
func (p *Parser) doStatement() ast.Stmt {
	doTok := p.previous()
	p.consume(token.LeftBrace, "expected '{' after 'do'")
	doBlock := ast.NewBlockStmt(p.previous(), p.blockStatements())

	p.consume(token.Fail, "expected 'fail' after do block")

	var failBinding *ast.LetStmt
	if p.match(token.LeftParen) {
		letTok := p.consume(token.Let, "expected 'let' in fail binding")
		name := p.consume(token.Identifier, "expected identifier in fail binding")
		p.consume(token.RightParen, "expected ')' after fail binding")
		// Placeholder initializer; the evaluator overwrites the binding's
		// value with the caught exception at catch time (spec §4.2).
		failBinding = ast.NewLetStmt(letTok, name, ast.NewLiteralExpr(p.newExprID(), name, nil))
	}
	p.consume(token.LeftBrace, "expected '{' after 'fail'")
	failBlock := ast.NewBlockStmt(p.previous(), p.blockStatements())

	var finishBlock *ast.BlockStmt
	if p.match(token.Finish) {
		p.consume(token.LeftBrace, "expected '{' after 'finish'")
		finishBlock = ast.NewBlockStmt(p.previous(), p.blockStatements())
	}

	return ast.NewExceptionStmt(doTok, doBlock, failBinding, failBlock, finishBlock)
}

// use_stmt := "use" STRING "as" IDENTIFIER ";"
// Parsed so source using the syntax does not trip a syntax error; the
// resolver rejects it (SPEC_FULL §5.2).
func (p *Parser) useStatement() ast.Stmt {
	useTok := p.previous()
	path := p.consume(token.String, "expected a path string after 'use'")
	p.consume(token.As, "expected 'as' after use path")
	alias := p.consume(token.Identifier, "expected an alias after 'as'")
	p.consume(token.Semicolon, "expected ';' after use statement")
	return ast.NewUseStmt(useTok, path, alias)
}

func (p *Parser) expressionStatement() ast.Stmt {
	tok := p.peek()
	expr := p.expression()
	p.consume(token.Semicolon, "expected ';' after expression")
	return ast.NewExpressionStmt(tok, expr)
}
