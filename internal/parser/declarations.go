package parser

import (
	"github.com/zyneaa/rei/internal/ast"
	"github.com/zyneaa/rei/internal/token"
)

// declaration := function_decl | let_decl | class_decl | statement
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.Expose):
		p.consume(token.Class, "expected 'class' after 'expose'")
		return p.classDeclaration(true)
	case p.match(token.Class):
		return p.classDeclaration(false)
	case p.match(token.Fn):
		return p.functionDeclaration()
	case p.match(token.Let):
		return p.letDeclaration()
	default:
		return p.statement()
	}
}

// let_decl := "let" IDENTIFIER ("=" expression)? ";"
// The parser substitutes Literal(null) when no initializer is given
// (spec §3.2 invariant: Let.Initializer is never absent at runtime).
func (p *Parser) letDeclaration() ast.Stmt {
	letTok := p.previous()
	name := p.consume(token.Identifier, "expected variable name")

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	} else {
		initializer = ast.NewLiteralExpr(p.newExprID(), name, nil)
	}

	p.consume(token.Semicolon, "expected ';' after variable declaration")
	return ast.NewLetStmt(letTok, name, initializer)
}

// function_decl := "fn" IDENTIFIER "(" params? ")" block
func (p *Parser) functionDeclaration() ast.Stmt {
	return p.finishFunction(p.previous())
}

// finishFunction parses the name/params/body common to both top-level
// functions and class methods; fnTok is the `fn` keyword token (or, for
// a method, the class member's leading token).
func (p *Parser) finishFunction(fnTok token.Token) *ast.FunctionStmt {
	name := p.consume(token.Identifier, "expected a name")
	p.consume(token.LeftParen, "expected '(' after name")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				panic(p.fail(p.peek(), "cannot have more than 255 parameters"))
			}
			params = append(params, p.consume(token.Identifier, "expected parameter name"))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "expected ')' after parameters")
	p.consume(token.LeftBrace, "expected '{' before function body")
	body := p.blockStatements()

	stmt := ast.NewFunctionStmt(fnTok, name, params, body)
	stmt.IsInitializer = name.Lexeme == "init"
	return stmt
}

// class_decl := "class" IDENTIFIER (":" IDENTIFIER ("," IDENTIFIER)*)? "{" member* "}"
// member := "static"? IDENTIFIER "(" params? ")" block
func (p *Parser) classDeclaration(exposed bool) ast.Stmt {
	classTok := p.previous()
	name := p.consume(token.Identifier, "expected class name")

	var superclasses []*ast.VariableExpr
	if p.match(token.Colon) {
		for {
			superName := p.consume(token.Identifier, "expected superclass name")
			superclasses = append(superclasses, ast.NewVariableExpr(p.newExprID(), superName))
			if !p.match(token.Comma) {
				break
			}
		}
	}

	p.consume(token.LeftBrace, "expected '{' before class body")

	var methods, staticMethods []*ast.FunctionStmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		isStatic := p.match(token.Static)
		memberTok := p.peek()
		method := p.finishFunction(memberTok)
		method.IsStatic = isStatic
		if isStatic {
			staticMethods = append(staticMethods, method)
		} else {
			methods = append(methods, method)
		}
	}

	p.consume(token.RightBrace, "expected '}' after class body")

	return ast.NewClassStmt(classTok, name, superclasses, methods, staticMethods, exposed)
}
