package parser

import (
	"github.com/zyneaa/rei/internal/ast"
	"github.com/zyneaa/rei/internal/token"
)

// expression := range
func (p *Parser) expression() ast.Expr {
	return p.rangeExpr()
}

// range := assignment (".." equality)*
func (p *Parser) rangeExpr() ast.Expr {
	expr := p.assignment()
	for p.match(token.DotDot) {
		dotdot := p.previous()
		end := p.equality()
		expr = ast.NewRangeExpr(p.newExprID(), dotdot, expr, end)
	}
	return expr
}

// assignment := (setter | IDENTIFIER "=" assignment) | logical_or
func (p *Parser) assignment() ast.Expr {
	expr := p.logicalOr()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssignExpr(p.newExprID(), target.Name, value)
		case *ast.GetExpr:
			return ast.NewSetExpr(p.newExprID(), target.Object, target.Name, value)
		default:
			panic(p.fail(equals, "invalid assignment target"))
		}
	}

	return expr
}

// logical_or := logical_and ("or" logical_and)*
func (p *Parser) logicalOr() ast.Expr {
	expr := p.logicalAnd()
	for p.match(token.Or) {
		op := p.previous()
		right := p.logicalAnd()
		expr = ast.NewLogicalExpr(p.newExprID(), expr, op, right)
	}
	return expr
}

// logical_and := equality ("and" equality)*
func (p *Parser) logicalAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogicalExpr(p.newExprID(), expr, op, right)
	}
	return expr
}

// equality := comparison (("==" | "!=") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EqualEqual, token.BangEqual) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinaryExpr(p.newExprID(), expr, op, right)
	}
	return expr
}

// comparison := term ((">"|">="|"<"|"<=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinaryExpr(p.newExprID(), expr, op, right)
	}
	return expr
}

// term := factor (("-"|"+") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinaryExpr(p.newExprID(), expr, op, right)
	}
	return expr
}

// factor := unary (("/"|"*") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinaryExpr(p.newExprID(), expr, op, right)
	}
	return expr
}

// unary := ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand := p.unary()
		return ast.NewUnaryExpr(p.newExprID(), op, operand)
	}
	return p.call()
}

// call := primary ( "(" args? ")" | "." IDENTIFIER )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "expected property name after '.'")
			expr = ast.NewGetExpr(p.newExprID(), expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				panic(p.fail(p.peek(), "cannot have more than 255 arguments"))
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "expected ')' after arguments")
	return ast.NewCallExpr(p.newExprID(), callee, paren, args)
}

// primary := NUMBER | STRING | "true" | "false" | "null" | "this"
//          | IDENTIFIER | "(" expression ")" | "@" IDENTIFIER "(" args? ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return ast.NewLiteralExpr(p.newExprID(), p.previous(), false)
	case p.match(token.True):
		return ast.NewLiteralExpr(p.newExprID(), p.previous(), true)
	case p.match(token.Null):
		return ast.NewLiteralExpr(p.newExprID(), p.previous(), nil)
	case p.match(token.Number, token.String):
		tok := p.previous()
		return ast.NewLiteralExpr(p.newExprID(), tok, tok.Literal)
	case p.match(token.This):
		return ast.NewThisExpr(p.newExprID(), p.previous())
	case p.match(token.Identifier):
		return ast.NewVariableExpr(p.newExprID(), p.previous())
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "expected ')' after expression")
		return ast.NewGroupingExpr(p.newExprID(), p.previous(), expr)
	case p.match(token.At):
		at := p.previous()
		methodName := p.consume(token.Identifier, "expected reflection method name after '@'")
		p.consume(token.LeftParen, "expected '(' after reflection method name")
		var args []ast.Expr
		if !p.check(token.RightParen) {
			for {
				args = append(args, p.expression())
				if !p.match(token.Comma) {
					break
				}
			}
		}
		p.consume(token.RightParen, "expected ')' after reflection arguments")
		return ast.NewMetaExpr(p.newExprID(), at, methodName, args)
	default:
		panic(p.fail(p.peek(), "expected expression"))
	}
}
