/*
File: monkey/parser/precedence.go
*/

package parser

import "github.com/mway-lang/monkey/token"

// Precedence levels, lowest to highest binding power.
const (
	_ int = iota
	LOWEST
	EQUALS      // ==, !=
	LESSGREATER // <, >
	SUM         // +, -
	PRODUCT     // *, /
	PREFIX      // -x, !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

// precedences is a plain data table, not a map of closures: the
// REDESIGN in spec.md §9 replaces dispatch-table-of-closures parsing
// with a switch-based parse function driven by this table.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.STAR:     PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

// peekPrecedence returns the binding power of p.peekToken, or LOWEST if
// it is not an infix operator.
func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// curPrecedence returns the binding power of p.curToken, or LOWEST if
// it is not an infix operator.
func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}
