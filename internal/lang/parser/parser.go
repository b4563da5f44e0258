// ============================================================================
// ppi - PP language front end
// ============================================================================
//
// Package:     parser
// Description: Recursive descent parser turning PP source into a
//              ProgramContext, with one token of lookahead (two for
//              assignments) and fail-fast error reporting
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package parser

import (
	"io"
	"strings"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/ppinterpreter/foundation/core/log"
	"github.com/msto63/ppinterpreter/internal/lang/ast"
	"github.com/msto63/ppinterpreter/internal/lang/lexer"
	"github.com/msto63/ppinterpreter/internal/lang/token"
)

var (
	// tokens that can start an expression
	exprStart = []token.Kind{token.Ident, token.Num, token.Minus, token.LParen}

	// tokens that can start an instruction
	stmtStart = with([]token.Kind{token.Read, token.Print, token.If, token.While, token.Return}, exprStart...)

	relational = []token.Kind{token.Eq, token.Ne, token.Gt, token.Lt, token.Ge, token.Le}
)

// with returns a new slice holding base followed by extra
func with(base []token.Kind, extra ...token.Kind) []token.Kind {
	out := make([]token.Kind, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

// Parser holds the configuration for parsing PP source. It keeps no state
// between calls and may be shared.
type Parser struct {
	opts   Options
	logger *mdwlog.Logger
}

// New creates a parser. Empty option values select the defaults.
func New(opts Options) *Parser {
	opts = opts.withDefaults()

	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}

	return &Parser{
		opts:   opts,
		logger: logger.WithField("component", "ppi-parser"),
	}
}

// Options returns the effective options
func (p *Parser) Options() Options {
	return p.opts
}

// ParseString parses src
func (p *Parser) ParseString(src string) (*ast.ProgramContext, error) {
	if limit := p.opts.MaxInputLength; limit > 0 && int64(len(src)) > limit {
		return nil, &InputTooLargeError{Limit: limit}
	}
	return p.Parse(strings.NewReader(src))
}

// Parse reads and parses a whole program. On failure it returns a
// *ParseError, a *RedefinitionError, an *InputTooLargeError or the error
// of r, and never a partial result.
func (p *Parser) Parse(r io.Reader) (*ast.ProgramContext, error) {
	if err := p.opts.Validate(); err != nil {
		return nil, err
	}

	if limit := p.opts.MaxInputLength; limit > 0 {
		r = &limitedReader{r: r, remaining: limit, limit: limit}
	}

	log := p.logger
	if log.RunID() == "" {
		log = log.WithRunID(uuid.New().String())
	}

	s := &state{
		lx:    lexer.New(r),
		opts:  p.opts,
		log:   log,
		trace: log.IsLevelEnabled(mdwlog.LevelTrace),
	}

	timer := log.StartTimer("parse")
	log.Debug("parse started", mdwlog.Fields{
		"associativity": string(p.opts.Associativity),
		"line_mode":     string(p.opts.LineMode),
		"duplicates":    string(p.opts.Duplicates),
	})

	ctx, err := s.parseProgram()
	if readErr := s.lx.Err(); readErr != nil {
		err = readErr
	}
	if err != nil {
		timer.StopWithResult(false, err.Error())
		return nil, err
	}

	stats := ast.CollectStats(ctx)
	timer.WithField("statements", ctx.Len()).
		WithField("functions", len(ctx.Functions)).
		StopWithResult(true, nil)
	log.Debug("parse finished", mdwlog.Fields(stats.Fields()))

	return ctx, nil
}

// state is the per-call parser state
type state struct {
	lx    *lexer.Lexer
	opts  Options
	log   *mdwlog.Logger
	trace bool

	// last consumed token
	last token.Token
}

func (s *state) next() token.Token {
	tok := s.lx.NextToken()
	s.last = tok
	if s.trace {
		s.log.Trace("token", mdwlog.Fields{"token": tok.String(), "line": tok.Line})
	}
	return tok
}

func (s *state) peek() token.Token {
	return s.lx.Peek(1)
}

func (s *state) check(kind token.Kind) bool {
	return s.lx.CheckToken(kind, 1)
}

// fail builds the error for the token at the lookahead position
func (s *state) fail(expected ...token.Kind) error {
	actual := s.peek()
	return &ParseError{
		Line:     actual.Line,
		Expected: append([]token.Kind(nil), expected...),
		Actual:   actual,
	}
}

// expect consumes the next token if it has the given kind
func (s *state) expect(kind token.Kind) (token.Token, error) {
	if !s.check(kind) {
		return token.Token{}, s.fail(kind)
	}
	return s.next(), nil
}

// stamp returns the line for a node that began at start
func (s *state) stamp(start int) int {
	if s.opts.LineMode == LineEnd {
		return s.last.Line
	}
	return start
}

func (s *state) skipNewlines() {
	for s.check(token.Newline) {
		s.next()
	}
}

func (s *state) parseProgram() (*ast.ProgramContext, error) {
	var body []ast.Node
	functions := make(map[string]*ast.FunDef)

	for {
		s.skipNewlines()
		if s.check(token.EOF) {
			break
		}

		stmt, err := s.parseInstruction()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body = append(body, stmt)
			continue
		}

		fn, err := s.parseFunDef()
		if err != nil {
			return nil, err
		}
		if fn != nil {
			if err := s.define(functions, fn); err != nil {
				return nil, err
			}
			continue
		}

		// neither a statement nor a definition: no progress possible
		return nil, s.fail(with(stmtStart, token.Def)...)
	}

	line := 1
	if len(body) > 0 {
		line = body[0].Line()
	}
	return ast.NewProgramContext(ast.NewProgram(line, body), functions), nil
}

func (s *state) define(functions map[string]*ast.FunDef, fn *ast.FunDef) error {
	prev, ok := functions[fn.Name]
	if ok {
		if s.opts.Duplicates == DuplicateReject {
			return &RedefinitionError{Name: fn.Name, Line: fn.Line(), PreviousLine: prev.Line()}
		}
		s.log.Warn("function redefined", mdwlog.Fields{
			"function":      fn.Name,
			"line":          fn.Line(),
			"previous_line": prev.Line(),
		})
	}
	functions[fn.Name] = fn
	return nil
}

// parseInstruction parses one statement and the newline ending it. It
// returns nil without consuming anything but newlines when the lookahead
// cannot start a statement.
func (s *state) parseInstruction() (ast.Node, error) {
	s.skipNewlines()

	productions := []func() (ast.Node, error){
		s.parseRead,
		s.parsePrint,
		s.parseVarDef,
		s.parseExpressionStatement,
		s.parseIf,
		s.parseWhile,
		s.parseReturn,
	}

	for _, production := range productions {
		stmt, err := production()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			continue
		}

		if !s.check(token.Newline) && !s.check(token.EOF) {
			return nil, s.fail(token.Newline)
		}
		s.skipNewlines()
		return stmt, nil
	}
	return nil, nil
}

// parseBlock parses instructions up to and including the closing end
func (s *state) parseBlock() ([]ast.Node, error) {
	var body []ast.Node
	for {
		s.skipNewlines()
		if s.check(token.End) {
			s.next()
			return body, nil
		}
		if s.check(token.EOF) {
			return nil, s.fail(token.End)
		}

		stmt, err := s.parseInstruction()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return nil, s.fail(with(stmtStart, token.End)...)
		}
		body = append(body, stmt)
	}
}

func (s *state) parseRead() (ast.Node, error) {
	if !s.check(token.Read) {
		return nil, nil
	}
	start := s.next().Line

	name, err := s.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	return ast.NewRead(s.stamp(start), name.Text), nil
}

func (s *state) parsePrint() (ast.Node, error) {
	if !s.check(token.Print) {
		return nil, nil
	}
	start := s.next().Line

	expr, err := s.requireExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewPrint(s.stamp(start), expr), nil
}

func (s *state) parseReturn() (ast.Node, error) {
	if !s.check(token.Return) {
		return nil, nil
	}
	start := s.next().Line

	expr, err := s.requireExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(s.stamp(start), expr), nil
}

// parseVarDef needs two tokens of lookahead: an identifier followed by '='
func (s *state) parseVarDef() (ast.Node, error) {
	if !s.check(token.Ident) || !s.lx.CheckToken(token.Assign, 2) {
		return nil, nil
	}
	name := s.next()
	s.next()

	expr, err := s.requireExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewVarDef(s.stamp(name.Line), name.Text, expr), nil
}

func (s *state) parseExpressionStatement() (ast.Node, error) {
	expr, err := s.parseExpression()
	if err != nil || expr == nil {
		return nil, err
	}
	return expr, nil
}

func (s *state) parseIf() (ast.Node, error) {
	if !s.check(token.If) {
		return nil, nil
	}
	start := s.next().Line

	cond, body, err := s.parseGuardedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewIf(s.stamp(start), cond, body), nil
}

func (s *state) parseWhile() (ast.Node, error) {
	if !s.check(token.While) {
		return nil, nil
	}
	start := s.next().Line

	cond, body, err := s.parseGuardedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(s.stamp(start), cond, body), nil
}

// parseGuardedBlock parses Condition ':' NEWLINE Instruction* 'end'
func (s *state) parseGuardedBlock() (*ast.Cond, []ast.Node, error) {
	cond, err := s.parseCondition()
	if err != nil {
		return nil, nil, err
	}
	if _, err := s.expect(token.Colon); err != nil {
		return nil, nil, err
	}
	if _, err := s.expect(token.Newline); err != nil {
		return nil, nil, err
	}

	body, err := s.parseBlock()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

func (s *state) parseCondition() (*ast.Cond, error) {
	left, err := s.requireExpression()
	if err != nil {
		return nil, err
	}

	if !s.peek().Kind.IsRelational() {
		return nil, s.fail(relational...)
	}
	op := s.next()

	right, err := s.requireExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewCond(s.stamp(left.Line()), op.Kind.Symbol(), left, right), nil
}

func (s *state) parseFunDef() (*ast.FunDef, error) {
	if !s.check(token.Def) {
		return nil, nil
	}
	start := s.next().Line

	name, err := s.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(token.LParen); err != nil {
		return nil, err
	}

	var params []string
	if !s.check(token.RParen) {
		for {
			param, err := s.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			params = append(params, param.Text)
			if !s.check(token.Comma) {
				break
			}
			s.next()
		}
		if !s.check(token.RParen) {
			return nil, s.fail(token.Comma, token.RParen)
		}
	}
	s.next()

	if _, err := s.expect(token.Colon); err != nil {
		return nil, err
	}
	if _, err := s.expect(token.Newline); err != nil {
		return nil, err
	}

	body, err := s.parseBlock()
	if err != nil {
		return nil, err
	}
	line := s.stamp(start)

	if !s.check(token.EOF) {
		if _, err := s.expect(token.Newline); err != nil {
			return nil, err
		}
	}
	return ast.NewFunDef(line, name.Text, params, body), nil
}

// requireExpression parses an expression in a position where one must
// follow
func (s *state) requireExpression() (ast.Expr, error) {
	expr, err := s.parseExpression()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, s.fail(exprStart...)
	}
	return expr, nil
}

// parseExpression parses MultDiv (('+'|'-') MultDiv)*
func (s *state) parseExpression() (ast.Expr, error) {
	return s.parseBinary(s.parseMultDiv, token.Plus, token.Minus)
}

// parseMultDiv parses Value (('*'|'/') Value)*
func (s *state) parseMultDiv() (ast.Expr, error) {
	return s.parseBinary(s.parseValue, token.Mult, token.Div)
}

// parseBinary parses a chain of operand separated by one of the two
// operators, grouped according to the configured associativity
func (s *state) parseBinary(operand func() (ast.Expr, error), a, b token.Kind) (ast.Expr, error) {
	left, err := operand()
	if err != nil || left == nil {
		return nil, err
	}

	var operands []ast.Expr
	var ops []token.Token
	operands = append(operands, left)

	for s.check(a) || s.check(b) {
		ops = append(ops, s.next())
		right, err := operand()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, s.fail(exprStart...)
		}
		operands = append(operands, right)
	}

	if s.opts.Associativity == RightAssociative {
		expr := operands[len(operands)-1]
		for i := len(ops) - 1; i >= 0; i-- {
			expr = ast.NewOperator(s.stamp(operands[i].Line()), ops[i].Kind.Symbol()[0], operands[i], expr)
		}
		return expr, nil
	}

	expr := operands[0]
	for i, op := range ops {
		expr = ast.NewOperator(s.stamp(expr.Line()), op.Kind.Symbol()[0], expr, operands[i+1])
	}
	return expr, nil
}

// parseValue parses '-' Value | '(' Expression ')' | Number | IdentOrCall
func (s *state) parseValue() (ast.Expr, error) {
	switch s.peek().Kind {
	case token.Minus:
		minus := s.next()
		operand, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		if operand == nil {
			return nil, s.fail(exprStart...)
		}
		// unary minus is subtraction from zero
		return ast.NewOperator(s.stamp(minus.Line), '-', ast.NewNum(minus.Line, 0), operand), nil

	case token.LParen:
		s.next()
		expr, err := s.requireExpression()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(token.RParen); err != nil {
			return nil, err
		}
		return expr, nil

	case token.Num:
		num := s.next()
		return ast.NewNum(num.Line, num.Value), nil

	case token.Ident:
		return s.parseIdentOrCall()
	}
	return nil, nil
}

// parseIdentOrCall parses Identifier ['(' (Expression (',' Expression)*)? ')']
func (s *state) parseIdentOrCall() (ast.Expr, error) {
	name := s.next()
	if !s.check(token.LParen) {
		return ast.NewVar(name.Line, name.Text), nil
	}
	s.next()

	var args []ast.Expr
	if !s.check(token.RParen) {
		for {
			arg, err := s.requireExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !s.check(token.Comma) {
				break
			}
			s.next()
		}
		if !s.check(token.RParen) {
			return nil, s.fail(token.Comma, token.RParen)
		}
	}
	s.next()

	return ast.NewFunCall(s.stamp(name.Line), name.Text, args), nil
}
