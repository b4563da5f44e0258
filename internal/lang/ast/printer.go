package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultIndent is the block indentation used by Format
const DefaultIndent = "    "

// Printer renders nodes back to PP source. Operands are parenthesized only
// where the grammar needs it; RightAssociative must match the
// associativity the output will be parsed with. Trees are expected to pass
// Validate; an operator other than + - * / panics.
type Printer struct {
	Indent           string
	RightAssociative bool

	sb    strings.Builder
	depth int
}

// NewPrinter creates a printer with the default indentation
func NewPrinter() *Printer {
	return &Printer{Indent: DefaultIndent}
}

// Format renders n as source using left associativity
func Format(n Node) string {
	p := NewPrinter()
	p.Print(n)
	return p.String()
}

// FormatContext renders a whole parse result: function definitions in name
// order, each followed by a blank line, then the top-level statements.
func FormatContext(ctx *ProgramContext) string {
	p := NewPrinter()
	p.PrintContext(ctx)
	return p.String()
}

// Print appends the source form of n
func (p *Printer) Print(n Node) {
	if _, ok := n.(Expr); ok {
		p.line(func() { Walk(p, n) })
		return
	}
	Walk(p, n)
}

// PrintContext appends the source form of ctx
func (p *Printer) PrintContext(ctx *ProgramContext) {
	for _, name := range ctx.FunctionNames() {
		Walk(p, ctx.Functions[name])
		p.sb.WriteByte('\n')
	}
	if ctx.Entry != nil {
		Walk(p, ctx.Entry)
	}
}

// String returns everything printed so far
func (p *Printer) String() string {
	return p.sb.String()
}

// Reset clears the output
func (p *Printer) Reset() {
	p.sb.Reset()
	p.depth = 0
}

func (p *Printer) line(write func()) {
	for i := 0; i < p.depth; i++ {
		p.sb.WriteString(p.Indent)
	}
	write()
	p.sb.WriteByte('\n')
}

func (p *Printer) block(header func(), body []Node) {
	p.line(header)
	p.depth++
	for _, stmt := range body {
		p.statement(stmt)
	}
	p.depth--
	p.line(func() { p.sb.WriteString("end") })
}

func (p *Printer) statement(n Node) {
	if _, ok := n.(Expr); ok {
		p.line(func() { Walk(p, n) })
		return
	}
	Walk(p, n)
}

// VisitProgram prints the top-level statements
func (p *Printer) VisitProgram(n *Program) int {
	for _, stmt := range n.Body {
		p.statement(stmt)
	}
	return 0
}

// VisitFunDef prints a def block
func (p *Printer) VisitFunDef(n *FunDef) int {
	p.block(func() {
		p.sb.WriteString("def ")
		p.sb.WriteString(n.Name)
		p.sb.WriteByte('(')
		p.sb.WriteString(strings.Join(n.Params, ", "))
		p.sb.WriteString("):")
	}, n.Body)
	return 0
}

// VisitIf prints an if block
func (p *Printer) VisitIf(n *If) int {
	p.block(func() {
		p.sb.WriteString("if ")
		Walk(p, condNode(n.Cond))
		p.sb.WriteByte(':')
	}, n.Body)
	return 0
}

// VisitWhile prints a while block
func (p *Printer) VisitWhile(n *While) int {
	p.block(func() {
		p.sb.WriteString("while ")
		Walk(p, condNode(n.Cond))
		p.sb.WriteByte(':')
	}, n.Body)
	return 0
}

// VisitVarDef prints an assignment line
func (p *Printer) VisitVarDef(n *VarDef) int {
	p.line(func() {
		p.sb.WriteString(n.Name)
		p.sb.WriteString(" = ")
		Walk(p, n.Expr)
	})
	return 0
}

// VisitRead prints a read line
func (p *Printer) VisitRead(n *Read) int {
	p.line(func() {
		p.sb.WriteString("read ")
		p.sb.WriteString(n.Name)
	})
	return 0
}

// VisitPrint prints a print line
func (p *Printer) VisitPrint(n *Print) int {
	p.line(func() {
		p.sb.WriteString("print ")
		Walk(p, n.Expr)
	})
	return 0
}

// VisitReturn prints a return line
func (p *Printer) VisitReturn(n *Return) int {
	p.line(func() {
		p.sb.WriteString("return ")
		Walk(p, n.Expr)
	})
	return 0
}

// VisitCond writes a comparison
func (p *Printer) VisitCond(n *Cond) int {
	Walk(p, n.Left)
	p.sb.WriteByte(' ')
	p.sb.WriteString(n.Op)
	p.sb.WriteByte(' ')
	Walk(p, n.Right)
	return 0
}

// VisitNum writes a number literal
func (p *Printer) VisitNum(n *Num) int {
	p.sb.WriteString(strconv.Itoa(n.Value))
	return 0
}

// VisitVar writes a variable name
func (p *Printer) VisitVar(n *Var) int {
	p.sb.WriteString(n.Name)
	return 0
}

// VisitFunCall writes a call with its arguments
func (p *Printer) VisitFunCall(n *FunCall) int {
	p.sb.WriteString(n.Name)
	p.sb.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		Walk(p, arg)
	}
	p.sb.WriteByte(')')
	return 0
}

// VisitOperator writes a binary operation, adding parentheses where needed
func (p *Printer) VisitOperator(n *Operator) int {
	precedence(n.Op)
	p.operand(n.Left, n.Op, false)
	p.sb.WriteByte(' ')
	p.sb.WriteByte(n.Op)
	p.sb.WriteByte(' ')
	p.operand(n.Right, n.Op, true)
	return 0
}

func (p *Printer) operand(e Expr, parent byte, right bool) {
	child, ok := e.(*Operator)
	if !ok || child == nil {
		Walk(p, e)
		return
	}

	cp, pp := precedence(child.Op), precedence(parent)
	paren := cp < pp
	if cp == pp {
		// the side opposite to the associativity groups explicitly
		paren = right != p.RightAssociative
	}

	if paren {
		p.sb.WriteByte('(')
	}
	Walk(p, e)
	if paren {
		p.sb.WriteByte(')')
	}
}

func precedence(op byte) int {
	switch op {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	}
	panic(fmt.Sprintf("ast: unknown operator %q", op))
}
