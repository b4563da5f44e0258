// ============================================================================
// ppi - PP language front end
// ============================================================================
//
// Package:     ast
// Description: Syntax tree of PP programs: a closed set of node types, the
//              visitor contract, printers and structural helpers
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package ast

import (
	"fmt"
	"strings"
)

// Kind tags the concrete type of a node
type Kind int

const (
	KindProgram Kind = iota
	KindFunDef
	KindIf
	KindWhile
	KindVarDef
	KindNum
	KindVar
	KindFunCall
	KindOperator
	KindCond
	KindRead
	KindPrint
	KindReturn
)

var kindNames = [...]string{
	KindProgram:  "Program",
	KindFunDef:   "FunDef",
	KindIf:       "If",
	KindWhile:    "While",
	KindVarDef:   "VarDef",
	KindNum:      "Num",
	KindVar:      "Var",
	KindFunCall:  "FunCall",
	KindOperator: "Operator",
	KindCond:     "Cond",
	KindRead:     "Read",
	KindPrint:    "Print",
	KindReturn:   "Return",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every node kind in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Node is implemented by the node types of this package only
type Node interface {
	// Kind returns the tag of the concrete node type
	Kind() Kind

	// Line returns the source line the node was stamped with
	Line() int

	// Accept calls the Visitor method matching the node type
	Accept(v Visitor) int

	// String returns a compact one-line form, e.g. Operator('+', Num(1), Num(2))
	String() string

	node()
}

// Expr is a node that yields a value: Num, Var, FunCall or Operator
type Expr interface {
	Node
	exprNode()
}

type pos struct {
	line int
}

func (p pos) Line() int { return p.line }
func (pos) node()       {}

// Program is the entry point: the top-level statements in source order
type Program struct {
	pos
	Body []Node
}

// FunDef is a user-defined function
type FunDef struct {
	pos
	Name   string
	Params []string
	Body   []Node
}

// If runs Body once when Cond holds
type If struct {
	pos
	Cond *Cond
	Body []Node
}

// While runs Body as long as Cond holds
type While struct {
	pos
	Cond *Cond
	Body []Node
}

// VarDef assigns the value of Expr to Name
type VarDef struct {
	pos
	Name string
	Expr Expr
}

// Num is an integer literal
type Num struct {
	pos
	Value int
}

// Var references a variable by name
type Var struct {
	pos
	Name string
}

// FunCall calls Name with Args
type FunCall struct {
	pos
	Name string
	Args []Expr
}

// Operator is a binary arithmetic operation. Op is one of + - * /.
type Operator struct {
	pos
	Op    byte
	Left  Expr
	Right Expr
}

// Cond compares two expressions. Op is one of == != > < >= <=.
type Cond struct {
	pos
	Op    string
	Left  Expr
	Right Expr
}

// Read reads a value into the variable Name
type Read struct {
	pos
	Name string
}

// Print writes the value of Expr
type Print struct {
	pos
	Expr Expr
}

// Return leaves the enclosing function with the value of Expr
type Return struct {
	pos
	Expr Expr
}

// NewProgram creates a Program with the given top-level statements
func NewProgram(line int, body []Node) *Program {
	return &Program{pos: pos{line}, Body: body}
}

// NewFunDef creates a function definition
func NewFunDef(line int, name string, params []string, body []Node) *FunDef {
	return &FunDef{pos: pos{line}, Name: name, Params: params, Body: body}
}

// NewIf creates an if block
func NewIf(line int, cond *Cond, body []Node) *If {
	return &If{pos: pos{line}, Cond: cond, Body: body}
}

// NewWhile creates a while loop
func NewWhile(line int, cond *Cond, body []Node) *While {
	return &While{pos: pos{line}, Cond: cond, Body: body}
}

// NewVarDef creates an assignment
func NewVarDef(line int, name string, expr Expr) *VarDef {
	return &VarDef{pos: pos{line}, Name: name, Expr: expr}
}

// NewNum creates a number literal
func NewNum(line int, value int) *Num {
	return &Num{pos: pos{line}, Value: value}
}

// NewVar creates a variable reference
func NewVar(line int, name string) *Var {
	return &Var{pos: pos{line}, Name: name}
}

// NewFunCall creates a function call
func NewFunCall(line int, name string, args []Expr) *FunCall {
	return &FunCall{pos: pos{line}, Name: name, Args: args}
}

// NewOperator creates a binary arithmetic operation
func NewOperator(line int, op byte, left, right Expr) *Operator {
	return &Operator{pos: pos{line}, Op: op, Left: left, Right: right}
}

// NewCond creates a comparison
func NewCond(line int, op string, left, right Expr) *Cond {
	return &Cond{pos: pos{line}, Op: op, Left: left, Right: right}
}

// NewRead creates a read statement
func NewRead(line int, name string) *Read {
	return &Read{pos: pos{line}, Name: name}
}

// NewPrint creates a print statement
func NewPrint(line int, expr Expr) *Print {
	return &Print{pos: pos{line}, Expr: expr}
}

// NewReturn creates a return statement
func NewReturn(line int, expr Expr) *Return {
	return &Return{pos: pos{line}, Expr: expr}
}

func (*Program) Kind() Kind  { return KindProgram }
func (*FunDef) Kind() Kind   { return KindFunDef }
func (*If) Kind() Kind       { return KindIf }
func (*While) Kind() Kind    { return KindWhile }
func (*VarDef) Kind() Kind   { return KindVarDef }
func (*Num) Kind() Kind      { return KindNum }
func (*Var) Kind() Kind      { return KindVar }
func (*FunCall) Kind() Kind  { return KindFunCall }
func (*Operator) Kind() Kind { return KindOperator }
func (*Cond) Kind() Kind     { return KindCond }
func (*Read) Kind() Kind     { return KindRead }
func (*Print) Kind() Kind    { return KindPrint }
func (*Return) Kind() Kind   { return KindReturn }

func (n *Program) Accept(v Visitor) int  { return v.VisitProgram(n) }
func (n *FunDef) Accept(v Visitor) int   { return v.VisitFunDef(n) }
func (n *If) Accept(v Visitor) int       { return v.VisitIf(n) }
func (n *While) Accept(v Visitor) int    { return v.VisitWhile(n) }
func (n *VarDef) Accept(v Visitor) int   { return v.VisitVarDef(n) }
func (n *Num) Accept(v Visitor) int      { return v.VisitNum(n) }
func (n *Var) Accept(v Visitor) int      { return v.VisitVar(n) }
func (n *FunCall) Accept(v Visitor) int  { return v.VisitFunCall(n) }
func (n *Operator) Accept(v Visitor) int { return v.VisitOperator(n) }
func (n *Cond) Accept(v Visitor) int     { return v.VisitCond(n) }
func (n *Read) Accept(v Visitor) int     { return v.VisitRead(n) }
func (n *Print) Accept(v Visitor) int    { return v.VisitPrint(n) }
func (n *Return) Accept(v Visitor) int   { return v.VisitReturn(n) }

func (*Num) exprNode()      {}
func (*Var) exprNode()      {}
func (*FunCall) exprNode()  {}
func (*Operator) exprNode() {}

func (n *Program) String() string  { return compact(n) }
func (n *FunDef) String() string   { return compact(n) }
func (n *If) String() string       { return compact(n) }
func (n *While) String() string    { return compact(n) }
func (n *VarDef) String() string   { return compact(n) }
func (n *Num) String() string      { return compact(n) }
func (n *Var) String() string      { return compact(n) }
func (n *FunCall) String() string  { return compact(n) }
func (n *Operator) String() string { return compact(n) }
func (n *Cond) String() string     { return compact(n) }
func (n *Read) String() string     { return compact(n) }
func (n *Print) String() string    { return compact(n) }
func (n *Return) String() string   { return compact(n) }

// compact renders n on one line. A nil child prints as <nil> so that
// partially built trees can still be inspected.
func compact(n Node) string {
	var sb strings.Builder
	writeCompact(&sb, n)
	return sb.String()
}

func writeCompact(sb *strings.Builder, n Node) {
	if isNil(n) {
		sb.WriteString("<nil>")
		return
	}

	switch n := n.(type) {
	case *Program:
		sb.WriteString("Program")
		writeBody(sb, n.Body)
	case *FunDef:
		fmt.Fprintf(sb, "FunDef(%s, [%s], ", n.Name, strings.Join(n.Params, ", "))
		writeBody(sb, n.Body)
		sb.WriteByte(')')
	case *If:
		sb.WriteString("If(")
		writeCompact(sb, condNode(n.Cond))
		sb.WriteString(", ")
		writeBody(sb, n.Body)
		sb.WriteByte(')')
	case *While:
		sb.WriteString("While(")
		writeCompact(sb, condNode(n.Cond))
		sb.WriteString(", ")
		writeBody(sb, n.Body)
		sb.WriteByte(')')
	case *VarDef:
		fmt.Fprintf(sb, "VarDef(%s, ", n.Name)
		writeCompact(sb, n.Expr)
		sb.WriteByte(')')
	case *Num:
		fmt.Fprintf(sb, "Num(%d)", n.Value)
	case *Var:
		fmt.Fprintf(sb, "Var(%s)", n.Name)
	case *FunCall:
		fmt.Fprintf(sb, "FunCall(%s, [", n.Name)
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeCompact(sb, arg)
		}
		sb.WriteString("])")
	case *Operator:
		fmt.Fprintf(sb, "Operator('%c', ", n.Op)
		writeCompact(sb, n.Left)
		sb.WriteString(", ")
		writeCompact(sb, n.Right)
		sb.WriteByte(')')
	case *Cond:
		fmt.Fprintf(sb, "Cond('%s', ", n.Op)
		writeCompact(sb, n.Left)
		sb.WriteString(", ")
		writeCompact(sb, n.Right)
		sb.WriteByte(')')
	case *Read:
		fmt.Fprintf(sb, "Read(%s)", n.Name)
	case *Print:
		sb.WriteString("Print(")
		writeCompact(sb, n.Expr)
		sb.WriteByte(')')
	case *Return:
		sb.WriteString("Return(")
		writeCompact(sb, n.Expr)
		sb.WriteByte(')')
	}
}

func writeBody(sb *strings.Builder, body []Node) {
	sb.WriteByte('[')
	for i, stmt := range body {
		if i > 0 {
			sb.WriteString("; ")
		}
		writeCompact(sb, stmt)
	}
	sb.WriteByte(']')
}

// condNode keeps a nil *Cond from turning into a non-nil Node
func condNode(c *Cond) Node {
	if c == nil {
		return nil
	}
	return c
}

// isNil reports whether n is nil or holds a nil pointer
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch n := n.(type) {
	case *Program:
		return n == nil
	case *FunDef:
		return n == nil
	case *If:
		return n == nil
	case *While:
		return n == nil
	case *VarDef:
		return n == nil
	case *Num:
		return n == nil
	case *Var:
		return n == nil
	case *FunCall:
		return n == nil
	case *Operator:
		return n == nil
	case *Cond:
		return n == nil
	case *Read:
		return n == nil
	case *Print:
		return n == nil
	case *Return:
		return n == nil
	}
	return false
}
