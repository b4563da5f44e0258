package ast

import "fmt"

// Visitor has one method per node kind. Each returns a result code whose
// meaning is up to the consumer. A type implements Visitor only when it
// handles every kind, so consumers are exhaustive at compile time.
type Visitor interface {
	VisitProgram(n *Program) int
	VisitFunDef(n *FunDef) int
	VisitVarDef(n *VarDef) int
	VisitNum(n *Num) int
	VisitVar(n *Var) int
	VisitFunCall(n *FunCall) int
	VisitOperator(n *Operator) int
	VisitCond(n *Cond) int
	VisitIf(n *If) int
	VisitWhile(n *While) int
	VisitReturn(n *Return) int
	VisitRead(n *Read) int
	VisitPrint(n *Print) int
}

// Walk dispatches n to the matching method of v. A nil node yields 0.
func Walk(v Visitor, n Node) int {
	if isNil(n) {
		return 0
	}

	switch n := n.(type) {
	case *Program:
		return v.VisitProgram(n)
	case *FunDef:
		return v.VisitFunDef(n)
	case *VarDef:
		return v.VisitVarDef(n)
	case *Num:
		return v.VisitNum(n)
	case *Var:
		return v.VisitVar(n)
	case *FunCall:
		return v.VisitFunCall(n)
	case *Operator:
		return v.VisitOperator(n)
	case *Cond:
		return v.VisitCond(n)
	case *If:
		return v.VisitIf(n)
	case *While:
		return v.VisitWhile(n)
	case *Return:
		return v.VisitReturn(n)
	case *Read:
		return v.VisitRead(n)
	case *Print:
		return v.VisitPrint(n)
	}
	panic(fmt.Sprintf("ast: unexpected node type %T", n))
}

// BaseVisitor visits all children depth first and returns 0. Embed it and
// set Self to the embedding visitor so the traversal calls back into the
// overridden methods:
//
//	c := &counter{}
//	c.Self = c
//	ast.Walk(c, program)
type BaseVisitor struct {
	Self Visitor
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) walkBody(body []Node) {
	v := b.self()
	for _, stmt := range body {
		Walk(v, stmt)
	}
}

func (b *BaseVisitor) VisitProgram(n *Program) int {
	b.walkBody(n.Body)
	return 0
}

func (b *BaseVisitor) VisitFunDef(n *FunDef) int {
	b.walkBody(n.Body)
	return 0
}

func (b *BaseVisitor) VisitVarDef(n *VarDef) int {
	Walk(b.self(), n.Expr)
	return 0
}

func (b *BaseVisitor) VisitNum(*Num) int { return 0 }

func (b *BaseVisitor) VisitVar(*Var) int { return 0 }

func (b *BaseVisitor) VisitFunCall(n *FunCall) int {
	v := b.self()
	for _, arg := range n.Args {
		Walk(v, arg)
	}
	return 0
}

func (b *BaseVisitor) VisitOperator(n *Operator) int {
	v := b.self()
	Walk(v, n.Left)
	Walk(v, n.Right)
	return 0
}

func (b *BaseVisitor) VisitCond(n *Cond) int {
	v := b.self()
	Walk(v, n.Left)
	Walk(v, n.Right)
	return 0
}

func (b *BaseVisitor) VisitIf(n *If) int {
	Walk(b.self(), condNode(n.Cond))
	b.walkBody(n.Body)
	return 0
}

func (b *BaseVisitor) VisitWhile(n *While) int {
	Walk(b.self(), condNode(n.Cond))
	b.walkBody(n.Body)
	return 0
}

func (b *BaseVisitor) VisitReturn(n *Return) int {
	Walk(b.self(), n.Expr)
	return 0
}

func (b *BaseVisitor) VisitRead(*Read) int { return 0 }

func (b *BaseVisitor) VisitPrint(n *Print) int {
	Walk(b.self(), n.Expr)
	return 0
}

// Children returns the direct children of n in source order
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if !isNil(c) {
			out = append(out, c)
		}
	}

	switch n := n.(type) {
	case *Program:
		for _, s := range n.Body {
			add(s)
		}
	case *FunDef:
		for _, s := range n.Body {
			add(s)
		}
	case *If:
		add(condNode(n.Cond))
		for _, s := range n.Body {
			add(s)
		}
	case *While:
		add(condNode(n.Cond))
		for _, s := range n.Body {
			add(s)
		}
	case *VarDef:
		add(n.Expr)
	case *FunCall:
		for _, a := range n.Args {
			add(a)
		}
	case *Operator:
		add(n.Left)
		add(n.Right)
	case *Cond:
		add(n.Left)
		add(n.Right)
	case *Print:
		add(n.Expr)
	case *Return:
		add(n.Expr)
	}
	return out
}

// Inspect traverses the tree rooted at n depth first, calling f for each
// node. When f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}
