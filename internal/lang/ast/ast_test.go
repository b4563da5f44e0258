package ast

import (
	"reflect"
	"strings"
	"testing"
)

// sample builds:
//
//	read n
//	while n > 0:
//	    print fib(n)
//	    n = n - 1
//	end
func sample() *Program {
	return NewProgram(1, []Node{
		NewRead(1, "n"),
		NewWhile(2, NewCond(2, ">", NewVar(2, "n"), NewNum(2, 0)), []Node{
			NewPrint(3, NewFunCall(3, "fib", []Expr{NewVar(3, "n")})),
			NewVarDef(4, "n", NewOperator(4, '-', NewVar(4, "n"), NewNum(4, 1))),
		}),
	})
}

func TestNode_String(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{NewVarDef(1, "x", NewOperator(1, '+', NewNum(1, 1), NewNum(1, 2))), "VarDef(x, Operator('+', Num(1), Num(2)))"},
		{NewFunDef(1, "f", []string{"a", "b"}, []Node{NewReturn(2, NewOperator(2, '+', NewVar(2, "a"), NewVar(2, "b")))}), "FunDef(f, [a, b], [Return(Operator('+', Var(a), Var(b)))])"},
		{NewIf(1, NewCond(1, "==", NewVar(1, "a"), NewNum(1, 1)), nil), "If(Cond('==', Var(a), Num(1)), [])"},
		{NewFunCall(1, "g", nil), "FunCall(g, [])"},
		{NewPrint(1, nil), "Print(<nil>)"},
		{sample(), "Program[Read(n); While(Cond('>', Var(n), Num(0)), [Print(FunCall(fib, [Var(n)])); VarDef(n, Operator('-', Var(n), Num(1)))])]"},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKind(t *testing.T) {
	if len(Kinds()) != 13 {
		t.Errorf("Kinds() has %d entries, want 13", len(Kinds()))
	}
	for _, k := range Kinds() {
		if strings.HasPrefix(k.String(), "Kind(") {
			t.Errorf("Kind %d has no name", int(k))
		}
	}
	if got := sample().Body[1].Kind(); got != KindWhile {
		t.Errorf("Kind() = %v, want %v", got, KindWhile)
	}
}

type varCollector struct {
	BaseVisitor
	names []string
}

func (c *varCollector) VisitVar(n *Var) int {
	c.names = append(c.names, n.Name)
	return 1
}

func TestBaseVisitor_CallsOverrides(t *testing.T) {
	c := &varCollector{}
	c.Self = c
	Walk(c, sample())

	want := []string{"n", "n", "n"}
	if !reflect.DeepEqual(c.names, want) {
		t.Errorf("visited vars = %v, want %v", c.names, want)
	}

	if got := NewVar(1, "x").Accept(c); got != 1 {
		t.Errorf("Accept() = %d, want 1", got)
	}
}

func TestWalk_Nil(t *testing.T) {
	if got := Walk(&BaseVisitor{}, nil); got != 0 {
		t.Errorf("Walk(nil) = %d, want 0", got)
	}
	var nilNum *Num
	if got := Walk(&BaseVisitor{}, nilNum); got != 0 {
		t.Errorf("Walk(typed nil) = %d, want 0", got)
	}
}

func TestInspect(t *testing.T) {
	var kinds []string
	Inspect(sample(), func(n Node) bool {
		kinds = append(kinds, n.Kind().String())
		return n.Kind() != KindPrint
	})

	want := []string{"Program", "Read", "While", "Cond", "Var", "Num", "Print", "VarDef", "Operator", "Var", "Num"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Inspect() order = %v, want %v", kinds, want)
	}
}

func TestEqual(t *testing.T) {
	a := sample()
	b := sample()
	b.Body[0] = NewRead(9, "n")

	if !Equal(a, b) {
		t.Error("Equal() should ignore line numbers")
	}

	c := sample()
	c.Body[1].(*While).Cond.Op = "<"
	if Equal(a, c) {
		t.Error("Equal() should see the changed comparison")
	}

	if Equal(NewNum(1, 1), NewVar(1, "x")) {
		t.Error("Equal() of different kinds should be false")
	}
	if !Equal(nil, nil) || Equal(NewNum(1, 1), nil) {
		t.Error("Equal() nil handling is wrong")
	}
}

func TestProgramContext(t *testing.T) {
	fib := NewFunDef(1, "fib", []string{"n"}, []Node{NewReturn(2, NewVar(2, "n"))})
	add := NewFunDef(4, "add", []string{"a", "b"}, []Node{NewReturn(5, NewVar(5, "a"))})
	ctx := NewProgramContext(sample(), map[string]*FunDef{"fib": fib, "add": add})

	if ctx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ctx.Len())
	}
	if got := ctx.FunctionNames(); !reflect.DeepEqual(got, []string{"add", "fib"}) {
		t.Errorf("FunctionNames() = %v", got)
	}
	if f, ok := ctx.Function("fib"); !ok || f != fib {
		t.Errorf("Function(fib) = %v, %v", f, ok)
	}
	if _, ok := ctx.Function("nope"); ok {
		t.Error("Function(nope) should not be found")
	}
	if nodes := ctx.Nodes(); len(nodes) != 3 || nodes[0] != Node(add) {
		t.Errorf("Nodes() = %v", nodes)
	}

	empty := NewProgramContext(nil, nil)
	if empty.Len() != 0 || empty.Functions == nil {
		t.Error("NewProgramContext(nil, nil) should be empty but usable")
	}
	if !EqualContext(ctx, NewProgramContext(sample(), map[string]*FunDef{"fib": fib, "add": add})) {
		t.Error("EqualContext() should match an identical context")
	}
	if EqualContext(ctx, NewProgramContext(sample(), map[string]*FunDef{"fib": fib})) {
		t.Error("EqualContext() should see a missing function")
	}
}
