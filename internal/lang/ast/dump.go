package ast

import (
	"fmt"
	"strings"
)

// Dumper writes an indented tree with one node per line, each followed by
// its source line.
type Dumper struct {
	sb    strings.Builder
	depth int
}

// Dump returns the indented tree of n
func Dump(n Node) string {
	d := &Dumper{}
	Walk(d, n)
	return d.String()
}

// DumpContext dumps the functions in name order, then the entry program
func DumpContext(ctx *ProgramContext) string {
	d := &Dumper{}
	for _, n := range ctx.Nodes() {
		Walk(d, n)
	}
	return d.String()
}

func (d *Dumper) String() string {
	return d.sb.String()
}

func (d *Dumper) write(n Node, label string, children ...Node) {
	d.sb.WriteString(strings.Repeat("  ", d.depth))
	d.sb.WriteString(label)
	fmt.Fprintf(&d.sb, " @%d\n", n.Line())

	d.depth++
	for _, c := range children {
		if isNil(c) {
			d.sb.WriteString(strings.Repeat("  ", d.depth))
			d.sb.WriteString("<nil>\n")
			continue
		}
		Walk(d, c)
	}
	d.depth--
}

func exprs(list []Expr) []Node {
	out := make([]Node, len(list))
	for i, e := range list {
		out[i] = e
	}
	return out
}

func (d *Dumper) VisitProgram(n *Program) int {
	d.write(n, "Program", n.Body...)
	return 0
}

func (d *Dumper) VisitFunDef(n *FunDef) int {
	d.write(n, fmt.Sprintf("FunDef %s(%s)", n.Name, strings.Join(n.Params, ", ")), n.Body...)
	return 0
}

func (d *Dumper) VisitIf(n *If) int {
	d.write(n, "If", append([]Node{condNode(n.Cond)}, n.Body...)...)
	return 0
}

func (d *Dumper) VisitWhile(n *While) int {
	d.write(n, "While", append([]Node{condNode(n.Cond)}, n.Body...)...)
	return 0
}

func (d *Dumper) VisitVarDef(n *VarDef) int {
	d.write(n, "VarDef "+n.Name, n.Expr)
	return 0
}

func (d *Dumper) VisitNum(n *Num) int {
	d.write(n, fmt.Sprintf("Num %d", n.Value))
	return 0
}

func (d *Dumper) VisitVar(n *Var) int {
	d.write(n, "Var "+n.Name)
	return 0
}

func (d *Dumper) VisitFunCall(n *FunCall) int {
	d.write(n, "FunCall "+n.Name, exprs(n.Args)...)
	return 0
}

func (d *Dumper) VisitOperator(n *Operator) int {
	d.write(n, "Operator "+string(n.Op), n.Left, n.Right)
	return 0
}

func (d *Dumper) VisitCond(n *Cond) int {
	d.write(n, "Cond "+n.Op, n.Left, n.Right)
	return 0
}

func (d *Dumper) VisitRead(n *Read) int {
	d.write(n, "Read "+n.Name)
	return 0
}

func (d *Dumper) VisitPrint(n *Print) int {
	d.write(n, "Print", n.Expr)
	return 0
}

func (d *Dumper) VisitReturn(n *Return) int {
	d.write(n, "Return", n.Expr)
	return 0
}

// ToMap converts n into nested maps and slices for YAML or JSON export.
// Every node map has "kind" and "line" keys.
func ToMap(n Node) map[string]interface{} {
	if isNil(n) {
		return nil
	}

	m := map[string]interface{}{
		"kind": n.Kind().String(),
		"line": n.Line(),
	}

	switch n := n.(type) {
	case *Program:
		m["body"] = bodyMaps(n.Body)
	case *FunDef:
		m["name"] = n.Name
		m["params"] = append([]string{}, n.Params...)
		m["body"] = bodyMaps(n.Body)
	case *If:
		m["cond"] = ToMap(condNode(n.Cond))
		m["body"] = bodyMaps(n.Body)
	case *While:
		m["cond"] = ToMap(condNode(n.Cond))
		m["body"] = bodyMaps(n.Body)
	case *VarDef:
		m["name"] = n.Name
		m["expr"] = ToMap(n.Expr)
	case *Num:
		m["value"] = n.Value
	case *Var:
		m["name"] = n.Name
	case *FunCall:
		m["name"] = n.Name
		m["args"] = bodyMaps(exprs(n.Args))
	case *Operator:
		m["op"] = string(n.Op)
		m["left"] = ToMap(n.Left)
		m["right"] = ToMap(n.Right)
	case *Cond:
		m["op"] = n.Op
		m["left"] = ToMap(n.Left)
		m["right"] = ToMap(n.Right)
	case *Read:
		m["name"] = n.Name
	case *Print:
		m["expr"] = ToMap(n.Expr)
	case *Return:
		m["expr"] = ToMap(n.Expr)
	}
	return m
}

// ContextToMap converts a parse result for export
func ContextToMap(ctx *ProgramContext) map[string]interface{} {
	functions := make(map[string]interface{}, len(ctx.Functions))
	for name, f := range ctx.Functions {
		functions[name] = ToMap(f)
	}
	return map[string]interface{}{
		"entry":     ToMap(programNode(ctx.Entry)),
		"functions": functions,
	}
}

func bodyMaps(body []Node) []interface{} {
	out := make([]interface{}, 0, len(body))
	for _, n := range body {
		out = append(out, ToMap(n))
	}
	return out
}
