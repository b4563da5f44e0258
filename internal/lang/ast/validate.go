package ast

import (
	"fmt"
	"strings"

	"github.com/msto63/ppinterpreter/internal/lang/token"
)

// ValidationError describes one structural problem of a tree
type ValidationError struct {
	Line    int
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
}

var conditionOps = map[string]bool{
	"==": true, "!=": true, ">": true, "<": true, ">=": true, "<=": true,
}

// Validate checks a tree for problems the parser never produces but hand
// built trees may contain: missing children, empty names, unknown
// operators, repeated parameters, misplaced definitions and literals the
// printer cannot render. It returns nil for a valid tree.
func Validate(n Node) []error {
	v := &validator{}
	v.Self = v
	Walk(v, n)
	return v.errs
}

// ValidateContext validates every node of ctx and checks that each function
// is stored under its own name
func ValidateContext(ctx *ProgramContext) []error {
	var errs []error
	if ctx.Entry == nil {
		errs = append(errs, &ValidationError{Kind: KindProgram, Message: "missing entry program"})
	}
	for _, name := range ctx.FunctionNames() {
		f := ctx.Functions[name]
		if f == nil {
			errs = append(errs, &ValidationError{Kind: KindFunDef, Message: fmt.Sprintf("function %q is nil", name)})
			continue
		}
		if f.Name != name {
			errs = append(errs, &ValidationError{Line: f.Line(), Kind: KindFunDef, Message: fmt.Sprintf("stored as %q but named %q", name, f.Name)})
		}
	}
	for _, n := range ctx.Nodes() {
		errs = append(errs, Validate(n)...)
	}
	return errs
}

type validator struct {
	BaseVisitor
	errs  []error
	depth int
}

func (v *validator) fail(n Node, format string, args ...interface{}) {
	v.errs = append(v.errs, &ValidationError{Line: n.Line(), Kind: n.Kind(), Message: fmt.Sprintf(format, args...)})
}

func (v *validator) name(n Node, name string) {
	if !isIdentifier(name) {
		v.fail(n, "invalid name %q", name)
	}
}

func (v *validator) require(n Node, what string, child Node) {
	if isNil(child) {
		v.fail(n, "missing %s", what)
	}
}

func (v *validator) body(n Node, body []Node) {
	for i, stmt := range body {
		switch {
		case isNil(stmt):
			v.fail(n, "statement %d is nil", i)
		case stmt.Kind() == KindProgram || stmt.Kind() == KindFunDef || stmt.Kind() == KindCond:
			v.fail(stmt, "not allowed as a statement")
		}
	}
}

func (v *validator) VisitProgram(n *Program) int {
	if v.depth > 0 {
		return 0
	}
	v.depth++
	defer func() { v.depth-- }()
	v.body(n, n.Body)
	return v.BaseVisitor.VisitProgram(n)
}

func (v *validator) VisitFunDef(n *FunDef) int {
	v.name(n, n.Name)
	seen := make(map[string]bool, len(n.Params))
	for _, p := range n.Params {
		v.name(n, p)
		if seen[p] {
			v.fail(n, "duplicate parameter %q", p)
		}
		seen[p] = true
	}
	v.depth++
	defer func() { v.depth-- }()
	v.body(n, n.Body)
	return v.BaseVisitor.VisitFunDef(n)
}

func (v *validator) VisitIf(n *If) int {
	v.require(n, "condition", condNode(n.Cond))
	v.body(n, n.Body)
	return v.BaseVisitor.VisitIf(n)
}

func (v *validator) VisitWhile(n *While) int {
	v.require(n, "condition", condNode(n.Cond))
	v.body(n, n.Body)
	return v.BaseVisitor.VisitWhile(n)
}

func (v *validator) VisitVarDef(n *VarDef) int {
	v.name(n, n.Name)
	v.require(n, "expression", n.Expr)
	return v.BaseVisitor.VisitVarDef(n)
}

func (v *validator) VisitNum(n *Num) int {
	if n.Value < 0 {
		v.fail(n, "negative literal %d", n.Value)
	}
	return 0
}

func (v *validator) VisitVar(n *Var) int {
	v.name(n, n.Name)
	return 0
}

func (v *validator) VisitFunCall(n *FunCall) int {
	v.name(n, n.Name)
	for i, arg := range n.Args {
		if isNil(arg) {
			v.fail(n, "argument %d is nil", i)
		}
	}
	return v.BaseVisitor.VisitFunCall(n)
}

func (v *validator) VisitOperator(n *Operator) int {
	if !strings.ContainsRune("+-*/", rune(n.Op)) || n.Op == 0 {
		v.fail(n, "unknown operator %q", string(n.Op))
	}
	v.require(n, "left operand", n.Left)
	v.require(n, "right operand", n.Right)
	return v.BaseVisitor.VisitOperator(n)
}

func (v *validator) VisitCond(n *Cond) int {
	if !conditionOps[n.Op] {
		v.fail(n, "unknown comparison %q", n.Op)
	}
	v.require(n, "left operand", n.Left)
	v.require(n, "right operand", n.Right)
	return v.BaseVisitor.VisitCond(n)
}

func (v *validator) VisitRead(n *Read) int {
	v.name(n, n.Name)
	return 0
}

func (v *validator) VisitPrint(n *Print) int {
	v.require(n, "expression", n.Expr)
	return v.BaseVisitor.VisitPrint(n)
}

func (v *validator) VisitReturn(n *Return) int {
	v.require(n, "expression", n.Expr)
	return v.BaseVisitor.VisitReturn(n)
}

// isIdentifier reports whether s lexes as a single non-keyword identifier
func isIdentifier(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && !(c >= '0' && c <= '9') && c != '_' {
			return false
		}
	}
	return token.Lookup(s) == token.Ident
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
