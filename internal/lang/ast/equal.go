package ast

// Equal reports whether a and b are structurally identical. Line numbers
// are ignored.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a := a.(type) {
	case *Program:
		return equalBody(a.Body, b.(*Program).Body)
	case *FunDef:
		b := b.(*FunDef)
		return a.Name == b.Name && equalStrings(a.Params, b.Params) && equalBody(a.Body, b.Body)
	case *If:
		b := b.(*If)
		return Equal(condNode(a.Cond), condNode(b.Cond)) && equalBody(a.Body, b.Body)
	case *While:
		b := b.(*While)
		return Equal(condNode(a.Cond), condNode(b.Cond)) && equalBody(a.Body, b.Body)
	case *VarDef:
		b := b.(*VarDef)
		return a.Name == b.Name && Equal(a.Expr, b.Expr)
	case *Num:
		return a.Value == b.(*Num).Value
	case *Var:
		return a.Name == b.(*Var).Name
	case *FunCall:
		b := b.(*FunCall)
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *Operator:
		b := b.(*Operator)
		return a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Cond:
		b := b.(*Cond)
		return a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Read:
		return a.Name == b.(*Read).Name
	case *Print:
		return Equal(a.Expr, b.(*Print).Expr)
	case *Return:
		return Equal(a.Expr, b.(*Return).Expr)
	}
	return false
}

// EqualContext compares two parse results with Equal
func EqualContext(a, b *ProgramContext) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !Equal(programNode(a.Entry), programNode(b.Entry)) || len(a.Functions) != len(b.Functions) {
		return false
	}
	for name, fa := range a.Functions {
		fb, ok := b.Functions[name]
		if !ok || !Equal(fa, fb) {
			return false
		}
	}
	return true
}

func programNode(p *Program) Node {
	if p == nil {
		return nil
	}
	return p
}

func equalBody(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
