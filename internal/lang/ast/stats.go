package ast

// Stats counts the nodes of a tree by kind
type Stats struct {
	BaseVisitor
	Counts   map[Kind]int
	MaxDepth int

	depth int
}

// NewStats creates an empty counter
func NewStats() *Stats {
	s := &Stats{Counts: make(map[Kind]int)}
	s.Self = s
	return s
}

// CollectStats counts all nodes of ctx, functions included
func CollectStats(ctx *ProgramContext) *Stats {
	s := NewStats()
	for _, n := range ctx.Nodes() {
		s.Add(n)
	}
	return s
}

// Add counts the tree rooted at n
func (s *Stats) Add(n Node) {
	Walk(s, n)
}

// Total returns the number of nodes counted
func (s *Stats) Total() int {
	total := 0
	for _, c := range s.Counts {
		total += c
	}
	return total
}

// Fields returns the counts keyed by kind name plus total and depth, ready
// for structured logging
func (s *Stats) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"nodes":     s.Total(),
		"max_depth": s.MaxDepth,
	}
	for kind, c := range s.Counts {
		fields["nodes_"+kind.String()] = c
	}
	return fields
}

func (s *Stats) enter(k Kind) func() {
	s.Counts[k]++
	s.depth++
	if s.depth > s.MaxDepth {
		s.MaxDepth = s.depth
	}
	return func() { s.depth-- }
}

func (s *Stats) VisitProgram(n *Program) int {
	defer s.enter(KindProgram)()
	return s.BaseVisitor.VisitProgram(n)
}

func (s *Stats) VisitFunDef(n *FunDef) int {
	defer s.enter(KindFunDef)()
	return s.BaseVisitor.VisitFunDef(n)
}

func (s *Stats) VisitVarDef(n *VarDef) int {
	defer s.enter(KindVarDef)()
	return s.BaseVisitor.VisitVarDef(n)
}

func (s *Stats) VisitNum(n *Num) int {
	defer s.enter(KindNum)()
	return 0
}

func (s *Stats) VisitVar(n *Var) int {
	defer s.enter(KindVar)()
	return 0
}

func (s *Stats) VisitFunCall(n *FunCall) int {
	defer s.enter(KindFunCall)()
	return s.BaseVisitor.VisitFunCall(n)
}

func (s *Stats) VisitOperator(n *Operator) int {
	defer s.enter(KindOperator)()
	return s.BaseVisitor.VisitOperator(n)
}

func (s *Stats) VisitCond(n *Cond) int {
	defer s.enter(KindCond)()
	return s.BaseVisitor.VisitCond(n)
}

func (s *Stats) VisitIf(n *If) int {
	defer s.enter(KindIf)()
	return s.BaseVisitor.VisitIf(n)
}

func (s *Stats) VisitWhile(n *While) int {
	defer s.enter(KindWhile)()
	return s.BaseVisitor.VisitWhile(n)
}

func (s *Stats) VisitReturn(n *Return) int {
	defer s.enter(KindReturn)()
	return s.BaseVisitor.VisitReturn(n)
}

func (s *Stats) VisitRead(n *Read) int {
	defer s.enter(KindRead)()
	return 0
}

func (s *Stats) VisitPrint(n *Print) int {
	defer s.enter(KindPrint)()
	return s.BaseVisitor.VisitPrint(n)
}
