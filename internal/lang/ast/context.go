package ast

import "sort"

// ProgramContext is the result of a parse: the top-level statements and
// the user-defined functions by name.
type ProgramContext struct {
	Entry     *Program
	Functions map[string]*FunDef
}

// NewProgramContext creates a context. A nil function table is replaced by
// an empty one.
func NewProgramContext(entry *Program, functions map[string]*FunDef) *ProgramContext {
	if functions == nil {
		functions = make(map[string]*FunDef)
	}
	return &ProgramContext{Entry: entry, Functions: functions}
}

// Function looks up a function definition by name
func (c *ProgramContext) Function(name string) (*FunDef, bool) {
	f, ok := c.Functions[name]
	return f, ok
}

// FunctionNames returns the defined function names in sorted order
func (c *ProgramContext) FunctionNames() []string {
	names := make([]string, 0, len(c.Functions))
	for name := range c.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of top-level statements
func (c *ProgramContext) Len() int {
	if c.Entry == nil {
		return 0
	}
	return len(c.Entry.Body)
}

// Nodes returns the function definitions in name order followed by the
// entry program. Helpers that work on single nodes use it to cover a whole
// context.
func (c *ProgramContext) Nodes() []Node {
	nodes := make([]Node, 0, len(c.Functions)+1)
	for _, name := range c.FunctionNames() {
		nodes = append(nodes, c.Functions[name])
	}
	if c.Entry != nil {
		nodes = append(nodes, c.Entry)
	}
	return nodes
}
