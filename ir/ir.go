// Package ir holds an in-memory program graph of tensor operations.
//
// A Module contains Functions; a Function contains an ordered list of
// Operations in SSA form. Each Operation is typed by an optypes.OpType
// (which places it in a dialect), consumes input Values, produces output
// Values and carries a map of named attribute constants.
//
// The graph is built to be rewritten: replacement inserts new operations,
// redirects consumers from the old outputs to the new ones and erases
// nodes left without consumers, rather than mutating operations in place.
// See the rewrite package for the conversion engine that drives this.
package ir

// Module is a list of functions, the unit over which passes run.
type Module struct {
	// Name of the module, informational only.
	Name string

	// Functions of the module, in declaration order.
	Functions []*Function
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// NewFunction creates a new empty function and adds it to the module.
func (m *Module) NewFunction(name string, isPublic bool) *Function {
	fn := &Function{
		Name:     name,
		IsPublic: isPublic,
	}
	m.Functions = append(m.Functions, fn)
	return fn
}
