package table

import "github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"

// ClassContext is the receiver scope of a class body: `this` lookups go
// through Members, which holds every property, method and the constructor.
type ClassContext struct {
	Class   ast.NodeID // *ast.ClassDeclaration
	Name    string
	Members *SymbolTable
}

// NewClassContext creates an empty context for a class
func NewClassContext(class ast.NodeID, name string) *ClassContext {
	return &ClassContext{
		Class:   class,
		Name:    name,
		Members: NewSymbolTable(nil),
	}
}

// Member returns the declaring node of a member
func (c *ClassContext) Member(name string) (ast.NodeID, bool) {
	return c.Members.GetSymbol(name)
}
