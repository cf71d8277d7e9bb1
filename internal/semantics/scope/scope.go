// Package scope is the lookup facade used by the type checker. It owns the
// chain of lexical symbol tables and the stack of class contexts, and keeps
// both in step with the walker's push/pop calls.
package scope

import (
	"golang.org/x/text/unicode/norm"

	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/table"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// Scope resolves identifiers to their declaring nodes
type Scope struct {
	current *table.SymbolTable
	classes []*table.ClassContext
	depth   int
}

// New creates a facade with an empty global scope
func New() *Scope {
	return &Scope{current: table.NewSymbolTable(nil)}
}

// Normalize returns the canonical (NFC) form of an identifier
func Normalize(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}

// Push opens a nested lexical scope
func (s *Scope) Push() {
	s.current = table.NewSymbolTable(s.current)
	s.depth++
}

// Pop closes the innermost lexical scope. The global scope is never popped.
func (s *Scope) Pop() {
	if s.current.Parent() == nil {
		return
	}
	s.current = s.current.Parent()
	s.depth--
}

// Depth returns the number of scopes pushed above the global one
func (s *Scope) Depth() int { return s.depth }

// PushClass enters a class body
func (s *Scope) PushClass(ctx *table.ClassContext) {
	s.classes = append(s.classes, ctx)
}

// PopClass leaves the innermost class body
func (s *Scope) PopClass() {
	if len(s.classes) > 0 {
		s.classes = s.classes[:len(s.classes)-1]
	}
}

// ThisContext returns the innermost enclosing class context, nil outside classes
func (s *Scope) ThisContext() *table.ClassContext {
	if len(s.classes) == 0 {
		return nil
	}
	return s.classes[len(s.classes)-1]
}

// Declare binds name in the innermost scope
func (s *Scope) Declare(name string, decl ast.NodeID) error {
	return s.current.Declare(Normalize(name), decl)
}

// Resolve returns the node declaring name, searching outward
func (s *Scope) Resolve(name string) (ast.NodeID, bool) {
	return s.current.Lookup(Normalize(name))
}

// IsNativeType reports whether name is a built-in type
func (s *Scope) IsNativeType(name string) bool {
	return types.IsNativeTypeName(name)
}
