package table

import (
	"errors"
	"fmt"

	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
)

// ErrDuplicate is returned when a name is declared twice in one scope
var ErrDuplicate = errors.New("already declared")

// SymbolTable maps names to their declaring nodes for one lexical scope
type SymbolTable struct {
	parent  *SymbolTable
	symbols map[string]ast.NodeID
	order   []string
}

// NewSymbolTable creates a new symbol table with optional parent scope
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		parent:  parent,
		symbols: make(map[string]ast.NodeID),
	}
}

// Parent returns the enclosing scope, nil for the outermost one
func (st *SymbolTable) Parent() *SymbolTable { return st.parent }

// Declare adds a symbol to the table
func (st *SymbolTable) Declare(name string, decl ast.NodeID) error {
	if _, exists := st.symbols[name]; exists {
		return fmt.Errorf("symbol '%s' %w", name, ErrDuplicate)
	}
	st.symbols[name] = decl
	st.order = append(st.order, name)
	return nil
}

// Lookup finds a symbol in this scope or parent scopes
func (st *SymbolTable) Lookup(name string) (ast.NodeID, bool) {
	for s := st; s != nil; s = s.parent {
		if decl, ok := s.symbols[name]; ok {
			return decl, true
		}
	}
	return ast.NoNode, false
}

// GetSymbol finds a symbol in this scope only
func (st *SymbolTable) GetSymbol(name string) (ast.NodeID, bool) {
	decl, ok := st.symbols[name]
	if !ok {
		return ast.NoNode, false
	}
	return decl, true
}

// Names returns the names declared in this scope in declaration order
func (st *SymbolTable) Names() []string {
	return append([]string(nil), st.order...)
}

// Len returns the number of symbols declared in this scope
func (st *SymbolTable) Len() int { return len(st.symbols) }
