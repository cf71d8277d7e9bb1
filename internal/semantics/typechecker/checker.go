// Package typechecker resolves and validates the static type of every
// expression and declaration of a tree. Resolution is single pass and fail
// fast: the first violation is returned as a *diagnostics.SemanticError and
// the caller stops.
package typechecker

import (
	"errors"

	"github.com/Iced-Tea/hevia-compiler/internal/context_v2"
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/scope"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// Checker carries the state of one check run. The scope facade is owned
// by the context and kept in step by the walker.
type Checker struct {
	ctx   *context_v2.CompilerContext
	tree  *ast.Tree
	scope *scope.Scope

	returns []ast.NodeID // active return contexts, innermost last
}

// New creates a checker over the context's tree and scope
func New(ctx *context_v2.CompilerContext) *Checker {
	return &Checker{
		ctx:   ctx,
		tree:  ctx.Tree,
		scope: ctx.Scope,
	}
}

// Tree returns the tree being checked
func (c *Checker) Tree() *ast.Tree { return c.tree }

// Scope returns the scope facade
func (c *Checker) Scope() *scope.Scope { return c.scope }

// PushReturnContext makes a function or constructor the target of return statements
func (c *Checker) PushReturnContext(decl ast.NodeID) {
	c.returns = append(c.returns, decl)
}

// PopReturnContext leaves the innermost return context
func (c *Checker) PopReturnContext() {
	if len(c.returns) > 0 {
		c.returns = c.returns[:len(c.returns)-1]
	}
}

// ReturnContext returns the innermost return context or NoNode
func (c *Checker) ReturnContext() ast.NodeID {
	if len(c.returns) == 0 {
		return ast.NoNode
	}
	return c.returns[len(c.returns)-1]
}

func (c *Checker) errorf(code diagnostics.Code, node ast.NodeID, format string, args ...any) error {
	return diagnostics.Errorf(code, c.tree, node, format, args...)
}

// typeOf returns the cached type of a node
func (c *Checker) typeOf(id ast.NodeID) *types.Descriptor {
	return c.tree.ResolvedType(id)
}

// setType caches the type of a node. Writing a node twice is an internal error.
func (c *Checker) setType(id ast.NodeID, t *types.Descriptor) error {
	if err := c.tree.SetResolvedType(id, t); err != nil {
		if errors.Is(err, ast.ErrAlreadyResolved) {
			return c.errorf(diagnostics.ErrResolvedTwice, id, "%v", err)
		}
		return err
	}
	c.ctx.Tracef("  %s #%d : %s", c.tree.Kind(id), id, t)
	return nil
}

// declarationName names a function, operator or class for messages
func (c *Checker) declarationName(id ast.NodeID) string {
	switch n := c.tree.Node(id).(type) {
	case *ast.FunctionDeclaration:
		return n.Name
	case *ast.ClassDeclaration:
		return n.Name
	case *ast.OperatorDeclaration:
		return string(n.Operator)
	case *ast.ConstructorDeclaration:
		return c.declarationName(c.tree.Parent(id))
	}
	return "<anonymous>"
}

// declaredReturnType returns the declared type of a return context
func (c *Checker) declaredReturnType(id ast.NodeID) *types.Descriptor {
	switch n := c.tree.Node(id).(type) {
	case *ast.FunctionDeclaration:
		return n.Type
	case *ast.ConstructorDeclaration:
		return n.Type
	}
	return nil
}
