package typechecker

import (
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/tokens"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
	"github.com/Iced-Tea/hevia-compiler/internal/utils/numeric"
)

// resolveIdentifier checks that name is a native type or bound in scope.
// Native types have no declaring node and yield NoNode.
func (c *Checker) resolveIdentifier(name string, at ast.NodeID) (ast.NodeID, error) {
	if c.scope.IsNativeType(name) {
		return ast.NoNode, nil
	}
	decl, ok := c.scope.Resolve(name)
	if !ok {
		return ast.NoNode, c.errorf(diagnostics.ErrUndefinedIdentifier, at, "'%s' is not defined", name)
	}
	return decl, nil
}

// resolveTypeName checks that a declared type names a native type or a declaration in scope
func (c *Checker) resolveTypeName(t *types.Descriptor, at ast.NodeID, owner string) error {
	if t == nil {
		return c.errorf(diagnostics.ErrUndefinedType, at, "Cannot infer type of '%s'", owner)
	}
	if _, err := c.resolveIdentifier(string(t.Name()), at); err != nil {
		return c.errorf(diagnostics.ErrUndefinedType, at, "Unknown type '%s' of '%s'", t.Name(), owner)
	}
	return nil
}

// ResolveType computes and caches the type of an expression node.
// Already resolved nodes are left untouched.
func (c *Checker) ResolveType(id ast.NodeID) error {
	if c.typeOf(id) != nil {
		return nil
	}

	switch n := c.tree.Node(id).(type) {
	case *ast.BinaryExpression:
		if err := c.ResolveType(n.Left); err != nil {
			return err
		}
		if err := c.ResolveType(n.Right); err != nil {
			return err
		}
		t, err := c.resolveBinaryExpression(id, n)
		if err != nil {
			return err
		}
		return c.setType(id, t)

	case *ast.CallExpression:
		t, err := c.resolveCallExpression(id, n)
		if err != nil {
			return err
		}
		if _, err := c.resolveIdentifier(string(t.Name()), id); err != nil {
			return err
		}
		return c.setType(id, t)

	case *ast.Literal:
		t, err := c.resolveLiteral(id, n)
		if err != nil {
			return err
		}
		if _, err := c.resolveIdentifier(string(t.Name()), id); err != nil {
			return err
		}
		return c.setType(id, t)

	case *ast.MemberExpression:
		if err := c.ResolveType(n.Object); err != nil {
			return err
		}
		t, err := c.resolveMemberExpression(id, n)
		if err != nil {
			return err
		}
		return c.setType(id, t)

	case *ast.TernaryExpression:
		for _, child := range []ast.NodeID{n.Test, n.Consequent, n.Alternate} {
			if err := c.ResolveType(child); err != nil {
				return err
			}
		}
		t, err := c.resolveTernaryExpression(id, n)
		if err != nil {
			return err
		}
		return c.setType(id, t)
	}

	return c.errorf(diagnostics.ErrUnsupportedNodeKind, id, "Unsupported '%s' node type", c.kindName(id))
}

// ResolveExpression returns the type of an expression, resolving it first if needed
func (c *Checker) ResolveExpression(id ast.NodeID) (*types.Descriptor, error) {
	if err := c.ResolveType(id); err != nil {
		return nil, err
	}
	if lit, ok := ast.Get[*ast.Literal](c.tree, id); ok && lit.IsIdentifier() {
		// the binding may have been shadowed since the literal was cached
		if _, err := c.resolveIdentifier(lit.Value, id); err != nil {
			return nil, err
		}
	}
	return c.typeOf(id), nil
}

func (c *Checker) kindName(id ast.NodeID) string {
	if !c.tree.Has(id) {
		return "<missing>"
	}
	return c.tree.Kind(id).String()
}

func (c *Checker) resolveLiteral(id ast.NodeID, n *ast.Literal) (*types.Descriptor, error) {
	if n.IsThis() {
		ctx := c.scope.ThisContext()
		if ctx == nil {
			return nil, c.errorf(diagnostics.ErrUndefinedIdentifier, id, "'this' is not defined")
		}
		return types.NewFakeLiteral(ctx.Name), nil
	}

	if n.IsIdentifier() {
		if decl, ok := c.scope.Resolve(n.Value); ok {
			if te, ok := ast.Get[*ast.TypeExpression](c.tree, decl); ok {
				if te.Type == nil {
					return nil, c.errorf(diagnostics.ErrUndefinedType, id, "'%s' is used before its type is known", n.Value)
				}
				return te.Type, nil
			}
			return types.NewFakeLiteral(n.Value), nil
		}
	}

	switch n.Token {
	case tokens.NUMBER_TOKEN:
		if name, ok := numeric.TypeOf(n.Value); ok {
			return types.Named(name), nil
		}
	case tokens.STRING_TOKEN:
		return types.Named(types.TYPE_STRING), nil
	case tokens.BOOLEAN_TOKEN:
		return types.Named(types.TYPE_BOOLEAN), nil
	case tokens.NULL_TOKEN:
		return types.Named(types.TYPE_NULL), nil
	}
	return types.NewFakeLiteral(n.Value), nil
}

func (c *Checker) resolveCallExpression(id ast.NodeID, n *ast.CallExpression) (*types.Descriptor, error) {
	decl, ok := c.scope.Resolve(n.Callee)
	if !ok {
		return nil, c.errorf(diagnostics.ErrUndefinedIdentifier, id, "'%s' is not defined", n.Callee)
	}

	switch callee := c.tree.Node(decl).(type) {
	case *ast.FunctionDeclaration:
		return callee.Type, nil
	case *ast.ClassDeclaration:
		n.IsInstantiatedClass = true
		return types.NewFakeLiteral(callee.Name), nil
	}
	return nil, c.errorf(diagnostics.ErrUnsupportedCalleeKind, id, "Unsupported '%s' node type", c.kindName(decl))
}

func (c *Checker) resolveTernaryExpression(id ast.NodeID, n *ast.TernaryExpression) (*types.Descriptor, error) {
	test := c.typeOf(n.Test)
	consequent := c.typeOf(n.Consequent)
	alternate := c.typeOf(n.Alternate)

	if !test.Is(types.TYPE_BOOLEAN) {
		return nil, c.errorf(diagnostics.ErrTypeMismatch, n.Test,
			"'TernaryExpression' expected 'Boolean' as test, but got '%s'", test)
	}
	if !consequent.Equals(alternate) {
		return nil, c.errorf(diagnostics.ErrBranchTypeMismatch, id,
			"'TernaryExpression' has mismatching types '%s' and '%s'", consequent, alternate)
	}
	return consequent, nil
}
