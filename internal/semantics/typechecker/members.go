package typechecker

import (
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/scope"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

func (c *Checker) resolveMemberExpression(id ast.NodeID, n *ast.MemberExpression) (*types.Descriptor, error) {
	if lit, ok := ast.Get[*ast.Literal](c.tree, n.Object); ok && lit.IsThis() {
		ctx := c.scope.ThisContext()
		if ctx == nil {
			return nil, c.errorf(diagnostics.ErrUnknownMember, id, "'this' does not have member '%s'", n.Property)
		}
		entry, ok := ctx.Member(scope.Normalize(n.Property))
		if !ok {
			return nil, c.errorf(diagnostics.ErrUnknownMember, id, "'this' does not have member '%s'", n.Property)
		}
		return c.memberType(id, entry, n.Property)
	}

	object, err := c.ResolveExpression(n.Object)
	if err != nil {
		return nil, err
	}
	class, ok := c.scope.Resolve(string(object.Name()))
	if !ok {
		return nil, c.errorf(diagnostics.ErrUnknownMember, id, "'%s' does not have member '%s'", c.objectName(n.Object), n.Property)
	}
	member, err := c.ResolveObjectMemberProperty(class, n.Property)
	if err != nil {
		return nil, err
	}
	if !member.Valid() {
		return nil, c.errorf(diagnostics.ErrUnknownMember, id, "'%s' does not have member '%s'", c.objectName(n.Object), n.Property)
	}
	return c.memberType(id, member, n.Property)
}

// ResolveObjectMemberProperty returns the node declaring property in a
// class body, scanning members in declaration order. NoNode means not found.
func (c *Checker) ResolveObjectMemberProperty(target ast.NodeID, property string) (ast.NodeID, error) {
	class, ok := ast.Get[*ast.ClassDeclaration](c.tree, target)
	if !ok {
		return ast.NoNode, c.errorf(diagnostics.ErrUnsupportedMemberTarget, target,
			"Unsupported member resolve node kind %s", c.kindName(target))
	}
	body, ok := ast.Get[*ast.BlockStatement](c.tree, class.Body)
	if !ok {
		return ast.NoNode, nil
	}
	property = scope.Normalize(property)
	for _, member := range body.Body {
		if c.tree.Parent(member) != target {
			continue
		}
		switch m := c.tree.Node(member).(type) {
		case *ast.VariableDeclaration:
			if te, ok := ast.Get[*ast.TypeExpression](c.tree, m.Declaration); ok && scope.Normalize(te.Name) == property {
				return m.Declaration, nil
			}
		case *ast.FunctionDeclaration:
			if scope.Normalize(m.Name) == property {
				return member, nil
			}
		}
	}
	return ast.NoNode, nil
}

// memberType is the type a member access yields: a property's declared
// type or a method's return type
func (c *Checker) memberType(at, member ast.NodeID, property string) (*types.Descriptor, error) {
	var t *types.Descriptor
	switch m := c.tree.Node(member).(type) {
	case *ast.TypeExpression:
		t = m.Type
	case *ast.VariableDeclaration:
		if te, ok := ast.Get[*ast.TypeExpression](c.tree, m.Declaration); ok {
			t = te.Type
		}
	case *ast.FunctionDeclaration:
		t = m.Type
	}
	if t == nil {
		return nil, c.errorf(diagnostics.ErrUndefinedType, at, "Type of member '%s' is not known yet", property)
	}
	return t, nil
}

func (c *Checker) objectName(id ast.NodeID) string {
	switch n := c.tree.Node(id).(type) {
	case *ast.Literal:
		return n.Value
	case *ast.MemberExpression:
		return n.Property
	case *ast.CallExpression:
		return n.Callee
	}
	return c.kindName(id)
}

// ResolveParameter validates argument index of a call against the matching
// formal parameter of the callee: the function's parameters, or the
// constructor's for class instantiation
func (c *Checker) ResolveParameter(call ast.NodeID, arg ast.NodeID, index int) error {
	n, ok := ast.Get[*ast.CallExpression](c.tree, call)
	if !ok {
		return c.errorf(diagnostics.ErrUnsupportedNodeKind, call, "Unsupported '%s' node type", c.kindName(call))
	}
	decl, ok := c.scope.Resolve(n.Callee)
	if !ok {
		return c.errorf(diagnostics.ErrUndefinedIdentifier, call, "Cannot resolve call to '%s'", n.Callee)
	}

	var params []ast.NodeID
	switch callee := c.tree.Node(decl).(type) {
	case *ast.FunctionDeclaration:
		params = callee.Arguments
	case *ast.ClassDeclaration:
		ctor, ok := ast.Get[*ast.ConstructorDeclaration](c.tree, c.constructorOf(decl))
		if !ok {
			return c.errorf(diagnostics.ErrMissingConstructor, call, "Missing constructor in class '%s'", callee.Name)
		}
		params = ctor.Arguments
	default:
		return c.errorf(diagnostics.ErrUnsupportedCalleeKind, call, "Unsupported '%s' node type", c.kindName(decl))
	}

	if index >= len(params) {
		return c.errorf(diagnostics.ErrTooManyArguments, arg, "Too many arguments passed for '%s'", n.Callee)
	}
	param, ok := ast.Get[*ast.TypeExpression](c.tree, params[index])
	if !ok || !param.IsReference {
		return nil
	}

	lit, ok := ast.Get[*ast.Literal](c.tree, arg)
	if !ok || !lit.IsIdentifier() {
		return c.errorf(diagnostics.ErrReferenceNotMutable, arg, "Argument '%s' of '%s' is not mutable", param.Name, n.Callee)
	}
	if _, err := c.resolveIdentifier(lit.Value, arg); err != nil {
		return err
	}
	if c.isConstant(lit.Value) {
		return c.errorf(diagnostics.ErrConstantAsReference, arg, "Cannot pass immutable '%s' as reference", lit.Value)
	}
	c.markReference(lit)
	return nil
}

// constructorOf returns the registered constructor of a class, falling
// back to the first one in its body when the class has not been visited yet
func (c *Checker) constructorOf(class ast.NodeID) ast.NodeID {
	n, ok := ast.Get[*ast.ClassDeclaration](c.tree, class)
	if !ok {
		return ast.NoNode
	}
	if n.Ctor.Valid() {
		return n.Ctor
	}
	body, ok := ast.Get[*ast.BlockStatement](c.tree, n.Body)
	if !ok {
		return ast.NoNode
	}
	for _, member := range body.Body {
		if c.tree.Kind(member) == ast.KindConstructorDeclaration {
			return member
		}
	}
	return ast.NoNode
}
