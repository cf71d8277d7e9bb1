package typechecker

import (
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/tokens"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// resolveOperator returns the overload declared for the expression's
// operator token, or nil when the operator is native
func (c *Checker) resolveOperator(n *ast.BinaryExpression) *ast.OperatorDeclaration {
	decl, ok := c.scope.Resolve(string(n.Operator))
	if !ok {
		return nil
	}
	op, _ := ast.Get[*ast.OperatorDeclaration](c.tree, decl)
	return op
}

func (c *Checker) resolveBinaryExpression(id ast.NodeID, n *ast.BinaryExpression) (*types.Descriptor, error) {
	op := c.resolveOperator(n)

	left, err := c.ResolveExpression(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.ResolveExpression(n.Right)
	if err != nil {
		return nil, err
	}

	if op != nil {
		return c.resolveCustomOperator(id, n, op, left, right)
	}
	return c.resolveNativeOperator(id, n, left, right)
}

func (c *Checker) resolveCustomOperator(id ast.NodeID, n *ast.BinaryExpression, op *ast.OperatorDeclaration, left, right *types.Descriptor) (*types.Descriptor, error) {
	ctor, ok := ast.Get[*ast.ConstructorDeclaration](c.tree, op.Ctor)
	if !ok || len(ctor.Arguments) != 2 {
		return nil, c.errorf(diagnostics.ErrOperatorArgumentTypeMismatch, id,
			"Operator '%s' must declare exactly two parameters", op.Operator)
	}

	sides := []struct {
		operand ast.NodeID
		actual  *types.Descriptor
		param   ast.NodeID
		label   string
	}{
		{n.Left, left, ctor.Arguments[0], "Left"},
		{n.Right, right, ctor.Arguments[1], "Right"},
	}

	for _, side := range sides {
		param, ok := ast.Get[*ast.TypeExpression](c.tree, side.param)
		if !ok {
			return nil, c.errorf(diagnostics.ErrUnsupportedNodeKind, side.param,
				"Unsupported '%s' node type", c.kindName(side.param))
		}
		if param.IsReference {
			if err := c.checkReferenceOperand(op, side.operand, side.label); err != nil {
				return nil, err
			}
		}
		if !param.Type.Equals(side.actual) {
			return nil, c.errorf(diagnostics.ErrOperatorArgumentTypeMismatch, side.operand,
				"Operator '%s' expected '%s' but got '%s'", op.Operator, param.Type, side.actual)
		}
	}

	return ctor.Type, nil
}

// checkReferenceOperand enforces that an inout operand is a mutable identifier
func (c *Checker) checkReferenceOperand(op *ast.OperatorDeclaration, operand ast.NodeID, label string) error {
	lit, ok := ast.Get[*ast.Literal](c.tree, operand)
	if !ok || !lit.IsIdentifier() {
		return c.errorf(diagnostics.ErrReferenceNotMutable, operand,
			"%s side of %s is not mutable", label, op.Operator)
	}
	if c.isConstant(lit.Value) {
		return c.errorf(diagnostics.ErrConstantAsReference, operand,
			"Constant '%s' is immutable", lit.Value)
	}
	c.markReference(lit)
	return nil
}

func (c *Checker) resolveNativeOperator(id ast.NodeID, n *ast.BinaryExpression, left, right *types.Descriptor) (*types.Descriptor, error) {
	op, ok := tokens.LookupOperator(n.Operator)
	if !ok {
		return nil, c.errorf(diagnostics.ErrUndefinedIdentifier, id, "Operator '%s' is not defined", n.Operator)
	}

	if !tokens.IsAssignment(n.Operator) {
		if tokens.IsComparisonOrLogical(n.Operator) {
			return types.Named(types.TYPE_BOOLEAN), nil
		}
		return types.Named(types.TYPE_INT), nil
	}

	returns := left
	if op.Associativity == tokens.AssocRight {
		returns = right
	}
	return c.resolveAssignment(n, returns)
}

// resolveAssignment validates the target of an assignment and the assigned
// type. No Null exception applies here; the value type must match exactly.
func (c *Checker) resolveAssignment(n *ast.BinaryExpression, value *types.Descriptor) (*types.Descriptor, error) {
	var target *types.Descriptor

	switch lhs := c.tree.Node(n.Left).(type) {
	case *ast.MemberExpression:
		target = c.typeOf(n.Left)
	case *ast.Literal:
		if !lhs.IsIdentifier() {
			name := string(lhs.Token)
			if lhs.IsThis() {
				name = "this"
			}
			return nil, c.errorf(diagnostics.ErrInvalidAssignmentTarget, n.Left, "Cannot assign to '%s'", name)
		}
		if c.isConstant(lhs.Value) {
			return nil, c.errorf(diagnostics.ErrConstantMutation, n.Left, "Constant '%s' is immutable", lhs.Value)
		}
		decl, _ := c.scope.Resolve(lhs.Value)
		te, ok := ast.Get[*ast.TypeExpression](c.tree, decl)
		if !ok {
			return nil, c.errorf(diagnostics.ErrInvalidAssignmentTarget, n.Left,
				"Cannot assign to %s '%s'", c.kindName(decl), lhs.Value)
		}
		target = te.Type
	default:
		return nil, c.errorf(diagnostics.ErrInvalidAssignmentTarget, n.Left, "Cannot assign to '%s'", c.kindName(n.Left))
	}

	if !target.Equals(value) {
		return nil, c.errorf(diagnostics.ErrAssignmentTypeMismatch, n.Right,
			"Cannot assign value of type '%s' to type '%s'", value, target)
	}
	return value, nil
}

// variableOf returns the declaration binding name, nil for anything but variables and parameters
func (c *Checker) variableOf(name string) (*ast.TypeExpression, ast.NodeID) {
	decl, ok := c.scope.Resolve(name)
	if !ok {
		return nil, ast.NoNode
	}
	te, ok := ast.Get[*ast.TypeExpression](c.tree, decl)
	if !ok {
		return nil, ast.NoNode
	}
	return te, decl
}

// isConstant reports whether name is bound by a constant variable declaration
func (c *Checker) isConstant(name string) bool {
	_, decl := c.variableOf(name)
	if !decl.Valid() {
		return false
	}
	v, ok := ast.Get[*ast.VariableDeclaration](c.tree, c.tree.Parent(decl))
	return ok && v.IsConstant
}

// markReference records that an identifier is passed by reference, and that
// the variable it names must be emitted as a pointer
func (c *Checker) markReference(lit *ast.Literal) {
	lit.IsReference = true
	if te, _ := c.variableOf(lit.Value); te != nil && !te.IsReference {
		te.IsPointer = true
	}
}
