package typechecker

import (
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// Visit runs the handler for a node's kind. Programs, blocks and type
// expressions have no handler.
func (c *Checker) Visit(id ast.NodeID) error {
	switch c.tree.Kind(id) {
	case ast.KindLiteral:
		return c.VisitLiteral(id)
	case ast.KindCallExpression:
		return c.VisitCallExpression(id)
	case ast.KindBinaryExpression:
		return c.VisitBinaryExpression(id)
	case ast.KindTernaryExpression:
		return c.VisitTernaryExpression(id)
	case ast.KindMemberExpression:
		return c.VisitMemberExpression(id)
	case ast.KindIfStatement:
		return c.VisitIfStatement(id)
	case ast.KindReturnStatement:
		return c.VisitReturnStatement(id)
	case ast.KindVariableDeclaration:
		return c.VisitVariableDeclaration(id)
	case ast.KindFunctionDeclaration:
		return c.VisitFunctionDeclaration(id)
	case ast.KindOperatorDeclaration:
		return c.VisitOperatorDeclaration(id)
	case ast.KindClassDeclaration:
		return c.VisitClassDeclaration(id)
	case ast.KindConstructorDeclaration:
		return c.VisitConstructorDeclaration(id)
	}
	return nil
}

// visitExpression resolves an expression and checks it against the type
// demanded by its syntactic context
func (c *Checker) visitExpression(id ast.NodeID) error {
	if err := c.ResolveType(id); err != nil {
		return err
	}
	return c.checkDeclarationType(id, c.typeOf(id))
}

// checkDeclarationType compares an initializer with the declared type of
// its variable. Null may initialize any declared type.
func (c *Checker) checkDeclarationType(id ast.NodeID, t *types.Descriptor) error {
	v, ok := ast.Get[*ast.VariableDeclaration](c.tree, c.tree.Parent(id))
	if !ok || v.Init != id {
		return nil
	}
	decl, ok := ast.Get[*ast.TypeExpression](c.tree, v.Declaration)
	if !ok || decl.Type == nil {
		return nil
	}
	if t.Is(types.TYPE_NULL) {
		return nil
	}
	if !decl.Type.Equals(t) {
		return c.errorf(diagnostics.ErrDeclarationTypeMismatch, id,
			"'%s' expected '%s' but got '%s'", decl.Name, decl.Type, t)
	}
	return nil
}

func (c *Checker) VisitLiteral(id ast.NodeID) error {
	return c.visitExpression(id)
}

// VisitCallExpression resolves the call and validates each argument
// against the callee's parameters
func (c *Checker) VisitCallExpression(id ast.NodeID) error {
	if err := c.visitExpression(id); err != nil {
		return err
	}
	call, _ := ast.Get[*ast.CallExpression](c.tree, id)
	for i, arg := range call.Arguments {
		if err := c.ResolveType(arg); err != nil {
			return err
		}
		if err := c.ResolveParameter(id, arg, i); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) VisitBinaryExpression(id ast.NodeID) error {
	return c.visitExpression(id)
}

func (c *Checker) VisitTernaryExpression(id ast.NodeID) error {
	return c.visitExpression(id)
}

// VisitMemberExpression also marks accesses on literal objects as absolute
func (c *Checker) VisitMemberExpression(id ast.NodeID) error {
	if err := c.visitExpression(id); err != nil {
		return err
	}
	n, _ := ast.Get[*ast.MemberExpression](c.tree, id)
	n.IsAbsolute = c.tree.Kind(n.Object) == ast.KindLiteral
	return nil
}

func (c *Checker) VisitIfStatement(id ast.NodeID) error {
	n, _ := ast.Get[*ast.IfStatement](c.tree, id)
	if n.IsElse() {
		return nil
	}
	if err := c.ResolveType(n.Test); err != nil {
		return err
	}
	if t := c.typeOf(n.Test); !t.Is(types.TYPE_BOOLEAN) {
		return c.errorf(diagnostics.ErrConditionTypeMismatch, n.Test,
			"IfStatement condition expected 'Boolean' but got '%s'", t)
	}
	return nil
}

// VisitReturnStatement checks a return against the innermost function,
// operator or constructor. A bare return is allowed only in Void contexts.
func (c *Checker) VisitReturnStatement(id ast.NodeID) error {
	n, _ := ast.Get[*ast.ReturnStatement](c.tree, id)

	context := c.ReturnContext()
	if !context.Valid() {
		return c.errorf(diagnostics.ErrInvalidReturnContext, id, "Invalid return context")
	}
	expected := c.declaredReturnType(context)
	target := c.declarationName(context)

	if !n.Argument.Valid() {
		if types.IsVoid(expected) {
			return nil
		}
		return c.errorf(diagnostics.ErrReturnTypeMismatch, id,
			"'%s' returns '%s' but got '%s'", target, expected, types.TYPE_VOID)
	}
	if err := c.ResolveType(n.Argument); err != nil {
		return err
	}
	if types.IsVoid(expected) {
		return c.errorf(diagnostics.ErrVoidReturnViolation, id, "Invalid return statement in '%s'", target)
	}
	if got := c.typeOf(n.Argument); !expected.Equals(got) {
		return c.errorf(diagnostics.ErrReturnTypeMismatch, id,
			"'%s' returns '%s' but got '%s'", target, expected, got)
	}
	return nil
}

// VisitVariableDeclaration runs after the initializer has been visited.
// Inferred declarations take the initializer's type.
func (c *Checker) VisitVariableDeclaration(id ast.NodeID) error {
	n, _ := ast.Get[*ast.VariableDeclaration](c.tree, id)
	decl, ok := ast.Get[*ast.TypeExpression](c.tree, n.Declaration)
	if !ok {
		return c.errorf(diagnostics.ErrUnsupportedNodeKind, id, "Unsupported '%s' node type", c.kindName(n.Declaration))
	}

	n.IsClassProperty = c.inClassBody(id)

	if n.HasInferredType && decl.Type == nil && n.Init.Valid() {
		if err := c.ResolveType(n.Init); err != nil {
			return err
		}
		decl.Type = c.typeOf(n.Init)
	}
	if err := c.resolveTypeName(decl.Type, id, decl.Name); err != nil {
		return err
	}
	return c.setType(n.Declaration, decl.Type)
}

func (c *Checker) inClassBody(id ast.NodeID) bool {
	_, ok := c.tree.ParentNode(id).(*ast.ClassDeclaration)
	return ok
}

// VisitFunctionDeclaration validates the signature of a function
func (c *Checker) VisitFunctionDeclaration(id ast.NodeID) error {
	n, _ := ast.Get[*ast.FunctionDeclaration](c.tree, id)

	n.IsClassProperty = c.inClassBody(id)
	if err := c.resolveTypeName(n.Type, id, n.Name); err != nil {
		return err
	}
	if !types.IsVoid(n.Type) && !n.DoesReturn {
		return c.errorf(diagnostics.ErrMissingReturn, id, "Missing return '%s' in function '%s'", n.Type, n.Name)
	}
	return c.resolveParameters(n.Arguments)
}

// VisitOperatorDeclaration checks that a non-Void overload returns
func (c *Checker) VisitOperatorDeclaration(id ast.NodeID) error {
	n, _ := ast.Get[*ast.OperatorDeclaration](c.tree, id)
	ctor, ok := ast.Get[*ast.ConstructorDeclaration](c.tree, n.Ctor)
	if !ok {
		return c.errorf(diagnostics.ErrUnsupportedNodeKind, id, "Operator '%s' has no signature", n.Operator)
	}
	if !types.IsVoid(ctor.Type) && !n.DoesReturn {
		return c.errorf(diagnostics.ErrMissingReturn, id, "Missing return '%s' in operator '%s'", ctor.Type, n.Operator)
	}
	return nil
}

// VisitClassDeclaration runs after the class body, once the constructor is registered
func (c *Checker) VisitClassDeclaration(id ast.NodeID) error {
	n, _ := ast.Get[*ast.ClassDeclaration](c.tree, id)
	ctor, ok := ast.Get[*ast.ConstructorDeclaration](c.tree, n.Ctor)
	if !ok {
		return c.errorf(diagnostics.ErrMissingConstructor, id, "Missing constructor in class '%s'", n.Name)
	}
	if err := c.setType(id, types.NewFakeLiteral(n.Name)); err != nil {
		return err
	}
	if !types.IsVoid(ctor.Type) && !n.DoesReturn {
		return c.errorf(diagnostics.ErrMissingReturn, id, "Missing return '%s' in class '%s'", ctor.Type, n.Name)
	}
	return nil
}

// VisitConstructorDeclaration registers the first constructor of a class.
// Constructors outside classes must declare a known return type.
func (c *Checker) VisitConstructorDeclaration(id ast.NodeID) error {
	n, _ := ast.Get[*ast.ConstructorDeclaration](c.tree, id)
	if class, ok := ast.Get[*ast.ClassDeclaration](c.tree, c.tree.Parent(id)); ok {
		if !class.Ctor.Valid() {
			class.Ctor = id
		}
	} else if err := c.resolveTypeName(n.Type, id, c.declarationName(id)); err != nil {
		return err
	}
	return c.resolveParameters(n.Arguments)
}

// resolveParameters checks parameter type names and caches their types
func (c *Checker) resolveParameters(params []ast.NodeID) error {
	for _, p := range params {
		param, ok := ast.Get[*ast.TypeExpression](c.tree, p)
		if !ok {
			return c.errorf(diagnostics.ErrUnsupportedNodeKind, p, "Unsupported '%s' node type", c.kindName(p))
		}
		if err := c.resolveTypeName(param.Type, p, param.Name); err != nil {
			return err
		}
		if c.typeOf(p) == nil {
			if err := c.setType(p, param.Type); err != nil {
				return err
			}
		}
	}
	return nil
}
