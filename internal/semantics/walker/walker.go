// Package walker drives the type checker over a tree: depth first, left to
// right, with scopes pushed and popped around every block, class and
// function body. Declarations of functions, classes and operators are
// hoisted to the top of their block.
package walker

import (
	"github.com/Iced-Tea/hevia-compiler/internal/context_v2"
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/scope"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/table"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/typechecker"
)

type walker struct {
	ctx     *context_v2.CompilerContext
	tree    *ast.Tree
	scope   *scope.Scope
	checker *typechecker.Checker
}

// Walk checks the context's tree and stops at the first error
func Walk(ctx *context_v2.CompilerContext) error {
	w := &walker{
		ctx:     ctx,
		tree:    ctx.Tree,
		scope:   ctx.Scope,
		checker: typechecker.New(ctx),
	}

	program, ok := ast.Get[*ast.Program](w.tree, w.tree.Root)
	if !ok {
		return diagnostics.Errorf(diagnostics.ErrMalformedTree, w.tree, w.tree.Root, "tree has no program root")
	}
	if err := w.hoist(program.Body); err != nil {
		return err
	}
	return w.walkList(program.Body)
}

func (w *walker) walkList(ids []ast.NodeID) error {
	for _, id := range ids {
		if err := w.walk(id); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) visit(id ast.NodeID) error {
	w.ctx.Tracef("visit %s #%d", w.tree.Kind(id), id)
	return w.checker.Visit(id)
}

func (w *walker) declare(name string, id ast.NodeID) error {
	if err := w.scope.Declare(name, id); err != nil {
		return diagnostics.Errorf(diagnostics.ErrRedeclaration, w.tree, id, "'%s' is already declared in this scope", name)
	}
	return nil
}

// hoist declares the functions, classes and operators of a statement list
func (w *walker) hoist(ids []ast.NodeID) error {
	for _, id := range ids {
		var name string
		switch n := w.tree.Node(id).(type) {
		case *ast.FunctionDeclaration:
			name = n.Name
		case *ast.ClassDeclaration:
			name = n.Name
		case *ast.OperatorDeclaration:
			name = string(n.Operator)
		default:
			continue
		}
		if err := w.declare(name, id); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walk(id ast.NodeID) error {
	if !id.Valid() {
		return nil
	}

	switch n := w.tree.Node(id).(type) {
	case *ast.Literal, *ast.BinaryExpression, *ast.TernaryExpression, *ast.MemberExpression, *ast.CallExpression:
		if err := w.visit(id); err != nil {
			return err
		}
		return w.walkList(w.tree.Children(id))

	case *ast.BlockStatement:
		w.scope.Push()
		defer w.scope.Pop()
		if err := w.hoist(n.Body); err != nil {
			return err
		}
		return w.walkList(n.Body)

	case *ast.VariableDeclaration:
		return w.walkVariable(id, n)

	case *ast.FunctionDeclaration:
		if err := w.visit(id); err != nil {
			return err
		}
		return w.walkBody(id, n.Arguments, n.Body)

	case *ast.ConstructorDeclaration:
		if err := w.visit(id); err != nil {
			return err
		}
		return w.walkBody(id, n.Arguments, n.Body)

	case *ast.OperatorDeclaration:
		if err := w.visit(id); err != nil {
			return err
		}
		return w.walk(n.Ctor)

	case *ast.ClassDeclaration:
		if err := w.walkClass(id, n); err != nil {
			return err
		}
		return w.visit(id)

	case *ast.IfStatement, *ast.ReturnStatement:
		if err := w.visit(id); err != nil {
			return err
		}
		return w.walkList(w.tree.Children(id))

	case *ast.TypeExpression:
		return nil
	}

	return diagnostics.Errorf(diagnostics.ErrUnsupportedNodeKind, w.tree, id, "Unsupported '%s' node type", w.tree.Kind(id))
}

// walkVariable visits the initializer before the declaration, so a
// variable is not in scope inside its own initializer
func (w *walker) walkVariable(id ast.NodeID, n *ast.VariableDeclaration) error {
	if err := w.walk(n.Init); err != nil {
		return err
	}
	if err := w.visit(id); err != nil {
		return err
	}
	decl, _ := ast.Get[*ast.TypeExpression](w.tree, n.Declaration)
	return w.declare(decl.Name, n.Declaration)
}

// walkBody checks a function or constructor body in a scope holding its
// parameters, with the declaration as the active return context
func (w *walker) walkBody(decl ast.NodeID, params []ast.NodeID, body ast.NodeID) error {
	w.scope.Push()
	defer w.scope.Pop()

	for _, p := range params {
		param, ok := ast.Get[*ast.TypeExpression](w.tree, p)
		if !ok {
			continue
		}
		if err := w.declare(param.Name, p); err != nil {
			return err
		}
	}

	w.checker.PushReturnContext(decl)
	defer w.checker.PopReturnContext()
	return w.walk(body)
}

// walkClass enters the class body with a class context holding every
// property and method, then walks the members in order. Methods are bound
// in the class scope up front; properties, like variables, only once their
// initializer has been checked.
func (w *walker) walkClass(id ast.NodeID, n *ast.ClassDeclaration) error {
	body, ok := ast.Get[*ast.BlockStatement](w.tree, n.Body)
	if !ok {
		return nil
	}

	w.scope.Push()
	defer w.scope.Pop()

	classCtx := table.NewClassContext(id, n.Name)
	for _, member := range body.Body {
		var name string
		var decl ast.NodeID
		switch m := w.tree.Node(member).(type) {
		case *ast.VariableDeclaration:
			te, ok := ast.Get[*ast.TypeExpression](w.tree, m.Declaration)
			if !ok {
				continue
			}
			name, decl = te.Name, m.Declaration
		case *ast.FunctionDeclaration:
			name, decl = m.Name, member
		default:
			continue
		}
		if err := classCtx.Members.Declare(scope.Normalize(name), decl); err != nil {
			return diagnostics.Errorf(diagnostics.ErrRedeclaration, w.tree, member, "'%s' is already declared in class '%s'", name, n.Name)
		}
		if w.tree.Kind(member) == ast.KindFunctionDeclaration {
			if err := w.declare(name, decl); err != nil {
				return err
			}
		}
	}
	if err := w.hoist(operatorsAndClasses(w.tree, body.Body)); err != nil {
		return err
	}

	w.scope.PushClass(classCtx)
	defer w.scope.PopClass()
	return w.walkList(body.Body)
}

func operatorsAndClasses(tree *ast.Tree, ids []ast.NodeID) []ast.NodeID {
	var out []ast.NodeID
	for _, id := range ids {
		switch tree.Kind(id) {
		case ast.KindOperatorDeclaration, ast.KindClassDeclaration:
			out = append(out, id)
		}
	}
	return out
}
