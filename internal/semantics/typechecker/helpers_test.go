package typechecker

import (
	"testing"

	"github.com/Iced-Tea/hevia-compiler/internal/context_v2"
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/table"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// fixture builds a tree and binds names by hand, standing in for the walker
type fixture struct {
	t   *testing.T
	b   *ast.Builder
	ctx *context_v2.CompilerContext
	c   *Checker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := ast.NewBuilder("test.hv")
	ctx := context_v2.NewWithTree(b.Tree(), false)
	return &fixture{t: t, b: b, ctx: ctx, c: New(ctx)}
}

func (f *fixture) tree() *ast.Tree { return f.b.Tree() }

func (f *fixture) declare(name string, id ast.NodeID) {
	f.t.Helper()
	if err := f.ctx.Scope.Declare(name, id); err != nil {
		f.t.Fatalf("declare %s: %v", name, err)
	}
}

// variable declares `var name: typeName` (or let when constant) and binds it
func (f *fixture) variable(name, typeName string, constant bool) ast.NodeID {
	f.t.Helper()
	v := f.b.Var(name, typeName, ast.NoNode, constant)
	decl, _ := ast.Get[*ast.VariableDeclaration](f.tree(), v)
	f.declare(name, decl.Declaration)
	return v
}

// class declares a class with members and binds it
func (f *fixture) class(name string, members ...ast.NodeID) ast.NodeID {
	f.t.Helper()
	id := f.b.Class(name, members...)
	f.declare(name, id)
	return id
}

// enterClass pushes a class context holding the given properties
func (f *fixture) enterClass(class ast.NodeID, properties ...ast.NodeID) {
	f.t.Helper()
	n, _ := ast.Get[*ast.ClassDeclaration](f.tree(), class)
	ctx := table.NewClassContext(class, n.Name)
	for _, p := range properties {
		v, _ := ast.Get[*ast.VariableDeclaration](f.tree(), p)
		te, _ := ast.Get[*ast.TypeExpression](f.tree(), v.Declaration)
		_ = ctx.Members.Declare(te.Name, v.Declaration)
	}
	f.ctx.Scope.PushClass(ctx)
}

func (f *fixture) resolve(id ast.NodeID) *types.Descriptor {
	f.t.Helper()
	got, err := f.c.ResolveExpression(id)
	if err != nil {
		f.t.Fatalf("ResolveExpression(%s): unexpected error %v", f.tree().Kind(id), err)
	}
	return got
}

func expectCode(t *testing.T, err error, want diagnostics.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got no error", want)
	}
	got, ok := diagnostics.CodeOf(err)
	if !ok {
		t.Fatalf("expected %s, got untyped error %v", want, err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s (%v)", want, got, err)
	}
}

func expectType(t *testing.T, got *types.Descriptor, want types.TYPE_NAME) {
	t.Helper()
	if !got.Is(want) {
		t.Fatalf("expected type %s, got %s", want, got)
	}
}
