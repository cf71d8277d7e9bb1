package typechecker

import (
	"strings"
	"testing"

	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// pointClass declares `class Point { var x: Int; func norm() -> Double; init() }`
func pointClass(f *fixture) (class, x ast.NodeID) {
	f.t.Helper()
	x = f.b.Var("x", "Int", ast.NoNode, false)
	norm := f.b.Func("norm", "Double", nil, f.b.Return(f.b.Number("1.5")))
	class = f.class("Point", x, norm, f.b.Ctor("", nil))
	return class, x
}

func TestThisMember(t *testing.T) {
	f := newFixture(t)
	class, x := pointClass(f)
	f.enterClass(class, x)

	member := f.b.Member(f.b.This(), "x")
	expectType(t, f.resolve(member), types.TYPE_INT)

	_, err := f.c.ResolveExpression(f.b.Member(f.b.This(), "y"))
	expectCode(t, err, diagnostics.ErrUnknownMember)
	if !strings.Contains(err.Error(), "'this' does not have member 'y'") {
		t.Errorf("message should name 'this', got %q", err)
	}
}

func TestObjectMember(t *testing.T) {
	f := newFixture(t)
	pointClass(f)
	f.variable("p", "Point", false)

	expectType(t, f.resolve(f.b.Member(f.b.Ident("p"), "x")), types.TYPE_INT)
	expectType(t, f.resolve(f.b.Member(f.b.Ident("p"), "norm")), types.TYPE_DOUBLE)

	_, err := f.c.ResolveExpression(f.b.Member(f.b.Ident("p"), "z"))
	expectCode(t, err, diagnostics.ErrUnknownMember)
	if !strings.Contains(err.Error(), "'p' does not have member 'z'") {
		t.Errorf("message should name the object, got %q", err)
	}
}

func TestMemberNamesAreNormalized(t *testing.T) {
	const composed, decomposed = "caf\u00e9", "cafe\u0301"

	f := newFixture(t)
	prop := f.b.Var(composed, "String", ast.NoNode, false)
	class := f.class("Menu", prop, f.b.Ctor("", nil))
	f.variable("m", "Menu", false)

	expectType(t, f.resolve(f.b.Member(f.b.Ident("m"), decomposed)), types.TYPE_STRING)

	got, err := f.c.ResolveObjectMemberProperty(class, decomposed)
	if err != nil {
		t.Fatal(err)
	}
	decl, _ := ast.Get[*ast.VariableDeclaration](f.tree(), prop)
	if got != decl.Declaration {
		t.Errorf("expected property declaration %d, got %d", decl.Declaration, got)
	}

	f.enterClass(class, prop)
	expectType(t, f.resolve(f.b.Member(f.b.This(), decomposed)), types.TYPE_STRING)
}

func TestMemberOfConstructedObject(t *testing.T) {
	f := newFixture(t)
	pointClass(f)
	expectType(t, f.resolve(f.b.Member(f.b.Call("Point"), "x")), types.TYPE_INT)
}

func TestMemberOfNativeValue(t *testing.T) {
	f := newFixture(t)
	f.variable("n", "Int", false)
	_, err := f.c.ResolveExpression(f.b.Member(f.b.Ident("n"), "x"))
	expectCode(t, err, diagnostics.ErrUnknownMember)
}

func TestMemberOfNonClassTarget(t *testing.T) {
	f := newFixture(t)
	fn := f.b.Func("Shape", "", nil)
	f.declare("Shape", fn)

	_, err := f.c.ResolveObjectMemberProperty(fn, "x")
	expectCode(t, err, diagnostics.ErrUnsupportedMemberTarget)
}

func TestResolveObjectMemberPropertyOrder(t *testing.T) {
	f := newFixture(t)
	class, x := pointClass(f)

	got, err := f.c.ResolveObjectMemberProperty(class, "x")
	if err != nil {
		t.Fatal(err)
	}
	decl, _ := ast.Get[*ast.VariableDeclaration](f.tree(), x)
	if got != decl.Declaration {
		t.Errorf("expected property declaration %d, got %d", decl.Declaration, got)
	}
	if got, _ := f.c.ResolveObjectMemberProperty(class, "missing"); got.Valid() {
		t.Errorf("expected no member, got %d", got)
	}
}

// swapFunction declares `func swap(inout a: Int, b: Int)`
func swapFunction(f *fixture) {
	f.t.Helper()
	fn := f.b.Func("swap", "", []ast.NodeID{
		f.b.Param("a", "Int", true),
		f.b.Param("b", "Int", false),
	})
	f.declare("swap", fn)
}

func TestResolveParameter(t *testing.T) {
	t.Run("too many arguments", func(t *testing.T) {
		f := newFixture(t)
		swapFunction(f)
		f.variable("x", "Int", false)
		extra := f.b.Number("3")
		call := f.b.Call("swap", f.b.Ident("x"), f.b.Number("2"), extra)
		expectCode(t, f.c.ResolveParameter(call, extra, 2), diagnostics.ErrTooManyArguments)
	})

	t.Run("literal for inout", func(t *testing.T) {
		f := newFixture(t)
		swapFunction(f)
		arg := f.b.Number("1")
		call := f.b.Call("swap", arg, f.b.Number("2"))
		expectCode(t, f.c.ResolveParameter(call, arg, 0), diagnostics.ErrReferenceNotMutable)
	})

	t.Run("call result for inout", func(t *testing.T) {
		f := newFixture(t)
		swapFunction(f)
		arg := f.b.Call("swap")
		call := f.b.Call("swap", arg, f.b.Number("2"))
		expectCode(t, f.c.ResolveParameter(call, arg, 0), diagnostics.ErrReferenceNotMutable)
	})

	t.Run("constant for inout", func(t *testing.T) {
		f := newFixture(t)
		swapFunction(f)
		f.variable("k", "Int", true)
		arg := f.b.Ident("k")
		call := f.b.Call("swap", arg, f.b.Number("2"))
		expectCode(t, f.c.ResolveParameter(call, arg, 0), diagnostics.ErrConstantAsReference)
	})

	t.Run("mutable identifier for inout", func(t *testing.T) {
		f := newFixture(t)
		swapFunction(f)
		f.variable("x", "Int", false)
		arg := f.b.Ident("x")
		call := f.b.Call("swap", arg, f.b.Number("2"))
		if err := f.c.ResolveParameter(call, arg, 0); err != nil {
			t.Fatal(err)
		}
		if lit, _ := ast.Get[*ast.Literal](f.tree(), arg); !lit.IsReference {
			t.Error("inout argument should be marked as reference")
		}
	})

	t.Run("constructor parameters", func(t *testing.T) {
		f := newFixture(t)
		ctor := f.b.Ctor("", []ast.NodeID{f.b.Param("v", "Int", true)})
		f.class("Box", ctor)
		arg := f.b.Number("1")
		call := f.b.Call("Box", arg)
		expectCode(t, f.c.ResolveParameter(call, arg, 0), diagnostics.ErrReferenceNotMutable)
	})

	t.Run("class without constructor", func(t *testing.T) {
		f := newFixture(t)
		f.class("Empty")
		arg := f.b.Number("1")
		call := f.b.Call("Empty", arg)
		expectCode(t, f.c.ResolveParameter(call, arg, 0), diagnostics.ErrMissingConstructor)
	})
}
