package walker

import (
	"testing"

	"github.com/Iced-Tea/hevia-compiler/internal/context_v2"
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/controlflow"
	"github.com/Iced-Tea/hevia-compiler/internal/tokens"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// check annotates control flow and walks the program built by b
func check(t *testing.T, b *ast.Builder) error {
	t.Helper()
	controlflow.Annotate(b.Tree())
	return Walk(context_v2.NewWithTree(b.Tree(), false))
}

func mustCheck(t *testing.T, b *ast.Builder) {
	t.Helper()
	if err := check(t, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func expectCode(t *testing.T, err error, want diagnostics.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got no error", want)
	}
	if !diagnostics.HasCode(err, want) {
		t.Fatalf("expected %s, got %v", want, err)
	}
}

func expectType(t *testing.T, tree *ast.Tree, id ast.NodeID, want types.TYPE_NAME) {
	t.Helper()
	if got := tree.ResolvedType(id); !got.Is(want) {
		t.Fatalf("node %d (%s): expected %s, got %s", id, tree.Kind(id), want, got)
	}
}

// vectorProgram declares
//
//	class Vector { init() {} }
//	operator + (inout l: Vector, r: Vector) -> Vector { return l }
func vectorProgram(b *ast.Builder) []ast.NodeID {
	class := b.Class("Vector", b.Ctor("", nil))
	ctor := b.Ctor("Vector",
		[]ast.NodeID{b.Param("l", "Vector", true), b.Param("r", "Vector", false)},
		b.Return(b.Ident("l")))
	return []ast.NodeID{class, b.Operator(tokens.PLUS_TOKEN, ctor)}
}

func TestDeclarationScenarios(t *testing.T) {
	t.Run("int initializer", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		init := b.Number("5")
		v := b.Var("x", "Int", init, false)
		b.Program(v)
		mustCheck(t, b)

		decl, _ := ast.Get[*ast.VariableDeclaration](b.Tree(), v)
		expectType(t, b.Tree(), decl.Declaration, types.TYPE_INT)
		expectType(t, b.Tree(), init, types.TYPE_INT)
	})

	t.Run("string into int", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Var("x", "Int", b.String("hi"), false))
		expectCode(t, check(t, b), diagnostics.ErrDeclarationTypeMismatch)
	})

	t.Run("null into class type", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(
			b.Class("Foo", b.Ctor("", nil)),
			b.Var("f", "Foo", b.Null(), false),
		)
		mustCheck(t, b)
	})

	t.Run("inferred from call", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		v := b.Var("f", "", b.Call("Foo"), false)
		b.Program(b.Class("Foo", b.Ctor("", nil)), v)
		mustCheck(t, b)

		decl, _ := ast.Get[*ast.VariableDeclaration](b.Tree(), v)
		expectType(t, b.Tree(), decl.Declaration, "Foo")
	})

	t.Run("own initializer is out of scope", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Var("x", "Int", b.Ident("x"), false))
		expectCode(t, check(t, b), diagnostics.ErrUndefinedIdentifier)
	})

	t.Run("redeclaration", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(
			b.Var("x", "Int", b.Number("1"), false),
			b.Var("x", "Int", b.Number("2"), false),
		)
		expectCode(t, check(t, b), diagnostics.ErrRedeclaration)
	})

	t.Run("shadowing in a block", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		inner := b.Var("x", "String", b.String("s"), false)
		b.Program(
			b.Var("x", "Int", b.Number("1"), false),
			b.Block(inner),
		)
		mustCheck(t, b)
	})

	t.Run("block scope ends", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(
			b.Block(b.Var("y", "Int", b.Number("1"), false)),
			b.Var("z", "Int", b.Ident("y"), false),
		)
		expectCode(t, check(t, b), diagnostics.ErrUndefinedIdentifier)
	})
}

func TestClassScenarios(t *testing.T) {
	t.Run("missing constructor", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Class("Foo"))
		expectCode(t, check(t, b), diagnostics.ErrMissingConstructor)
	})

	t.Run("method reads property through this", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		access := b.Member(b.This(), "x")
		class := b.Class("Point",
			b.Var("x", "Int", ast.NoNode, false),
			b.Func("getX", "Int", nil, b.Return(access)),
			b.Ctor("", nil),
		)
		b.Program(class)
		mustCheck(t, b)

		expectType(t, b.Tree(), access, types.TYPE_INT)
		expectType(t, b.Tree(), class, "Point")
		m, _ := ast.Get[*ast.MemberExpression](b.Tree(), access)
		if !m.IsAbsolute {
			t.Error("access through this should be absolute")
		}
	})

	t.Run("unknown member of this", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Class("Point",
			b.Func("getY", "Int", nil, b.Return(b.Member(b.This(), "y"))),
			b.Ctor("", nil),
		))
		expectCode(t, check(t, b), diagnostics.ErrUnknownMember)
	})

	t.Run("member of an instance", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		access := b.Member(b.Ident("p"), "x")
		b.Program(
			b.Class("Point", b.Var("x", "Int", ast.NoNode, false), b.Ctor("", nil)),
			b.Var("p", "Point", b.Call("Point"), false),
			b.Var("n", "Int", access, false),
		)
		mustCheck(t, b)
		expectType(t, b.Tree(), access, types.TYPE_INT)
	})

	t.Run("duplicate member", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Class("Point",
			b.Var("x", "Int", ast.NoNode, false),
			b.Var("x", "Int", ast.NoNode, false),
			b.Ctor("", nil),
		))
		expectCode(t, check(t, b), diagnostics.ErrRedeclaration)
	})

	t.Run("property initializer cannot read itself", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Class("Counter",
			b.Var("a", "Int", b.Ident("a"), false),
			b.Ctor("", nil),
		))
		expectCode(t, check(t, b), diagnostics.ErrUndefinedIdentifier)
	})

	t.Run("property initializer reads an earlier property", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Class("Counter",
			b.Var("a", "Int", b.Number("1"), false),
			b.Var("b", "Int", b.Ident("a"), false),
			b.Ctor("", nil),
		))
		mustCheck(t, b)
	})

	t.Run("constructor call is instantiation", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		call := b.Call("Foo")
		b.Program(b.Class("Foo", b.Ctor("", nil)), b.Var("f", "Foo", call, true))
		mustCheck(t, b)
		n, _ := ast.Get[*ast.CallExpression](b.Tree(), call)
		if !n.IsInstantiatedClass {
			t.Error("call of a class should be marked as instantiation")
		}
	})
}

func TestFunctionScenarios(t *testing.T) {
	t.Run("missing return", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Func("count", "Int", nil))
		expectCode(t, check(t, b), diagnostics.ErrMissingReturn)
	})

	t.Run("if without else does not return", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		p := b.Param("n", "Int", false)
		b.Program(b.Func("sign", "Int", []ast.NodeID{p},
			b.If(b.Binary(tokens.LESS_TOKEN, b.Ident("n"), b.Number("0")),
				[]ast.NodeID{b.Return(b.Number("1"))}, ast.NoNode),
		))
		expectCode(t, check(t, b), diagnostics.ErrMissingReturn)
	})

	t.Run("both branches return", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		p := b.Param("n", "Int", false)
		b.Program(b.Func("sign", "Int", []ast.NodeID{p},
			b.If(b.Binary(tokens.LESS_TOKEN, b.Ident("n"), b.Number("0")),
				[]ast.NodeID{b.Return(b.Number("1"))},
				b.Else(b.Return(b.Number("2")))),
		))
		mustCheck(t, b)
	})

	t.Run("parameters are in scope", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		sum := b.Binary(tokens.PLUS_TOKEN, b.Ident("a"), b.Ident("b"))
		b.Program(b.Func("add", "Int",
			[]ast.NodeID{b.Param("a", "Int", false), b.Param("b", "Int", false)},
			b.Return(sum)))
		mustCheck(t, b)
		expectType(t, b.Tree(), sum, types.TYPE_INT)
	})

	t.Run("parameters leave scope", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(
			b.Func("id", "Int", []ast.NodeID{b.Param("a", "Int", false)}, b.Return(b.Ident("a"))),
			b.Var("x", "Int", b.Ident("a"), false),
		)
		expectCode(t, check(t, b), diagnostics.ErrUndefinedIdentifier)
	})

	t.Run("call before declaration", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		call := b.Call("later")
		b.Program(
			b.Var("x", "Int", call, false),
			b.Func("later", "Int", nil, b.Return(b.Number("1"))),
		)
		mustCheck(t, b)
		expectType(t, b.Tree(), call, types.TYPE_INT)
	})

	t.Run("return outside function", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Return(b.Number("1")))
		expectCode(t, check(t, b), diagnostics.ErrInvalidReturnContext)
	})

	t.Run("literal for inout parameter", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(
			b.Func("bump", "", []ast.NodeID{b.Param("n", "Int", true)}),
			b.Call("bump", b.Number("1")),
		)
		expectCode(t, check(t, b), diagnostics.ErrReferenceNotMutable)
	})

	t.Run("variable for inout parameter", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		arg := b.Ident("x")
		b.Program(
			b.Func("bump", "", []ast.NodeID{b.Param("n", "Int", true)}),
			b.Var("x", "Int", b.Number("1"), false),
			b.Call("bump", arg),
		)
		mustCheck(t, b)
		lit, _ := ast.Get[*ast.Literal](b.Tree(), arg)
		if !lit.IsReference {
			t.Error("argument bound to an inout parameter should be a reference")
		}
	})
}

func TestOperatorScenarios(t *testing.T) {
	t.Run("native comparison", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		cmp := b.Binary(tokens.LESS_TOKEN, b.Ident("a"), b.Ident("b"))
		b.Program(
			b.Var("a", "Int", b.Number("1"), false),
			b.Var("b", "Int", b.Number("2"), false),
			cmp,
		)
		mustCheck(t, b)
		expectType(t, b.Tree(), cmp, types.TYPE_BOOLEAN)
	})

	t.Run("custom operator on constant reference", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		body := vectorProgram(b)
		body = append(body,
			b.Var("constVec", "Vector", b.Call("Vector"), true),
			b.Var("other", "Vector", b.Call("Vector"), false),
			b.Binary(tokens.PLUS_TOKEN, b.Ident("constVec"), b.Ident("other")),
		)
		b.Program(body...)
		expectCode(t, check(t, b), diagnostics.ErrConstantAsReference)
	})

	t.Run("custom operator on variables", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		sum := b.Binary(tokens.PLUS_TOKEN, b.Ident("v"), b.Ident("w"))
		body := vectorProgram(b)
		body = append(body,
			b.Var("v", "Vector", b.Call("Vector"), false),
			b.Var("w", "Vector", b.Call("Vector"), true),
			sum,
		)
		b.Program(body...)
		mustCheck(t, b)
		expectType(t, b.Tree(), sum, "Vector")
	})

	t.Run("custom operator without return", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		ctor := b.Ctor("Int", []ast.NodeID{b.Param("l", "Int", false), b.Param("r", "Int", false)})
		b.Program(b.Operator(tokens.MINUS_TOKEN, ctor))
		expectCode(t, check(t, b), diagnostics.ErrMissingReturn)
	})

	t.Run("assignment to constant", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(
			b.Var("c", "Int", b.Number("1"), true),
			b.Binary(tokens.EQUALS_TOKEN, b.Ident("c"), b.Number("2")),
		)
		expectCode(t, check(t, b), diagnostics.ErrConstantMutation)
	})

	t.Run("assignment type mismatch", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(
			b.Var("c", "Int", b.Number("1"), false),
			b.Binary(tokens.EQUALS_TOKEN, b.Ident("c"), b.String("s")),
		)
		expectCode(t, check(t, b), diagnostics.ErrAssignmentTypeMismatch)
	})
}

func TestConditionScenarios(t *testing.T) {
	t.Run("non boolean if condition", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.If(b.Number("1"), nil, ast.NoNode))
		expectCode(t, check(t, b), diagnostics.ErrConditionTypeMismatch)
	})

	t.Run("ternary", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		tern := b.Ternary(b.Bool("true"), b.Number("1"), b.Number("2"))
		b.Program(b.Var("x", "Int", tern, false))
		mustCheck(t, b)
		expectType(t, b.Tree(), tern, types.TYPE_INT)
	})

	t.Run("ternary branch mismatch", func(t *testing.T) {
		b := ast.NewBuilder("main.hv")
		b.Program(b.Ternary(b.Bool("true"), b.Number("1"), b.String("2")))
		expectCode(t, check(t, b), diagnostics.ErrBranchTypeMismatch)
	})
}

func TestWalkRequiresProgram(t *testing.T) {
	b := ast.NewBuilder("main.hv")
	b.Block()
	expectCode(t, Walk(context_v2.NewWithTree(b.Tree(), false)), diagnostics.ErrMalformedTree)
}

func TestEveryExpressionResolvedOnce(t *testing.T) {
	b := ast.NewBuilder("main.hv")
	b.Program(
		b.Var("a", "Int", b.Number("1"), false),
		b.Func("twice", "Int", []ast.NodeID{b.Param("n", "Int", false)},
			b.Return(b.Binary(tokens.MUL_TOKEN, b.Ident("n"), b.Number("2")))),
		b.Var("b", "Int", b.Call("twice", b.Ident("a")), false),
	)
	mustCheck(t, b)

	tree := b.Tree()
	for id := ast.NodeID(0); int(id) < tree.Len(); id++ {
		if ast.IsExpressionKind(tree.Kind(id)) && tree.ResolvedType(id) == nil {
			t.Errorf("expression %d (%s) was not resolved", id, tree.Kind(id))
		}
	}
}
