package table

import (
	"errors"
	"testing"

	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
)

func TestNewSymbolTable(t *testing.T) {
	st := NewSymbolTable(nil)
	if st == nil {
		t.Fatal("NewSymbolTable returned nil")
	}
	if st.Parent() != nil {
		t.Error("Expected parent to be nil")
	}
	if st.Len() != 0 {
		t.Error("Expected symbols map to be empty")
	}
}

func TestDeclareAndGetSymbol(t *testing.T) {
	st := NewSymbolTable(nil)
	if err := st.Declare("foo", 3); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}

	got, ok := st.GetSymbol("foo")
	if !ok {
		t.Error("GetSymbol did not find declared symbol")
	}
	if got != 3 {
		t.Errorf("GetSymbol returned %d, want 3", got)
	}
}

func TestDeclareDuplicate(t *testing.T) {
	st := NewSymbolTable(nil)
	_ = st.Declare("bar", 1)
	err := st.Declare("bar", 2)
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate on duplicate declaration, got %v", err)
	}
	if got, _ := st.GetSymbol("bar"); got != 1 {
		t.Error("Duplicate declaration must not replace the first one")
	}
}

func TestLookupParentScope(t *testing.T) {
	parent := NewSymbolTable(nil)
	child := NewSymbolTable(parent)
	_ = parent.Declare("qux", 5)

	got, ok := child.Lookup("qux")
	if !ok || got != 5 {
		t.Errorf("Lookup(qux) = %d, %v; want 5, true", got, ok)
	}
	if _, ok := child.GetSymbol("qux"); ok {
		t.Error("GetSymbol should not search parent scopes")
	}
}

func TestLookupShadowing(t *testing.T) {
	parent := NewSymbolTable(nil)
	child := NewSymbolTable(parent)
	_ = parent.Declare("x", 1)
	_ = child.Declare("x", 2)

	if got, _ := child.Lookup("x"); got != 2 {
		t.Errorf("Expected inner declaration to shadow, got %d", got)
	}
}

func TestLookupMissing(t *testing.T) {
	st := NewSymbolTable(NewSymbolTable(nil))
	got, ok := st.Lookup("nope")
	if ok || got != ast.NoNode {
		t.Errorf("Lookup(nope) = %d, %v; want NoNode, false", got, ok)
	}
}

func TestNamesKeepDeclarationOrder(t *testing.T) {
	st := NewSymbolTable(nil)
	for i, name := range []string{"c", "a", "b"} {
		_ = st.Declare(name, ast.NodeID(i))
	}
	names := st.Names()
	if len(names) != 3 || names[0] != "c" || names[2] != "b" {
		t.Errorf("Names() = %v", names)
	}
}

func TestClassContextMember(t *testing.T) {
	ctx := NewClassContext(10, "Point")
	_ = ctx.Members.Declare("x", 11)

	if got, ok := ctx.Member("x"); !ok || got != 11 {
		t.Errorf("Member(x) = %d, %v; want 11, true", got, ok)
	}
	if _, ok := ctx.Member("y"); ok {
		t.Error("Member(y) should not be found")
	}
}
