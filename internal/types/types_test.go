package types

import "testing"

func TestNewFakeLiteralMarksNativeTypes(t *testing.T) {
	for _, name := range NativeTypeNames() {
		d := NewFakeLiteral(string(name))
		if !d.IsNative() {
			t.Errorf("%s should be native", name)
		}
		if d.Name() != name {
			t.Errorf("Name() = %s, want %s", d.Name(), name)
		}
	}

	user := NewFakeLiteral("Vector")
	if user.IsNative() {
		t.Error("Vector should not be native")
	}
	if user.String() != "Vector" {
		t.Errorf("String() = %q, want %q", user.String(), "Vector")
	}
}

func TestDescriptorEqualityIsByName(t *testing.T) {
	tests := []struct {
		name string
		a, b *Descriptor
		want bool
	}{
		{"same native", Named(TYPE_INT), NewFakeLiteral("Int"), true},
		{"same user type", NewFakeLiteral("Foo"), NewFakeLiteral("Foo"), true},
		{"different", Named(TYPE_INT), Named(TYPE_DOUBLE), false},
		{"case sensitive", NewFakeLiteral("foo"), NewFakeLiteral("Foo"), false},
		{"nil vs value", nil, Named(TYPE_NULL), false},
		{"nil vs nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	if !IsNativeTypeName("Boolean") || IsNativeTypeName("boolean") {
		t.Error("IsNativeTypeName must match exact native names")
	}
	if !IsVoid(nil) || !IsVoid(Named(TYPE_VOID)) || IsVoid(Named(TYPE_INT)) {
		t.Error("IsVoid returned an unexpected result")
	}
	if !Named(TYPE_BOOLEAN).Is(TYPE_BOOLEAN) {
		t.Error("Is() should match its own name")
	}
}
