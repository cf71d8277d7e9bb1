// Package types holds the only representation of "type" in the analyzer:
// the fake literal, a name plus a native flag. There is no type lattice;
// two descriptors are the same type iff their names are equal.
package types

// Descriptor is a synthetic type value naming either a native type or a
// user declared class.
//
// Descriptors are immutable after creation and shared by pointer.
type Descriptor struct {
	name   TYPE_NAME
	native bool
}

// NewFakeLiteral creates a descriptor named after value
func NewFakeLiteral(value string) *Descriptor {
	name := TYPE_NAME(value)
	return &Descriptor{name: name, native: nativeTypes[name]}
}

// Named creates a descriptor for one of the built-in type names
func Named(name TYPE_NAME) *Descriptor {
	return NewFakeLiteral(string(name))
}

func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	return string(d.name)
}

// Name returns the type name
func (d *Descriptor) Name() TYPE_NAME {
	return d.name
}

// IsNative reports whether the descriptor names a built-in type
func (d *Descriptor) IsNative() bool {
	return d.native
}

// Equals compares descriptors by name only
func (d *Descriptor) Equals(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.name == other.name
}

// Is reports whether the descriptor carries the given name
func (d *Descriptor) Is(name TYPE_NAME) bool {
	return d != nil && d.name == name
}
