package types

// IsNativeTypeName checks if a name denotes a built-in type
func IsNativeTypeName(name string) bool {
	return nativeTypes[TYPE_NAME(name)]
}

// IsVoid reports whether the descriptor is missing or names Void
func IsVoid(d *Descriptor) bool {
	return d == nil || d.name == TYPE_VOID
}

// NativeTypeNames returns the built-in names in a stable order
func NativeTypeNames() []TYPE_NAME {
	return []TYPE_NAME{TYPE_INT, TYPE_DOUBLE, TYPE_STRING, TYPE_BOOLEAN, TYPE_NULL, TYPE_VOID}
}
