package types

type TYPE_NAME string

const (
	TYPE_INT     TYPE_NAME = "Int"
	TYPE_DOUBLE  TYPE_NAME = "Double"
	TYPE_STRING  TYPE_NAME = "String"
	TYPE_BOOLEAN TYPE_NAME = "Boolean"
	TYPE_NULL    TYPE_NAME = "Null"
	TYPE_VOID    TYPE_NAME = "Void"
)

// nativeTypes is the closed set of built-in type names
var nativeTypes = map[TYPE_NAME]bool{
	TYPE_INT:     true,
	TYPE_DOUBLE:  true,
	TYPE_STRING:  true,
	TYPE_BOOLEAN: true,
	TYPE_NULL:    true,
	TYPE_VOID:    true,
}

// DEFAULT_FUNC_TYPE is the return type of functions and constructors declared without one
const DEFAULT_FUNC_TYPE = TYPE_VOID
