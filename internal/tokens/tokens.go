package tokens

type TOKEN string

const (
	//literal kinds
	IDENTIFIER_TOKEN TOKEN = "identifier"
	NUMBER_TOKEN     TOKEN = "numeric literal"
	STRING_TOKEN     TOKEN = "string literal"
	BOOLEAN_TOKEN    TOKEN = "boolean literal"
	NULL_TOKEN       TOKEN = "null literal"
	//implicit receiver
	THIS_TOKEN TOKEN = "this"
	//logical operators
	AND_TOKEN TOKEN = "&&"
	OR_TOKEN  TOKEN = "||"
	//bitwise operators
	BIT_AND_TOKEN TOKEN = "&"
	BIT_OR_TOKEN  TOKEN = "|"
	BIT_XOR_TOKEN TOKEN = "^"
	SHL_TOKEN     TOKEN = "<<"
	SHR_TOKEN     TOKEN = ">>"
	//arithmetic operators
	EXP_TOKEN   TOKEN = "**"
	MINUS_TOKEN TOKEN = "-"
	PLUS_TOKEN  TOKEN = "+"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	MOD_TOKEN   TOKEN = "%"
	//comparison operators
	LESS_EQUAL_TOKEN    TOKEN = "<="
	GREATER_EQUAL_TOKEN TOKEN = ">="
	NOT_EQUAL_TOKEN     TOKEN = "!="
	DOUBLE_EQUAL_TOKEN  TOKEN = "=="
	LESS_TOKEN          TOKEN = "<"
	GREATER_TOKEN       TOKEN = ">"
	//assignment
	EQUALS_TOKEN       TOKEN = "="
	PLUS_EQUALS_TOKEN  TOKEN = "+="
	MINUS_EQUALS_TOKEN TOKEN = "-="
	MUL_EQUALS_TOKEN   TOKEN = "*="
	DIV_EQUALS_TOKEN   TOKEN = "/="
	MOD_EQUALS_TOKEN   TOKEN = "%="
)

// IsLiteralKind reports whether kind is one of the literal token kinds
func IsLiteralKind(kind TOKEN) bool {
	switch kind {
	case IDENTIFIER_TOKEN, NUMBER_TOKEN, STRING_TOKEN, BOOLEAN_TOKEN, NULL_TOKEN, THIS_TOKEN:
		return true
	}
	return false
}
