package tokens

// Associativity decides which operand type a native operator carries
type Associativity int

const (
	AssocNone  Associativity = iota
	AssocRight                // yields the right operand's type
	AssocLeft                 // yields the left operand's type
)

func (a Associativity) String() string {
	switch a {
	case AssocRight:
		return "right"
	case AssocLeft:
		return "left"
	default:
		return "none"
	}
}

type OperatorClass int

const (
	ClassArithmetic OperatorClass = iota
	ClassBitwise
	ClassComparison
	ClassLogical
	ClassAssignment
)

// Operator describes a native operator
type Operator struct {
	Token         TOKEN
	Precedence    int
	Associativity Associativity
	Class         OperatorClass
}

var operators = map[TOKEN]Operator{
	EQUALS_TOKEN:       {EQUALS_TOKEN, 1, AssocRight, ClassAssignment},
	PLUS_EQUALS_TOKEN:  {PLUS_EQUALS_TOKEN, 1, AssocRight, ClassAssignment},
	MINUS_EQUALS_TOKEN: {MINUS_EQUALS_TOKEN, 1, AssocRight, ClassAssignment},
	MUL_EQUALS_TOKEN:   {MUL_EQUALS_TOKEN, 1, AssocRight, ClassAssignment},
	DIV_EQUALS_TOKEN:   {DIV_EQUALS_TOKEN, 1, AssocRight, ClassAssignment},
	MOD_EQUALS_TOKEN:   {MOD_EQUALS_TOKEN, 1, AssocRight, ClassAssignment},

	OR_TOKEN:  {OR_TOKEN, 2, AssocLeft, ClassLogical},
	AND_TOKEN: {AND_TOKEN, 3, AssocLeft, ClassLogical},

	BIT_OR_TOKEN:  {BIT_OR_TOKEN, 4, AssocLeft, ClassBitwise},
	BIT_XOR_TOKEN: {BIT_XOR_TOKEN, 5, AssocLeft, ClassBitwise},
	BIT_AND_TOKEN: {BIT_AND_TOKEN, 6, AssocLeft, ClassBitwise},

	DOUBLE_EQUAL_TOKEN: {DOUBLE_EQUAL_TOKEN, 7, AssocLeft, ClassComparison},
	NOT_EQUAL_TOKEN:    {NOT_EQUAL_TOKEN, 7, AssocLeft, ClassComparison},

	LESS_TOKEN:          {LESS_TOKEN, 8, AssocLeft, ClassComparison},
	LESS_EQUAL_TOKEN:    {LESS_EQUAL_TOKEN, 8, AssocLeft, ClassComparison},
	GREATER_TOKEN:       {GREATER_TOKEN, 8, AssocLeft, ClassComparison},
	GREATER_EQUAL_TOKEN: {GREATER_EQUAL_TOKEN, 8, AssocLeft, ClassComparison},

	SHL_TOKEN: {SHL_TOKEN, 9, AssocLeft, ClassBitwise},
	SHR_TOKEN: {SHR_TOKEN, 9, AssocLeft, ClassBitwise},

	PLUS_TOKEN:  {PLUS_TOKEN, 10, AssocLeft, ClassArithmetic},
	MINUS_TOKEN: {MINUS_TOKEN, 10, AssocLeft, ClassArithmetic},

	MUL_TOKEN: {MUL_TOKEN, 11, AssocLeft, ClassArithmetic},
	DIV_TOKEN: {DIV_TOKEN, 11, AssocLeft, ClassArithmetic},
	MOD_TOKEN: {MOD_TOKEN, 11, AssocLeft, ClassArithmetic},

	EXP_TOKEN: {EXP_TOKEN, 12, AssocRight, ClassArithmetic},
}

// LookupOperator returns the native operator for a token
func LookupOperator(tok TOKEN) (Operator, bool) {
	op, ok := operators[tok]
	return op, ok
}

// IsOperator checks if a token is a native binary operator
func IsOperator(tok TOKEN) bool {
	_, ok := operators[tok]
	return ok
}

// IsAssignment reports whether the operator stores into its left operand
func IsAssignment(tok TOKEN) bool {
	op, ok := operators[tok]
	return ok && op.Class == ClassAssignment
}

// IsComparisonOrLogical reports whether the operator always yields Boolean
func IsComparisonOrLogical(tok TOKEN) bool {
	op, ok := operators[tok]
	return ok && (op.Class == ClassComparison || op.Class == ClassLogical)
}
