// Package numeric classifies numeric literal text into the native numeric
// types. A literal is typed by its parsed value: integral values are Int,
// everything else is Double.
package numeric

import (
	"math"
	"strconv"
	"strings"

	"github.com/Iced-Tea/hevia-compiler/internal/types"

	"github.com/dlclark/regexp2"
)

// Digit separators may only appear between digits: no leading, trailing or doubled '_'.
const noDoubleSeparator = `(?!.*__)`

var (
	decimalRegex = regexp2.MustCompile(`^`+noDoubleSeparator+`-?[0-9](?:[0-9_]*[0-9])?$`, regexp2.None)
	hexRegex     = regexp2.MustCompile(`^`+noDoubleSeparator+`0[xX](?!_)[0-9a-fA-F_]*[0-9a-fA-F]$`, regexp2.None)
	octalRegex   = regexp2.MustCompile(`^`+noDoubleSeparator+`0[oO](?!_)[0-7_]*[0-7]$`, regexp2.None)
	binaryRegex  = regexp2.MustCompile(`^`+noDoubleSeparator+`0[bB](?!_)[01_]*[01]$`, regexp2.None)
	// Floats need a fraction or an exponent, otherwise they are decimals.
	floatRegex = regexp2.MustCompile(`^`+noDoubleSeparator+`(?=.*[.eE])-?[0-9](?:[0-9_]*[0-9])?(?:\.[0-9](?:[0-9_]*[0-9])?)?(?:[eE][+-]?[0-9]+)?$`, regexp2.None)
)

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// IsDecimal checks if the string represents a decimal integer
func IsDecimal(s string) bool {
	return matches(decimalRegex, s)
}

// IsHexadecimal checks if the string represents a hexadecimal integer
func IsHexadecimal(s string) bool {
	return matches(hexRegex, s)
}

// IsOctal checks if the string represents an octal integer
func IsOctal(s string) bool {
	return matches(octalRegex, s)
}

// IsBinary checks if the string represents a binary integer
func IsBinary(s string) bool {
	return matches(binaryRegex, s)
}

// IsFloat checks if the string has a fraction or an exponent
func IsFloat(s string) bool {
	return matches(floatRegex, s)
}

// ParseValue parses numeric literal text into a float64.
func ParseValue(s string) (float64, bool) {
	clean := strings.ReplaceAll(s, "_", "")
	switch {
	case IsHexadecimal(s):
		v, err := strconv.ParseUint(clean[2:], 16, 64)
		return float64(v), err == nil
	case IsOctal(s):
		v, err := strconv.ParseUint(clean[2:], 8, 64)
		return float64(v), err == nil
	case IsBinary(s):
		v, err := strconv.ParseUint(clean[2:], 2, 64)
		return float64(v), err == nil
	case IsDecimal(s), IsFloat(s):
		v, err := strconv.ParseFloat(clean, 64)
		if err != nil && !isRangeError(err) {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// TypeOf returns the native type of a numeric literal.
// The second result is false when the text is not a numeric literal.
func TypeOf(s string) (types.TYPE_NAME, bool) {
	v, ok := ParseValue(s)
	if !ok {
		return "", false
	}
	return TypeOfValue(v), true
}

// TypeOfValue classifies an already parsed value
func TypeOfValue(v float64) types.TYPE_NAME {
	if math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) {
		return types.TYPE_DOUBLE
	}
	return types.TYPE_INT
}
