package strings

import "strconv"

func Pluralize(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count formats count followed by the matching noun, as in "1 error" or "2 errors"
func Count(count int, singular, plural string) string {
	return strconv.Itoa(count) + " " + Pluralize(singular, plural, count)
}
