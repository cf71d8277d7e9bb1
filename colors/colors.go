package colors

import "sync/atomic"

// COLOR is an ANSI escape sequence used as a foreground style
type COLOR string

const (
	RESET COLOR = "\033[0m"

	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	YELLOW COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
	GREY   COLOR = "\033[90m"
	ORANGE COLOR = "\033[38;5;208m"

	BOLD        COLOR = "\033[1m"
	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_GREEN  COLOR = "\033[1;32m"
	BOLD_YELLOW COLOR = "\033[1;33m"
	BOLD_BLUE   COLOR = "\033[1;34m"
	BOLD_PURPLE COLOR = "\033[1;35m"
	BOLD_CYAN   COLOR = "\033[1;36m"
)

var disabled atomic.Bool

// SetEnabled turns ANSI output on or off for every COLOR printer
func SetEnabled(on bool) {
	disabled.Store(!on)
}

// Enabled reports whether ANSI sequences are written
func Enabled() bool {
	return !disabled.Load()
}

func (c COLOR) open() string {
	if disabled.Load() {
		return ""
	}
	return string(c)
}

func (c COLOR) close() string {
	if disabled.Load() {
		return ""
	}
	return string(RESET)
}
