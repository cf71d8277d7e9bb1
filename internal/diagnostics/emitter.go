package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Iced-Tea/hevia-compiler/colors"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{files: make(map[string][]string)}
}

// AddSource registers in-memory content for a path
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = strings.Split(content, "\n")
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		file, err := os.Open(filepath)
		if err != nil {
			return "", err
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		sc.files[filepath] = lines
	}

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter renders diagnostics to a writer
type Emitter struct {
	cache  *SourceCache
	writer io.Writer
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{cache: NewSourceCache(), writer: w}
}

// NewEmitterWithCache shares a source cache between emitters
func NewEmitterWithCache(w io.Writer, cache *SourceCache) *Emitter {
	return &Emitter{cache: cache, writer: w}
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)

	if primary := diag.Primary(); primary != nil {
		e.printLabel(diag.FilePath, *primary, diag.Severity)
	} else if diag.FilePath != "" {
		colors.BLUE.Fprintf(e.writer, "--> %s\n", diag.FilePath)
	}
	for _, label := range diag.Labels {
		if label.Style == Secondary {
			e.printLabel(diag.FilePath, label, diag.Severity)
		}
	}

	for _, note := range diag.Notes {
		colors.CYAN.Fprint(e.writer, "  = note: ")
		fmt.Fprintln(e.writer, note)
	}
	if diag.Help != "" {
		colors.GREEN.Fprint(e.writer, "  = help: ")
		fmt.Fprintln(e.writer, diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func severityColor(s Severity) colors.COLOR {
	switch s {
	case Warning:
		return colors.BOLD_YELLOW
	case Info:
		return colors.BOLD_CYAN
	default:
		return colors.BOLD_RED
	}
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := severityColor(diag.Severity)
	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

// printLabel prints the location header and, when the source line can be
// read, the line with an underline under the labelled columns.
func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	loc := label.Location
	if loc.IsZero() {
		if filepath != "" {
			colors.BLUE.Fprintf(e.writer, "--> %s\n", filepath)
		}
		return
	}
	if file := loc.File(); file != "" {
		filepath = file
	}

	start := loc.Start
	lineNumWidth := len(fmt.Sprintf("%d", start.Line))
	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", lineNumWidth), filepath, start.Line, start.Column)

	text, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		if label.Message != "" {
			fmt.Fprintf(e.writer, "%s = %s\n", strings.Repeat(" ", lineNumWidth), label.Message)
		}
		return
	}

	colors.BLUE.Fprintf(e.writer, STR_MULTIPLIER, lineNumWidth, start.Line)
	fmt.Fprintln(e.writer, text)

	width := 1
	if loc.End != nil && loc.End.Line == start.Line && loc.End.Column > start.Column {
		width = loc.End.Column - start.Column
	}
	marker, color := "^", severityColor(severity)
	if label.Style == Secondary {
		marker, color = "-", colors.BLUE
	}
	padding := strings.Repeat(" ", max(start.Column-1, 0))
	colors.BLUE.Fprintf(e.writer, "%s | ", strings.Repeat(" ", lineNumWidth))
	color.Fprintf(e.writer, "%s%s %s\n", padding, strings.Repeat(marker, width), label.Message)
}
