package diagnostics

import (
	"github.com/Iced-Tea/hevia-compiler/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Label points at a section of the input
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // where the error happened
	Secondary                   // related declaration
)

// Diagnostic is the printable form of a compiler error or warning
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string
	FilePath string
	Labels   []Label
	Notes    []string
	Help     string
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Message: message}
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{Severity: Warning, Message: message}
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

func (d *Diagnostic) withLabel(filepath string, loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	d.Labels = append(d.Labels, Label{Location: loc, Message: message, Style: style})
	return d
}

// WithPrimaryLabel adds the primary location. A second primary label is ignored.
func (d *Diagnostic) WithPrimaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return d
		}
	}
	if len(d.Labels) > 0 {
		// keep primary first
		d.Labels = append([]Label{{Location: loc, Message: message, Style: Primary}}, d.Labels...)
		if d.FilePath == "" {
			d.FilePath = filepath
		}
		return d
	}
	return d.withLabel(filepath, loc, message, Primary)
}

// WithSecondaryLabel adds a context location. Requires a primary label.
func (d *Diagnostic) WithSecondaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	if d.Primary() == nil {
		panic("Cannot add secondary label without primary label. Call WithPrimaryLabel first.")
	}
	return d.withLabel(filepath, loc, message, Secondary)
}

// Primary returns the primary label or nil
func (d *Diagnostic) Primary() *Label {
	for i := range d.Labels {
		if d.Labels[i].Style == Primary {
			return &d.Labels[i]
		}
	}
	return nil
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, message)
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
