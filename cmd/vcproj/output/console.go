package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/willibrandon/vcproj/observability"
)

// Verbosity levels
type Verbosity int

const (
	// VerbosityQuiet shows errors only
	VerbosityQuiet Verbosity = iota
	// VerbosityNormal shows errors, warnings, and the command result (default)
	VerbosityNormal
	// VerbosityDetailed adds include directories, defines and per-file types
	VerbosityDetailed
	// VerbosityDiagnostic adds loader debug logging and timing
	VerbosityDiagnostic
)

var verbosityNames = map[string]Verbosity{
	"quiet":      VerbosityQuiet,
	"q":          VerbosityQuiet,
	"normal":     VerbosityNormal,
	"n":          VerbosityNormal,
	"detailed":   VerbosityDetailed,
	"d":          VerbosityDetailed,
	"diagnostic": VerbosityDiagnostic,
	"diag":       VerbosityDiagnostic,
}

// ParseVerbosity converts a --verbosity value to a Verbosity.
func ParseVerbosity(name string) (Verbosity, error) {
	v, ok := verbosityNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return VerbosityNormal, fmt.Errorf("invalid verbosity %q (expected quiet, normal, detailed or diagnostic)", name)
	}
	return v, nil
}

// LogLevel is the minimum loader log level shown at this verbosity.
func (v Verbosity) LogLevel() observability.LogLevel {
	switch v {
	case VerbosityQuiet:
		return observability.ErrorLevel
	case VerbosityDetailed:
		return observability.InfoLevel
	case VerbosityDiagnostic:
		return observability.DebugLevel
	default:
		return observability.WarnLevel
	}
}

// Console provides output abstraction
type Console struct {
	out       io.Writer
	err       io.Writer
	verbosity Verbosity
	mu        sync.Mutex
	colors    bool
	logger    observability.Logger
}

// NewConsole creates a new console
func NewConsole(out, err io.Writer, verbosity Verbosity) *Console {
	c := &Console{
		out:       out,
		err:       err,
		verbosity: verbosity,
		colors:    IsColorEnabled(),
		logger:    observability.NewNullLogger(),
	}

	if !c.colors {
		DisableColors()
	}

	return c
}

// DefaultConsole creates a console with stdout/stderr and normal verbosity
func DefaultConsole() *Console {
	return NewConsole(os.Stdout, os.Stderr, VerbosityNormal)
}

// SetVerbosity sets the verbosity level
func (c *Console) SetVerbosity(v Verbosity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verbosity = v
}

// GetVerbosity returns the current verbosity level
func (c *Console) GetVerbosity() Verbosity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.verbosity
}

// SetColors enables or disables color output
func (c *Console) SetColors(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.colors = enabled
	if enabled {
		EnableColors()
	} else {
		DisableColors()
	}
}

// SetLogger sets the logger handed to the project loader.
func (c *Console) SetLogger(logger observability.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if logger == nil {
		logger = observability.NewNullLogger()
	}
	c.logger = logger
}

// Logger returns the loader logger; a null logger until SetLogger is called.
func (c *Console) Logger() observability.Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logger
}

// Print writes to output
func (c *Console) Print(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, a...)
}

// Println writes line to output
func (c *Console) Println(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output
func (c *Console) Printf(format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, a...)
}

// WriteJSON writes v as indented JSON to output, regardless of verbosity.
func (c *Console) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return WriteJSON(c.out, v)
}

// Header writes a section header (bold)
func (c *Console) Header(format string, a ...any) {
	c.colored(ColorHeader, c.out, format, a...)
}

// Folder writes a filter folder line (blue)
func (c *Console) Folder(format string, a ...any) {
	c.colored(ColorFolder, c.out, format, a...)
}

// Success writes success message (green)
func (c *Console) Success(format string, a ...any) {
	if c.verbosity >= VerbosityNormal {
		c.colored(ColorSuccess, c.out, format, a...)
	}
}

// Error writes error message (red)
func (c *Console) Error(format string, a ...any) {
	c.colored(ColorError, c.err, "Error: "+format, a...)
}

// Warning writes warning message (yellow) to the error stream
func (c *Console) Warning(format string, a ...any) {
	if c.verbosity >= VerbosityNormal {
		c.colored(ColorWarning, c.err, "Warning: "+format, a...)
	}
}

// Info writes info message (cyan)
func (c *Console) Info(format string, a ...any) {
	if c.verbosity >= VerbosityNormal {
		c.colored(ColorInfo, c.out, format, a...)
	}
}

// Debug writes debug message (white)
func (c *Console) Debug(format string, a ...any) {
	if c.verbosity >= VerbosityDiagnostic {
		c.colored(ColorDebug, c.err, "[DEBUG] "+format, a...)
	}
}

// Detail writes detailed message
func (c *Console) Detail(format string, a ...any) {
	if c.verbosity >= VerbosityDetailed {
		c.mu.Lock()
		defer c.mu.Unlock()
		fmt.Fprintf(c.out, format+"\n", a...)
	}
}

func (c *Console) colored(col *color.Color, w io.Writer, format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.colors {
		_, _ = col.Fprintf(w, format+"\n", a...)
	} else {
		fmt.Fprintf(w, format+"\n", a...)
	}
}
