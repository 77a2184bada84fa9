package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching against the typed load errors.
var (
	ErrFileRead                 = errors.New("project file could not be read")
	ErrUnrecognizedProjectFile  = errors.New("unrecognized project file")
	ErrUnsupportedSchemaVersion = errors.New("unsupported project schema version")
	ErrMalformedProject         = errors.New("malformed project file")
)

// FileReadError is returned when the project file cannot be opened or read.
type FileReadError struct {
	// Path is the project file path as given to Load
	Path string

	// Err is the underlying OS error
	Err error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read project file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFileRead.
func (e *FileReadError) Is(target error) bool { return target == ErrFileRead }

// UnrecognizedProjectFileError is returned when the document root is neither
// VisualStudioProject nor Project.
type UnrecognizedProjectFileError struct {
	Path string
	Root string
}

func (e *UnrecognizedProjectFileError) Error() string {
	return fmt.Sprintf("%s: unrecognized project file root element <%s>", e.Path, e.Root)
}

// Is reports whether target is ErrUnrecognizedProjectFile.
func (e *UnrecognizedProjectFileError) Is(target error) bool {
	return target == ErrUnrecognizedProjectFile
}

// UnsupportedSchemaVersionError is returned for a known root element carrying a version
// no parser handles.
type UnsupportedSchemaVersionError struct {
	Path    string
	Root    string
	Version string
}

func (e *UnsupportedSchemaVersionError) Error() string {
	attr := "ToolsVersion"
	if e.Root == rootVcproj {
		attr = "Version"
	}
	return fmt.Sprintf("%s: unsupported <%s> %s %q", e.Path, e.Root, attr, e.Version)
}

// Is reports whether target is ErrUnsupportedSchemaVersion.
func (e *UnsupportedSchemaVersionError) Is(target error) bool {
	return target == ErrUnsupportedSchemaVersion
}

// ParseError represents an error during project file parsing
type ParseError struct {
	// FilePath is the path to the file being parsed
	FilePath string

	// Line is the line number where the error occurred, 0 when unknown
	Line int

	// Message describes what went wrong
	Message string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.FilePath, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// Is reports whether target is ErrMalformedProject.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedProject }
