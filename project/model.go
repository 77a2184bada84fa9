package project

import (
	"strings"

	"github.com/willibrandon/vcproj/msbuild"
)

// TargetType is the kind of artifact a configuration produces.
type TargetType int

const (
	// Executable is an application (.exe)
	Executable TargetType = iota
	// StaticLibrary is a .lib archive
	StaticLibrary
	// DynamicLibrary is a .dll
	DynamicLibrary
	// Utility projects run custom build steps only
	Utility
	// Other covers makefile projects and unknown configuration types
	Other
)

func (t TargetType) String() string {
	switch t {
	case Executable:
		return "Executable"
	case StaticLibrary:
		return "StaticLibrary"
	case DynamicLibrary:
		return "DynamicLibrary"
	case Utility:
		return "Utility"
	default:
		return "Other"
	}
}

// Extension is the default $(TargetExt) for the type; empty for Utility and Other.
func (t TargetType) Extension() string {
	switch t {
	case Executable:
		return ".exe"
	case StaticLibrary:
		return ".lib"
	case DynamicLibrary:
		return ".dll"
	default:
		return ""
	}
}

// HasLinkerOutput reports whether the linker (as opposed to the librarian) produces the
// artifact.
func (t TargetType) HasLinkerOutput() bool {
	return t == Executable || t == DynamicLibrary
}

// BuildTarget is the build model of one configuration of a project.
type BuildTarget struct {
	// Configuration is the "<Config>|<Platform>" key, unique within a project
	Configuration string

	// Title is the project file's base name, shared by all targets of the project
	Title string

	TargetType TargetType

	// Output is the absolute path of the produced artifact
	Output string

	// OutDir and IntDir are absolute directories ending in '/'
	OutDir string
	IntDir string

	// IncludeDirectories lists explicit include directories followed by the toolchain
	// defaults, all absolute
	IncludeDirectories []string

	// CompilerOptions holds switches such as the runtime library selector (/MDd)
	CompilerOptions []string

	// Defines is a newline separated block of "#define NAME VALUE" lines
	Defines string

	RuntimeLibrary RuntimeLibrary
	CharacterSet   CharacterSet

	// SharedMFC is set when MFC is used as a shared DLL
	SharedMFC bool

	// Files lists the project files built in this configuration, sorted
	Files []string
}

// ConfigurationName is the configuration part of the key ("Debug").
func (t BuildTarget) ConfigurationName() string {
	name, _ := msbuild.SplitConfiguration(t.Configuration)
	return name
}

// Platform is the platform part of the key ("x64").
func (t BuildTarget) Platform() string {
	_, platform := msbuild.SplitConfiguration(t.Configuration)
	return platform
}

// DefineNames lists the macro names defined in Defines, in order.
func (t BuildTarget) DefineNames() []string {
	var names []string
	for _, line := range strings.Split(t.Defines, "\n") {
		if name, _, ok := parseDefineLine(line); ok {
			names = append(names, name)
		}
	}
	return names
}

// HasDefine reports whether Defines defines name.
func (t BuildTarget) HasDefine(name string) bool {
	_, ok := t.DefineValue(name)
	return ok
}

// DefineValue returns the value given to name in Defines; a bare #define yields "".
func (t BuildTarget) DefineValue(name string) (string, bool) {
	for _, line := range strings.Split(t.Defines, "\n") {
		if n, v, ok := parseDefineLine(line); ok && n == name {
			return v, true
		}
	}
	return "", false
}

// HasCompilerOption reports whether opt is among the compiler options.
func (t BuildTarget) HasCompilerOption(opt string) bool {
	for _, o := range t.CompilerOptions {
		if o == opt {
			return true
		}
	}
	return false
}

// IsRunnable reports whether the target produces something that can be launched.
func (t BuildTarget) IsRunnable() bool {
	return t.TargetType == Executable && t.Output != ""
}

func (t BuildTarget) clone() BuildTarget {
	c := t
	c.IncludeDirectories = append([]string(nil), t.IncludeDirectories...)
	c.CompilerOptions = append([]string(nil), t.CompilerOptions...)
	c.Files = append([]string(nil), t.Files...)
	return c
}

// shellProgram runs the command lines through the Windows command interpreter.
const shellProgram = "%comspec%"

// CommandLine is a program plus its argument string, to be run through the system shell.
type CommandLine struct {
	Program string
	Args    string
}

// String joins program and arguments the way a shell would see them.
func (c CommandLine) String() string {
	if c.Args == "" {
		return c.Program
	}
	return c.Program + " " + c.Args
}

// BuildMode selects between building and cleaning.
type BuildMode int

const (
	// ModeBuild builds the configuration
	ModeBuild BuildMode = iota
	// ModeClean removes its outputs
	ModeClean
)

func (m BuildMode) String() string {
	if m == ModeClean {
		return "clean"
	}
	return "build"
}
