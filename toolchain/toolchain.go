// Package toolchain describes the Visual Studio toolchains the project parsers know about
// and locates their installation directories from the environment.
package toolchain

import (
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/willibrandon/vcproj/msbuild"
)

// Environment looks up an environment variable. os.LookupEnv satisfies it.
type Environment func(key string) (string, bool)

// OSEnvironment reads the process environment.
func OSEnvironment(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment adapts a map for tests and callers that carry their own environment.
func MapEnvironment(env map[string]string) Environment {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// Version identifies one Visual Studio release.
type Version struct {
	// Name is the marketing name (e.g., "VS2010")
	Name string

	// SchemaVersion is the Version/ToolsVersion attribute value that selects this toolchain
	SchemaVersion string

	// MSCVer is the value of the _MSC_VER macro for the bundled compiler
	MSCVer int

	// EnvVar names the environment variable pointing at <install>/Common7/Tools
	EnvVar string

	// LegacyBuild is true for toolchains driven by vcbuild rather than msbuild
	LegacyBuild bool
}

// Known toolchains.
var (
	VS2005 = Version{Name: "VS2005", SchemaVersion: "8.00", MSCVer: 1400, EnvVar: "VS80COMNTOOLS", LegacyBuild: true}
	VS2010 = Version{Name: "VS2010", SchemaVersion: "4.0", MSCVer: 1600, EnvVar: "VS100COMNTOOLS"}
	VS2012 = Version{Name: "VS2012", SchemaVersion: "11.0", MSCVer: 1700, EnvVar: "VS110COMNTOOLS"}
	VS2013 = Version{Name: "VS2013", SchemaVersion: "12.0", MSCVer: 1800, EnvVar: "VS120COMNTOOLS"}
	VS2015 = Version{Name: "VS2015", SchemaVersion: "14.0", MSCVer: 1900, EnvVar: "VS140COMNTOOLS"}
)

var msbuildVersions = []Version{VS2010, VS2012, VS2013, VS2015}

// NormalizeVersion applies the comma-to-dot normalization Visual Studio files sometimes
// need when written under a locale with a decimal comma.
func NormalizeVersion(v string) string {
	return strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
}

// ForVcproj returns the toolchain for a VisualStudioProject Version attribute.
func ForVcproj(version string) (Version, bool) {
	if NormalizeVersion(version) == VS2005.SchemaVersion {
		return VS2005, true
	}
	return Version{}, false
}

// ForToolsVersion returns the toolchain for an MSBuild Project ToolsVersion attribute.
func ForToolsVersion(toolsVersion string) (Version, bool) {
	v := NormalizeVersion(toolsVersion)
	for _, candidate := range msbuildVersions {
		if candidate.SchemaVersion == v {
			return candidate, true
		}
	}
	return Version{}, false
}

// MSCVerString returns MSCVer formatted for a #define.
func (v Version) MSCVerString() string {
	return strconv.Itoa(v.MSCVer)
}

// Toolchain is a Version bound to an installation directory.
type Toolchain struct {
	Version

	// InstallDir is the Visual Studio root ('/' separated, no trailing slash); empty when
	// the environment variable is unset
	InstallDir string
}

// Locate derives the installation directory of v from its environment variable. The
// variable points at <install>/Common7/Tools, so the root is two levels up.
func Locate(v Version, env Environment) Toolchain {
	if env == nil {
		env = OSEnvironment
	}

	tc := Toolchain{Version: v}
	value, ok := env(v.EnvVar)
	if !ok || strings.TrimSpace(value) == "" {
		return tc
	}

	dir := strings.TrimRight(msbuild.NormalizePath(strings.TrimSpace(value)), "/")
	dir = msbuild.CleanPath(dir)
	for i := 0; i < 2; i++ {
		dir = parentDir(dir)
	}
	tc.InstallDir = dir
	return tc
}

func parentDir(dir string) string {
	idx := strings.LastIndex(dir, "/")
	switch {
	case idx < 0:
		return "."
	case idx == 0:
		return "/"
	case idx == 2 && dir[1] == ':':
		return dir[:3]
	default:
		return dir[:idx]
	}
}

// Located reports whether an installation directory was found.
func (t Toolchain) Located() bool {
	return t.InstallDir != ""
}

func (t Toolchain) join(rel string) string {
	if t.InstallDir == "" {
		return rel
	}
	return msbuild.CleanPath(path.Join(t.InstallDir, rel))
}

// VcvarsPath is the environment setup script ('/' separated). Without an install
// directory the relative path is returned; the failure surfaces when the command runs.
func (t Toolchain) VcvarsPath() string {
	return t.join("VC/vcvarsall.bat")
}

// DevenvPath is the IDE executable.
func (t Toolchain) DevenvPath() string {
	return t.join("Common7/IDE/devenv.exe")
}

// DefaultIncludeDirs lists the compiler's implicit include directories in the order the
// compiler searches them. Nothing is returned when the toolchain was not located.
func (t Toolchain) DefaultIncludeDirs() []string {
	if !t.Located() {
		return nil
	}
	dirs := []string{
		t.join("VC/include"),
		t.join("VC/atlmfc/include"),
	}
	if t.LegacyBuild {
		dirs = append(dirs, t.join("VC/PlatformSDK/include"))
	}
	return dirs
}
