package project

import (
	"strings"

	"github.com/willibrandon/vcproj/msbuild"
	"github.com/willibrandon/vcproj/toolchain"
)

// RuntimeLibrary is the C runtime a configuration links against.
type RuntimeLibrary int

const (
	// RuntimeUnknown means no runtime was declared and none could be inferred
	RuntimeUnknown RuntimeLibrary = iota
	RuntimeMT
	RuntimeMTd
	RuntimeMD
	RuntimeMDd
)

// Switch is the compiler switch selecting the runtime, or "" for RuntimeUnknown.
func (r RuntimeLibrary) Switch() string {
	switch r {
	case RuntimeMT:
		return "/MT"
	case RuntimeMTd:
		return "/MTd"
	case RuntimeMD:
		return "/MD"
	case RuntimeMDd:
		return "/MDd"
	default:
		return ""
	}
}

func (r RuntimeLibrary) String() string {
	if s := r.Switch(); s != "" {
		return s[1:]
	}
	return "unknown"
}

// IsDebug reports whether the runtime is a debug runtime.
func (r RuntimeLibrary) IsDebug() bool {
	return r == RuntimeMTd || r == RuntimeMDd
}

// IsDLL reports whether the runtime is the DLL runtime.
func (r RuntimeLibrary) IsDLL() bool {
	return r == RuntimeMD || r == RuntimeMDd
}

// runtimeFromCode maps the numeric RuntimeLibrary attribute of a .vcproj.
func runtimeFromCode(code string) (RuntimeLibrary, bool) {
	switch strings.TrimSpace(code) {
	case "0":
		return RuntimeMT, true
	case "1":
		return RuntimeMTd, true
	case "2":
		return RuntimeMD, true
	case "3":
		return RuntimeMDd, true
	default:
		return RuntimeUnknown, false
	}
}

// runtimeFromName maps the RuntimeLibrary element of a .vcxproj.
func runtimeFromName(name string) (RuntimeLibrary, bool) {
	switch strings.TrimSpace(name) {
	case "MultiThreaded":
		return RuntimeMT, true
	case "MultiThreadedDebug":
		return RuntimeMTd, true
	case "MultiThreadedDLL":
		return RuntimeMD, true
	case "MultiThreadedDebugDLL":
		return RuntimeMDd, true
	default:
		return RuntimeUnknown, false
	}
}

// runtimeByConvention guesses the runtime from the configuration name when the project
// leaves it to the property sheets: a name containing "Debug" gets MDd, one containing
// "Release" gets MD. Names matching both or neither get no guess. This is a best-effort
// stand-in for the SDK default props.
func runtimeByConvention(configurationName string) RuntimeLibrary {
	debug := strings.Contains(configurationName, "Debug")
	release := strings.Contains(configurationName, "Release")
	switch {
	case debug && !release:
		return RuntimeMDd
	case release && !debug:
		return RuntimeMD
	default:
		return RuntimeUnknown
	}
}

// CharacterSet is the project character set setting.
type CharacterSet int

const (
	CharacterSetNotSet CharacterSet = iota
	CharacterSetUnicode
	CharacterSetMultiByte
)

func (c CharacterSet) String() string {
	switch c {
	case CharacterSetUnicode:
		return "Unicode"
	case CharacterSetMultiByte:
		return "MultiByte"
	default:
		return "NotSet"
	}
}

// charsetFromCode maps the numeric .vcproj CharacterSet attribute.
func charsetFromCode(code string) CharacterSet {
	switch strings.TrimSpace(code) {
	case "1":
		return CharacterSetUnicode
	case "2":
		return CharacterSetMultiByte
	default:
		return CharacterSetNotSet
	}
}

// charsetFromName maps the .vcxproj CharacterSet property.
func charsetFromName(name string) CharacterSet {
	switch strings.TrimSpace(name) {
	case "Unicode":
		return CharacterSetUnicode
	case "MultiByte":
		return CharacterSetMultiByte
	default:
		return CharacterSetNotSet
	}
}

// defineBlock accumulates #define lines, keeping the first definition of each name.
type defineBlock struct {
	lines []string
	seen  map[string]bool
}

func newDefineBlock() *defineBlock {
	return &defineBlock{seen: make(map[string]bool)}
}

// addEntry adds a PreprocessorDefinitions entry such as "VERSION=3"; '=' becomes a space.
func (b *defineBlock) addEntry(entry string) {
	entry = strings.TrimSpace(entry)
	if entry == "" || msbuild.IsInheritedMetadata(entry) {
		return
	}
	name, value, _ := strings.Cut(entry, "=")
	b.add(strings.TrimSpace(name), value)
}

func (b *defineBlock) add(name, value string) {
	if name == "" || b.seen[name] {
		return
	}
	b.seen[name] = true
	line := "#define " + name
	if value != "" {
		line += " " + value
	}
	b.lines = append(b.lines, line)
}

// addDefaults adds the macros the compiler predefines for the given settings.
func (b *defineBlock) addDefaults(platform string, runtime RuntimeLibrary, cs CharacterSet, sharedMFC bool, v toolchain.Version) {
	b.add("_WIN32", "")

	switch strings.ToLower(platform) {
	case "win32":
		b.add("_M_IX86", "")
	case "x64":
		b.add("_M_X64", "")
		b.add("_M_AMD64", "")
		b.add("_WIN64", "")
	}

	if runtime != RuntimeUnknown {
		b.add("_MT", "")
		if runtime.IsDLL() {
			b.add("_DLL", "")
		}
		if runtime.IsDebug() {
			b.add("_DEBUG", "")
		}
	}

	switch cs {
	case CharacterSetUnicode:
		b.add("_UNICODE", "")
		b.add("UNICODE", "")
	case CharacterSetMultiByte:
		b.add("_MBCS", "")
	}

	if sharedMFC {
		b.add("_AFXDLL", "")
	}

	b.add("_MSC_VER", v.MSCVerString())
}

func (b *defineBlock) String() string {
	return strings.Join(b.lines, "\n")
}

// parseDefineLine splits "#define NAME VALUE" into name and value.
func parseDefineLine(line string) (name, value string, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(line), "#define ")
	if !found {
		return "", "", false
	}
	name, value, _ = strings.Cut(strings.TrimSpace(rest), " ")
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(value), true
}

// compilerOptions returns the switches derived from the runtime selection.
func compilerOptions(runtime RuntimeLibrary) []string {
	if s := runtime.Switch(); s != "" {
		return []string{s}
	}
	return nil
}
