package msbuild

import (
	"strings"
	"unicode"
)

// DefaultPlatform is assumed when a configuration key carries no platform part.
const DefaultPlatform = "Win32"

// SplitConfiguration splits a "<Config>|<Platform>" key into its two parts.
// A key without a '|' yields DefaultPlatform.
func SplitConfiguration(configuration string) (name, platform string) {
	if idx := strings.Index(configuration, "|"); idx >= 0 {
		return configuration[:idx], configuration[idx+1:]
	}
	return configuration, DefaultPlatform
}

// JoinConfiguration builds a "<Config>|<Platform>" key.
func JoinConfiguration(name, platform string) string {
	if platform == "" {
		platform = DefaultPlatform
	}
	return name + "|" + platform
}

// Condition returns the MSBuild condition Visual Studio writes for a configuration.
func Condition(configuration string) string {
	return "'$(Configuration)|$(Platform)'=='" + configuration + "'"
}

// ConditionMatches reports whether a Condition attribute selects the given configuration.
// Whitespace and case are insignificant, as MSBuild compares strings case-insensitively.
func ConditionMatches(condition, configuration string) bool {
	if condition == "" {
		return false
	}
	return strings.EqualFold(stripSpace(condition), stripSpace(Condition(configuration)))
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// DefaultOutDir returns the OutDir template Visual Studio uses when a project does not
// set one: $(SolutionDir)[$(Platform)/]$(Configuration)/.
func DefaultOutDir(platform string) string {
	return Token(VarSolutionDir) + DefaultIntDir(platform)
}

// DefaultIntDir returns the IntDir template: [$(Platform)/]$(Configuration)/.
func DefaultIntDir(platform string) string {
	if platform != DefaultPlatform {
		return Token(VarPlatform) + "/" + Token(VarConfiguration) + "/"
	}
	return Token(VarConfiguration) + "/"
}

// DefaultOutputFile is the artifact path template used when no linker or librarian
// output is declared.
func DefaultOutputFile() string {
	return Token(VarOutDir) + Token(VarTargetName) + Token(VarTargetExt)
}

// SplitList splits a ';' separated MSBuild list, trimming blanks and dropping
// %(Metadata) inheritance markers.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part == "" || IsInheritedMetadata(part) {
			continue
		}
		out = append(out, part)
	}
	return out
}

// IsInheritedMetadata reports whether s is an item-metadata reference such as
// %(PreprocessorDefinitions).
func IsInheritedMetadata(s string) bool {
	return strings.HasPrefix(s, "%(") && strings.HasSuffix(s, ")")
}
