// Package msbuild implements the small subset of MSBuild evaluation needed to read
// Visual C++ project files: $(Name) macro substitution, configuration keys and
// condition strings, and project-relative path resolution.
package msbuild

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// MaxSubstitutionPasses bounds the number of re-expansion passes performed by Substitute.
// Chains in real project files are a handful of levels deep; a mapping that needs more
// passes than this is treated as cyclic.
const MaxSubstitutionPasses = 32

// MaxSubstitutionLength bounds the text a substitution may grow to. A mapping that refers
// to itself more than once ($(A) -> $(A)$(A)) doubles the text on every pass.
const MaxSubstitutionLength = 64 << 10

// ErrNoFixpoint is returned by SubstituteStrict when expansion does not settle within
// MaxSubstitutionPasses passes or outgrows MaxSubstitutionLength.
var ErrNoFixpoint = errors.New("variable substitution did not reach a fixpoint")

// Well-known macro names.
const (
	VarProjectDir        = "ProjectDir"
	VarSolutionDir       = "SolutionDir"
	VarProjectName       = "ProjectName"
	VarTargetName        = "TargetName"
	VarTargetExt         = "TargetExt"
	VarOutDir            = "OutDir"
	VarIntDir            = "IntDir"
	VarConfiguration     = "Configuration"
	VarConfigurationName = "ConfigurationName"
	VarPlatform          = "Platform"
	VarPlatformName      = "PlatformName"
)

var tokenPattern = regexp.MustCompile(`\$\(([A-Za-z_][A-Za-z0-9_.\-]*)\)`)

// Token returns the $(name) form of a macro name.
func Token(name string) string {
	return "$(" + name + ")"
}

// Variables maps full $(Name) tokens to their replacement text.
type Variables map[string]string

// NewVariables creates an empty variable mapping.
func NewVariables() Variables {
	return make(Variables)
}

// Set stores value under the $(name) token.
func (v Variables) Set(name, value string) {
	v[Token(name)] = value
}

// Get returns the value stored for the $(name) token.
func (v Variables) Get(name string) (string, bool) {
	value, ok := v[Token(name)]
	return value, ok
}

// Has reports whether the $(name) token is mapped.
func (v Variables) Has(name string) bool {
	_, ok := v[Token(name)]
	return ok
}

// Clone returns an independent copy of the mapping.
func (v Variables) Clone() Variables {
	out := make(Variables, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// replacer builds a single-pass replacer. Keys are sorted so that passes are deterministic.
func (v Variables) replacer() *strings.Replacer {
	keys := make([]string, 0, len(v))
	for k := range v {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, v[k])
	}
	return strings.NewReplacer(pairs...)
}

// SubstituteStrict replaces every occurrence of each mapped token and repeats the pass
// until the text stops changing. It returns ErrNoFixpoint, along with the text produced by
// the last pass that stayed within MaxSubstitutionLength, when the mapping keeps producing
// new text.
func SubstituteStrict(input string, vars Variables) (string, error) {
	if len(vars) == 0 || input == "" {
		return input, nil
	}

	limit := max(MaxSubstitutionLength, len(input))
	r := vars.replacer()
	current := input
	for pass := 0; pass < MaxSubstitutionPasses; pass++ {
		next := r.Replace(current)
		if next == current {
			return current, nil
		}
		if len(next) > limit {
			return current, ErrNoFixpoint
		}
		current = next
	}
	return current, ErrNoFixpoint
}

// Substitute is SubstituteStrict without the cycle report.
func Substitute(input string, vars Variables) string {
	out, _ := SubstituteStrict(input, vars)
	return out
}

// Tokens lists the distinct macro names referenced in text, in order of first appearance.
func Tokens(text string) []string {
	matches := tokenPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// HasTokens reports whether text still contains a $(Name) reference.
func HasTokens(text string) bool {
	return tokenPattern.MatchString(text)
}
