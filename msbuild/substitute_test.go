package msbuild

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute_SinglePass(t *testing.T) {
	vars := NewVariables()
	vars.Set(VarConfiguration, "Debug")
	vars.Set(VarPlatform, "x64")

	got := Substitute("$(Platform)/$(Configuration)/", vars)
	assert.Equal(t, "x64/Debug/", got)
}

func TestSubstitute_ChainedReferences(t *testing.T) {
	vars := NewVariables()
	vars.Set(VarSolutionDir, "/src/")
	vars.Set(VarConfiguration, "Release")
	vars.Set(VarOutDir, "$(SolutionDir)$(Configuration)/")
	vars.Set(VarTargetName, "$(ProjectName)")
	vars.Set(VarProjectName, "app")
	vars.Set(VarTargetExt, ".exe")

	got, err := SubstituteStrict(DefaultOutputFile(), vars)
	require.NoError(t, err)
	assert.Equal(t, "/src/Release/app.exe", got)
	assert.False(t, HasTokens(got))
}

func TestSubstitute_Fixpoint(t *testing.T) {
	vars := NewVariables()
	vars.Set(VarOutDir, "$(SolutionDir)$(Platform)/$(Configuration)/")
	vars.Set(VarSolutionDir, "$(ProjectDir)")
	vars.Set(VarProjectDir, "/work/")
	vars.Set(VarPlatform, "x64")
	vars.Set(VarConfiguration, "Debug")

	inputs := []string{
		"$(OutDir)",
		"$(OutDir)$(Unknown)",
		"no tokens at all",
		"",
		"$(ProjectDir)$(ProjectDir)",
	}

	for _, in := range inputs {
		once := Substitute(in, vars)
		assert.Equal(t, once, Substitute(once, vars), "input %q", in)
	}
}

func TestSubstitute_LeavesUnknownTokens(t *testing.T) {
	vars := NewVariables()
	vars.Set(VarConfiguration, "Debug")

	got := Substitute("$(Configuration)-$(VCInstallDir)", vars)
	assert.Equal(t, "Debug-$(VCInstallDir)", got)
	assert.Equal(t, []string{"VCInstallDir"}, Tokens(got))
}

func TestSubstitute_CycleIsBounded(t *testing.T) {
	vars := NewVariables()
	vars.Set("A", "x$(B)")
	vars.Set("B", "y$(A)")

	out, err := SubstituteStrict("$(A)", vars)
	assert.ErrorIs(t, err, ErrNoFixpoint)
	assert.NotEmpty(t, out)

	// The lenient form returns whatever the last pass produced.
	assert.Equal(t, out, Substitute("$(A)", vars))
}

func TestSubstitute_GrowthIsBounded(t *testing.T) {
	vars := NewVariables()
	vars.Set("A", "$(A)$(A)")

	out, err := SubstituteStrict("$(A)", vars)
	assert.ErrorIs(t, err, ErrNoFixpoint)
	assert.LessOrEqual(t, len(out), MaxSubstitutionLength)
	assert.Equal(t, out, Substitute("$(A)", vars))
}

func TestSubstitute_LongInputWithoutGrowth(t *testing.T) {
	vars := NewVariables()
	vars.Set(VarConfiguration, "Debug")

	long := strings.Repeat("x", MaxSubstitutionLength+10) + "$(Configuration)"
	out, err := SubstituteStrict(long, vars)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "xDebug"))
}

func TestSubstitute_EmptyMapping(t *testing.T) {
	got, err := SubstituteStrict("$(OutDir)", nil)
	require.NoError(t, err)
	assert.Equal(t, "$(OutDir)", got)
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"none", "plain", nil},
		{"single", "$(OutDir)", []string{"OutDir"}},
		{"duplicates", "$(A)$(B)$(A)", []string{"A", "B"}},
		{"dotted", "$(VS100COMNTOOLS)x$(My.Prop)", []string{"VS100COMNTOOLS", "My.Prop"}},
		{"metadata is not a token", "%(PreprocessorDefinitions)", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.text))
		})
	}
}

func TestVariables_CloneIsIndependent(t *testing.T) {
	vars := NewVariables()
	vars.Set(VarTargetName, "app")

	clone := vars.Clone()
	clone.Set(VarTargetName, "other")

	got, ok := vars.Get(VarTargetName)
	require.True(t, ok)
	assert.Equal(t, "app", got)
	assert.True(t, clone.Has(VarTargetName))
	assert.False(t, vars.Has(VarOutDir))
}
