package msbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitConfiguration(t *testing.T) {
	tests := []struct {
		in           string
		wantName     string
		wantPlatform string
	}{
		{"Release|x64", "Release", "x64"},
		{"Release", "Release", "Win32"},
		{"Debug|Win32", "Debug", "Win32"},
		{"Debug Unicode|Win32", "Debug Unicode", "Win32"},
		{"", "", "Win32"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, platform := SplitConfiguration(tt.in)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantPlatform, platform)
		})
	}
}

func TestJoinConfiguration(t *testing.T) {
	assert.Equal(t, "Release|x64", JoinConfiguration(SplitConfiguration("Release|x64")))
	assert.Equal(t, "Release|Win32", JoinConfiguration("Release", ""))
}

func TestCondition(t *testing.T) {
	assert.Equal(t, "'$(Configuration)|$(Platform)'=='Debug|x64'", Condition("Debug|x64"))
}

func TestConditionMatches(t *testing.T) {
	assert.True(t, ConditionMatches("'$(Configuration)|$(Platform)'=='Debug|x64'", "Debug|x64"))
	assert.True(t, ConditionMatches(" '$(Configuration)|$(Platform)' == 'Debug|x64' ", "Debug|x64"))
	assert.False(t, ConditionMatches("'$(Configuration)|$(Platform)'=='Debug|Win32'", "Debug|x64"))
	assert.False(t, ConditionMatches("", "Debug|x64"))
}

func TestConditionMatches_IgnoresCase(t *testing.T) {
	assert.True(t, ConditionMatches("'$(Configuration)|$(Platform)'=='debug|WIN32'", "Debug|Win32"))
	assert.True(t, ConditionMatches("'$(configuration)|$(platform)' == 'Release|x64'", "Release|x64"))
	assert.False(t, ConditionMatches("'$(Configuration)|$(Platform)'=='debug|x64'", "Debug|Win32"))
}

func TestDefaultDirs(t *testing.T) {
	assert.Equal(t, "$(SolutionDir)$(Configuration)/", DefaultOutDir("Win32"))
	assert.Equal(t, "$(SolutionDir)$(Platform)/$(Configuration)/", DefaultOutDir("x64"))
	assert.Equal(t, "$(Configuration)/", DefaultIntDir("Win32"))
	assert.Equal(t, "$(Platform)/$(Configuration)/", DefaultIntDir("x64"))
	assert.Equal(t, "$(OutDir)$(TargetName)$(TargetExt)", DefaultOutputFile())
}

func TestSplitList(t *testing.T) {
	got := SplitList("WIN32;_DEBUG; ;%(PreprocessorDefinitions);_CONSOLE")
	assert.Equal(t, []string{"WIN32", "_DEBUG", "_CONSOLE"}, got)
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("%(AdditionalIncludeDirectories)"))
}
