package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		file string
		want FileType
	}{
		{"main.cpp", SourceFile},
		{"C:/src/util.C", SourceFile},
		{`src\startup.asm`, SourceFile},
		{"app.h", HeaderFile},
		{"inline.INL", HeaderFile},
		{"app.rc", ResourceFile},
		{"registry.rgs", ResourceFile},
		{"lib.vcxproj", ProjectFile},
		{"readme.txt", UnknownFile},
		{"archive.tar.gz", UnknownFile},
		{"noext", UnknownFile},
		{"src.c/readme", UnknownFile},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFile(tt.file))
		})
	}
}

func TestFileTypeString(t *testing.T) {
	assert.Equal(t, "source", SourceFile.String())
	assert.Equal(t, "header", HeaderFile.String())
	assert.Equal(t, "resource", ResourceFile.String())
	assert.Equal(t, "project", ProjectFile.String())
	assert.Equal(t, "unknown", UnknownFile.String())
}
