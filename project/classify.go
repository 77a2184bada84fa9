package project

import (
	"path"
	"strings"
)

// FileType classifies a project file for display.
type FileType int

const (
	UnknownFile FileType = iota
	HeaderFile
	SourceFile
	ResourceFile
	ProjectFile
)

func (t FileType) String() string {
	switch t {
	case HeaderFile:
		return "header"
	case SourceFile:
		return "source"
	case ResourceFile:
		return "resource"
	case ProjectFile:
		return "project"
	default:
		return "unknown"
	}
}

var fileTypeExtensions = []struct {
	fileType   FileType
	extensions []string
}{
	{HeaderFile, []string{".h", ".hpp", ".hxx", ".inl"}},
	{SourceFile, []string{".c", ".cpp", ".cxx", ".asm"}},
	{ResourceFile, []string{".rc", ".rgs"}},
	{ProjectFile, []string{".vcproj", ".vcxproj"}},
}

// ClassifyFile returns the type of a file from its extension (case-insensitive).
func ClassifyFile(file string) FileType {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(file, `\`, "/")))
	for _, entry := range fileTypeExtensions {
		for _, candidate := range entry.extensions {
			if ext == candidate {
				return entry.fileType
			}
		}
	}
	return UnknownFile
}
