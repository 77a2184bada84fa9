package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// projectFilePattern matches project files directly inside a directory.
const projectFilePattern = "*.{vcproj,vcxproj,VCPROJ,VCXPROJ}"

// IsProjectFile checks if a file path has a Visual C++ project file extension
func IsProjectFile(path string) bool {
	if path == "" {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".vcproj" || ext == ".vcxproj"
}

// DetectionResult contains the result of project file discovery
type DetectionResult struct {
	// Found indicates if any project file was found
	Found bool

	// Ambiguous indicates if multiple project files were found
	Ambiguous bool

	// ProjectPath is the path to the found project file when exactly one was found
	ProjectPath string

	// FoundFiles lists all project files found, sorted
	FoundFiles []string
}

// FindProjectFile looks for .vcproj and .vcxproj files directly inside dir.
func FindProjectFile(dir string) (*DetectionResult, error) {
	if dir == "" {
		dir = "."
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), projectFilePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("error searching for project files: %w", err)
	}

	result := &DetectionResult{FoundFiles: []string{}}
	for _, m := range matches {
		p := filepath.Join(dir, filepath.FromSlash(m))
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		result.FoundFiles = append(result.FoundFiles, p)
	}
	sort.Strings(result.FoundFiles)

	switch len(result.FoundFiles) {
	case 0:
		return result, nil
	case 1:
		result.Found = true
		result.ProjectPath = result.FoundFiles[0]
		return result, nil
	default:
		result.Found = true
		result.Ambiguous = true
		return result, nil
	}
}

// ResolveProjectPath turns a command-line argument into a project file path. An empty
// argument or a directory is searched with FindProjectFile and must contain exactly one
// project file.
func ResolveProjectPath(arg string) (string, error) {
	if arg != "" {
		info, err := os.Stat(arg)
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("project file not found: %s", arg)
			}
			return "", fmt.Errorf("cannot access project file: %w", err)
		}
		if !info.IsDir() {
			return arg, nil
		}
	}

	result, err := FindProjectFile(arg)
	if err != nil {
		return "", err
	}
	switch {
	case !result.Found:
		return "", fmt.Errorf("no .vcproj or .vcxproj file found in %s", displayDir(arg))
	case result.Ambiguous:
		return "", fmt.Errorf("multiple project files found in %s, specify one: %s",
			displayDir(arg), strings.Join(result.FoundFiles, ", "))
	default:
		return result.ProjectPath, nil
	}
}

func displayDir(dir string) string {
	if dir == "" {
		return "current directory"
	}
	return dir
}
