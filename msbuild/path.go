package msbuild

import (
	"path"
	"path/filepath"
	"strings"
)

// PathResolver resolves paths found in project files against the project directory.
// All results use '/' separators so the model is identical on every host OS.
type PathResolver struct {
	// BaseDir is the directory containing the project file
	BaseDir string
}

// NewPathResolver creates a new path resolver rooted at baseDir.
func NewPathResolver(baseDir string) *PathResolver {
	return &PathResolver{BaseDir: CleanPath(NormalizePath(baseDir))}
}

// NormalizePath converts Windows-style separators to forward slashes and collapses
// duplicate separators, keeping a leading UNC "//".
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	isUNC := strings.HasPrefix(p, `\\`) || strings.HasPrefix(p, "//")
	normalized := strings.ReplaceAll(p, `\`, "/")

	if isUNC {
		remainder := strings.TrimLeft(normalized, "/")
		for strings.Contains(remainder, "//") {
			remainder = strings.ReplaceAll(remainder, "//", "/")
		}
		return "//" + remainder
	}

	for strings.Contains(normalized, "//") {
		normalized = strings.ReplaceAll(normalized, "//", "/")
	}
	return normalized
}

// IsAbs reports whether a normalized path is absolute on either Unix or Windows.
func IsAbs(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	return hasDriveLetter(p)
}

func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// CleanPath collapses "." and ".." segments of a normalized path, preserving drive and
// UNC prefixes.
func CleanPath(p string) string {
	if p == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(p, "//"):
		rest := path.Clean("/" + strings.TrimLeft(p, "/"))
		return "/" + rest
	case hasDriveLetter(p):
		drive, rest := p[:2], p[2:]
		if rest == "" {
			return drive + "/"
		}
		return drive + path.Clean(rest)
	default:
		return path.Clean(p)
	}
}

// Resolve normalizes p and, if it is relative, joins it to the base directory.
// An empty input stays empty.
func (r *PathResolver) Resolve(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	normalized := NormalizePath(unquote(p))
	if IsAbs(normalized) {
		return CleanPath(normalized)
	}
	return CleanPath(r.BaseDir + "/" + normalized)
}

// ResolveDir is Resolve for directories; the result carries a trailing '/' so it can be
// concatenated with a file name the way $(OutDir) values are.
func (r *PathResolver) ResolveDir(p string) string {
	resolved := r.Resolve(p)
	if resolved == "" || strings.HasSuffix(resolved, "/") {
		return resolved
	}
	return resolved + "/"
}

// ToNative renders a canonical path with Windows separators, the form expected by
// cmd.exe and the Visual Studio tools.
func ToNative(p string) string {
	return strings.ReplaceAll(p, "/", `\`)
}

// AbsFromHost converts a host file-system path to an absolute canonical path.
func AbsFromHost(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return CleanPath(NormalizePath(filepath.ToSlash(p)))
}

func unquote(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		return p[1 : len(p)-1]
	}
	return p
}
