// Package folder models the virtual folder ("filter") hierarchy Visual Studio shows for a
// project, independent of where the files live on disk.
package folder

import (
	"sort"
	"strings"
)

// Separator delimits folder names in a filter path ("Source Files\Core").
const Separator = `\`

// Folder is one node of the filter tree. A folder exclusively owns its children.
type Folder struct {
	name     string
	path     string
	files    map[string]struct{}
	children map[string]*Folder
}

// NewRoot creates an empty root folder.
func NewRoot() *Folder {
	return newFolder("", "")
}

func newFolder(name, path string) *Folder {
	return &Folder{
		name:     name,
		path:     path,
		files:    make(map[string]struct{}),
		children: make(map[string]*Folder),
	}
}

// Name is the last path segment; empty for the root.
func (f *Folder) Name() string {
	return f.name
}

// Path is the full '\'-delimited filter path; empty for the root.
func (f *Folder) Path() string {
	return f.path
}

// IsRoot reports whether f is the root of its tree.
func (f *Folder) IsRoot() bool {
	return f.path == ""
}

// SplitPath splits a filter path into its segments, ignoring empty segments and
// accepting '/' as well as '\'.
func SplitPath(filterPath string) []string {
	normalized := strings.ReplaceAll(filterPath, "/", Separator)
	var parts []string
	for _, p := range strings.Split(normalized, Separator) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// FindOrCreate walks filterPath from f, creating missing folders along the way, and
// returns the last one. An empty path returns f.
func (f *Folder) FindOrCreate(filterPath string) *Folder {
	current := f
	for _, part := range SplitPath(filterPath) {
		child, ok := current.children[part]
		if !ok {
			child = newFolder(part, joinPath(current.path, part))
			current.children[part] = child
		}
		current = child
	}
	return current
}

// Lookup walks filterPath from f without creating anything.
func (f *Folder) Lookup(filterPath string) (*Folder, bool) {
	current := f
	for _, part := range SplitPath(filterPath) {
		child, ok := current.children[part]
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// Child returns the direct child with the given name.
func (f *Folder) Child(name string) (*Folder, bool) {
	child, ok := f.children[name]
	return child, ok
}

// AddFile adds a file path to this folder. Duplicates collapse.
func (f *Folder) AddFile(file string) {
	if file == "" {
		return
	}
	f.files[file] = struct{}{}
}

// HasFile reports whether this folder directly contains file.
func (f *Folder) HasFile(file string) bool {
	_, ok := f.files[file]
	return ok
}

// Files returns the files directly in this folder, sorted.
func (f *Folder) Files() []string {
	out := make([]string, 0, len(f.files))
	for file := range f.files {
		out = append(out, file)
	}
	sort.Strings(out)
	return out
}

// Children returns the direct sub-folders sorted by name.
func (f *Folder) Children() []*Folder {
	names := make([]string, 0, len(f.children))
	for name := range f.children {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Folder, 0, len(names))
	for _, name := range names {
		out = append(out, f.children[name])
	}
	return out
}

// IsEmpty reports whether the folder holds neither files nor sub-folders.
func (f *Folder) IsEmpty() bool {
	return len(f.files) == 0 && len(f.children) == 0
}

// Walk visits f and every descendant depth-first in name order. Returning false from fn
// skips the folder's descendants.
func (f *Folder) Walk(fn func(*Folder) bool) {
	if !fn(f) {
		return
	}
	for _, child := range f.Children() {
		child.Walk(fn)
	}
}

// AllFiles returns every file in the tree, sorted and deduplicated.
func (f *Folder) AllFiles() []string {
	seen := make(map[string]struct{})
	f.Walk(func(n *Folder) bool {
		for file := range n.files {
			seen[file] = struct{}{}
		}
		return true
	})

	out := make([]string, 0, len(seen))
	for file := range seen {
		out = append(out, file)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of folders (excluding f) and file entries in the tree.
func (f *Folder) Count() (folders, files int) {
	f.Walk(func(n *Folder) bool {
		if n != f {
			folders++
		}
		files += len(n.files)
		return true
	})
	return folders, files
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + Separator + name
}
