package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/willibrandon/vcproj/folder"
)

// JSON output types matching the schema contract

// CurrentSchemaVersion is the schema version for all JSON outputs
const CurrentSchemaVersion = "1.0.0"

// TargetsOutput represents the JSON output for the targets command
type TargetsOutput struct {
	SchemaVersion string   `json:"schemaVersion"`
	Project       string   `json:"project"`
	Schema        string   `json:"schema"`
	Toolchain     string   `json:"toolchain"`
	Targets       []Target `json:"targets"`
	ElapsedMs     int64    `json:"elapsedMs"`
}

// Target represents one build target in JSON output
type Target struct {
	Configuration      string   `json:"configuration"`
	Title              string   `json:"title"`
	Type               string   `json:"type"`
	Output             string   `json:"output,omitempty"`
	OutDir             string   `json:"outDir"`
	IntDir             string   `json:"intDir"`
	RuntimeLibrary     string   `json:"runtimeLibrary"`
	CharacterSet       string   `json:"characterSet"`
	SharedMFC          bool     `json:"sharedMfc,omitempty"`
	CompilerOptions    []string `json:"compilerOptions"`
	IncludeDirectories []string `json:"includeDirectories"`
	Defines            []Define `json:"defines"`
	FileCount          int      `json:"fileCount"`
}

// Define represents one preprocessor definition in JSON output
type Define struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// ConfigurationsOutput represents the JSON output for the configurations command
type ConfigurationsOutput struct {
	SchemaVersion  string   `json:"schemaVersion"`
	Project        string   `json:"project"`
	Configurations []string `json:"configurations"`
	ElapsedMs      int64    `json:"elapsedMs"`
}

// FilesOutput represents the JSON output for the files command
type FilesOutput struct {
	SchemaVersion string `json:"schemaVersion"`
	Project       string `json:"project"`
	Configuration string `json:"configuration,omitempty"`
	Watch         bool   `json:"watch,omitempty"`
	Files         []File `json:"files"`
	ElapsedMs     int64  `json:"elapsedMs"`
}

// File represents a project file in JSON output
type File struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// TreeOutput represents the JSON output for the tree command
type TreeOutput struct {
	SchemaVersion string     `json:"schemaVersion"`
	Project       string     `json:"project"`
	Root          FolderNode `json:"root"`
	FolderCount   int        `json:"folderCount"`
	FileCount     int        `json:"fileCount"`
	ElapsedMs     int64      `json:"elapsedMs"`
}

// FolderNode represents one filter folder in JSON output
type FolderNode struct {
	Name     string       `json:"name"`
	Path     string       `json:"path"`
	Files    []string     `json:"files"`
	Children []FolderNode `json:"children,omitempty"`
}

// CommandOutput represents the JSON output for the build-cmd and clean-cmd commands
type CommandOutput struct {
	SchemaVersion string `json:"schemaVersion"`
	Project       string `json:"project"`
	Configuration string `json:"configuration"`
	Mode          string `json:"mode"`
	Program       string `json:"program"`
	Args          string `json:"args"`
	CommandLine   string `json:"commandLine"`
	ElapsedMs     int64  `json:"elapsedMs"`
}

// WriteJSON writes a JSON object to the specified writer (typically stdout)
// When --format json is used, ALL JSON goes to stdout and ALL messages go to stderr
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// MeasureElapsed returns elapsed time in milliseconds since start
func MeasureElapsed(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

// NewFolderNode converts a filter tree into its JSON form.
func NewFolderNode(f *folder.Folder) FolderNode {
	node := FolderNode{
		Name:  f.Name(),
		Path:  f.Path(),
		Files: f.Files(),
	}
	for _, child := range f.Children() {
		node.Children = append(node.Children, NewFolderNode(child))
	}
	return node
}
