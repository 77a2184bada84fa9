package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/willibrandon/vcproj/folder"
)

func TestWriteJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	doc := ConfigurationsOutput{
		SchemaVersion:  CurrentSchemaVersion,
		Project:        "C:/src/app.vcxproj",
		Configurations: []string{"Debug|Win32"},
	}
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	want := `{
  "schemaVersion": "1.0.0",
  "project": "C:/src/app.vcxproj",
  "configurations": [
    "Debug|Win32"
  ],
  "elapsedMs": 0
}
`
	if got := buf.String(); got != want {
		t.Errorf("WriteJSON() =\n%s\nwant\n%s", got, want)
	}
}

func TestNewFolderNode(t *testing.T) {
	root := folder.NewRoot()
	root.AddFile("C:/src/readme.txt")
	root.FindOrCreate(`Source Files\Core`).AddFile("C:/src/core.cpp")
	root.FindOrCreate("Header Files")

	node := NewFolderNode(root)
	if len(node.Files) != 1 || node.Files[0] != "C:/src/readme.txt" {
		t.Errorf("root files = %v", node.Files)
	}
	if len(node.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(node.Children))
	}
	if node.Children[0].Name != "Header Files" {
		t.Errorf("first child = %q, want Header Files", node.Children[0].Name)
	}

	core := node.Children[1].Children[0]
	if core.Path != `Source Files\Core` {
		t.Errorf("core path = %q", core.Path)
	}

	data, err := json.Marshal(node.Children[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"name":"Header Files","path":"Header Files","files":[]}` {
		t.Errorf("empty folder JSON = %s", data)
	}
}

func TestMeasureElapsed(t *testing.T) {
	start := time.Now().Add(-50 * time.Millisecond)
	if got := MeasureElapsed(start); got < 50 {
		t.Errorf("MeasureElapsed() = %d, want >= 50", got)
	}
}
