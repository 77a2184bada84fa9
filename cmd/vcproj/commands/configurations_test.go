package commands

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/willibrandon/vcproj/cmd/vcproj/output"
)

func TestConfigurationsCommand(t *testing.T) {
	dir, _ := writeApp(t)

	stdout, _, err := execute(t, NewConfigurationsCommand, output.VerbosityNormal, dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "Debug|Win32\nRelease|Win32\n"
	if stdout != want {
		t.Errorf("output = %q, want %q", stdout, want)
	}
}

func TestConfigurationsCommand_JSON(t *testing.T) {
	dir, _ := writeApp(t)

	stdout, _, err := execute(t, NewConfigurationsCommand, output.VerbosityNormal, dir, "--format", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc output.ConfigurationsOutput
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	if strings.Join(doc.Configurations, ",") != "Debug|Win32,Release|Win32" {
		t.Errorf("Configurations = %v", doc.Configurations)
	}
}

func TestConfigurationsCommand_NoneDeclared(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "empty.vcxproj"), `<Project ToolsVersion="12.0"></Project>`)

	stdout, stderr, err := execute(t, NewConfigurationsCommand, output.VerbosityNormal, dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "declares no configurations") {
		t.Errorf("stderr = %q, want a warning", stderr)
	}
}

func TestConfigurationsCommand_Alias(t *testing.T) {
	cmd := NewConfigurationsCommand(output.NewConsole(nil, nil, output.VerbosityQuiet))
	if len(cmd.Aliases) != 1 || cmd.Aliases[0] != "configs" {
		t.Errorf("Aliases = %v, want [configs]", cmd.Aliases)
	}
}
