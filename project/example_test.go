package project_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/willibrandon/vcproj/project"
	"github.com/willibrandon/vcproj/toolchain"
)

func ExampleLoad() {
	dir, err := os.MkdirTemp("", "vcproj-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	content := `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="12.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <ItemGroup Label="ProjectConfigurations">
    <ProjectConfiguration Include="Debug|Win32" />
    <ProjectConfiguration Include="Release|x64" />
  </ItemGroup>
  <ItemGroup>
    <ClCompile Include="main.cpp" />
  </ItemGroup>
</Project>`
	projPath := filepath.Join(dir, "demo.vcxproj")
	if err := os.WriteFile(projPath, []byte(content), 0644); err != nil {
		fmt.Println(err)
		return
	}

	p, err := project.Load(projPath, project.WithEnvironment(toolchain.MapEnvironment(nil)))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(p.Toolchain().Name)
	for _, target := range p.Targets() {
		rel := strings.TrimPrefix(target.Output, p.Dir()+"/")
		fmt.Println(target.Configuration, target.TargetType, strings.Join(target.CompilerOptions, " "), rel)
	}

	// Output:
	// VS2013
	// Debug|Win32 Executable /MDd Debug/demo.exe
	// Release|x64 Executable /MD x64/Release/demo.exe
}
