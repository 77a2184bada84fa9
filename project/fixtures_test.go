package project

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/willibrandon/vcproj/msbuild"
	"github.com/willibrandon/vcproj/toolchain"
)

const vcprojHello = `<?xml version="1.0" encoding="Windows-1252"?>
<VisualStudioProject ProjectType="Visual C++" Version="8,00" Name="hello">
	<Platforms>
		<Platform Name="Win32"/>
	</Platforms>
	<Configurations>
		<Configuration
			Name="Debug|Win32"
			OutputDirectory="$(SolutionDir)$(ConfigurationName)"
			IntermediateDirectory="$(ConfigurationName)"
			ConfigurationType="1"
			CharacterSet="1">
			<Tool Name="VCPreBuildEventTool"/>
			<Tool
				Name="VCCLCompilerTool"
				AdditionalIncludeDirectories="include;..\shared"
				PreprocessorDefinitions="WIN32;_DEBUG;_CONSOLE;VERSION=3"
				RuntimeLibrary="3"/>
			<Tool Name="VCLinkerTool" OutputFile="$(OutDir)\$(ProjectName)$(TargetExt)"/>
		</Configuration>
		<Configuration
			Name="Release|Win32"
			ConfigurationType="1"
			CharacterSet="2"
			UseOfMFC="2">
			<Tool
				Name="VCCLCompilerTool"
				AdditionalIncludeDirectories="include,..\shared"
				PreprocessorDefinitions="WIN32;NDEBUG"
				RuntimeLibrary="2"/>
			<Tool Name="VCLinkerTool" OutputFile="$(OutDir)\$(ProjectName).exe"/>
		</Configuration>
	</Configurations>
	<Files>
		<Filter Name="Source Files" Filter="cpp;c">
			<File RelativePath=".\main.cpp"/>
			<Filter Name="Core">
				<File RelativePath="core\engine.cpp"/>
			</Filter>
			<File RelativePath=".\debug_only.cpp">
				<FileConfiguration Name="Debug|Win32"/>
			</File>
		</Filter>
		<Filter Name="Header Files">
			<File RelativePath=".\main.h"/>
		</Filter>
		<File RelativePath="readme.txt"/>
	</Files>
</VisualStudioProject>
`

const vcxprojApp = `<?xml version="1.0" encoding="utf-8"?>
<Project DefaultTargets="Build" ToolsVersion="12.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <ItemGroup Label="ProjectConfigurations">
    <ProjectConfiguration Include="Debug|Win32">
      <Configuration>Debug</Configuration>
      <Platform>Win32</Platform>
    </ProjectConfiguration>
    <ProjectConfiguration Include="Release|Win32">
      <Configuration>Release</Configuration>
      <Platform>Win32</Platform>
    </ProjectConfiguration>
    <ProjectConfiguration Include="Debug|x64">
      <Configuration>Debug</Configuration>
      <Platform>x64</Platform>
    </ProjectConfiguration>
    <ProjectConfiguration Include="Debug|Win32">
      <Configuration>Debug</Configuration>
      <Platform>Win32</Platform>
    </ProjectConfiguration>
  </ItemGroup>
  <PropertyGroup Label="Globals">
    <ProjectGuid>{8C1A20B0-78BC-4A86-A2F4-2DDD2B3D8B4C}</ProjectGuid>
    <RootNamespace>app</RootNamespace>
  </PropertyGroup>
  <PropertyGroup Condition="'$(Configuration)|$(Platform)'=='Debug|Win32'" Label="Configuration">
    <ConfigurationType>Application</ConfigurationType>
    <CharacterSet>Unicode</CharacterSet>
    <UseOfMfc>Dynamic</UseOfMfc>
  </PropertyGroup>
  <PropertyGroup Condition="'$(Configuration)|$(Platform)'=='Release|Win32'" Label="Configuration">
    <ConfigurationType>DynamicLibrary</ConfigurationType>
    <CharacterSet>MultiByte</CharacterSet>
  </PropertyGroup>
  <PropertyGroup Condition=" '$(Configuration)|$(Platform)' == 'Debug|x64' " Label="Configuration">
    <ConfigurationType>StaticLibrary</ConfigurationType>
  </PropertyGroup>
  <PropertyGroup>
    <OutDir Condition="'$(Configuration)|$(Platform)'=='Release|Win32'">$(SolutionDir)bin\$(Configuration)\</OutDir>
    <TargetName Condition="'$(Configuration)|$(Platform)'=='Release|Win32'">appcore</TargetName>
  </PropertyGroup>
  <ItemDefinitionGroup Condition="'$(Configuration)|$(Platform)'=='Debug|Win32'">
    <ClCompile>
      <PreprocessorDefinitions>WIN32;_DEBUG;%(PreprocessorDefinitions)</PreprocessorDefinitions>
      <AdditionalIncludeDirectories>include;$(ProjectDir)..\third_party;%(AdditionalIncludeDirectories)</AdditionalIncludeDirectories>
      <RuntimeLibrary>MultiThreadedDebug</RuntimeLibrary>
    </ClCompile>
    <Link>
      <OutputFile>$(OutDir)$(TargetName)$(TargetExt)</OutputFile>
    </Link>
  </ItemDefinitionGroup>
  <ItemDefinitionGroup Condition="'$(Configuration)|$(Platform)'=='Release|Win32'">
    <ClCompile>
      <PreprocessorDefinitions>NDEBUG</PreprocessorDefinitions>
    </ClCompile>
  </ItemDefinitionGroup>
  <ItemDefinitionGroup Condition="'$(Configuration)|$(Platform)'=='Debug|x64'">
    <ClCompile>
      <PreprocessorDefinitions />
    </ClCompile>
    <Lib>
      <OutputFile>$(OutDir)lib\$(ProjectName).lib</OutputFile>
    </Lib>
  </ItemDefinitionGroup>
  <ItemGroup>
    <ClCompile Include="src\main.cpp" />
    <ClCompile Include="src\core\a.cpp" />
    <ClInclude Include="include\app.h" />
    <ResourceCompile Include="app.rc" />
    <None Include="readme.md" />
    <ProjectReference Include="..\lib\lib.vcxproj" />
    <ClCompile Include="src\main.cpp" />
  </ItemGroup>
</Project>
`

const vcxprojAppFilters = `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="4.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <ItemGroup>
    <Filter Include="Source Files">
      <UniqueIdentifier>{4FC737F1-C7A5-4376-A066-2A32D752A2FF}</UniqueIdentifier>
    </Filter>
    <Filter Include="Source Files\Core" />
    <Filter Include="Header Files" />
    <Filter Include="Resource Files" />
  </ItemGroup>
  <ItemGroup>
    <ClCompile Include="src\main.cpp">
      <Filter>Source Files</Filter>
    </ClCompile>
    <ClCompile Include="src\core\a.cpp">
      <Filter>Source Files\Core</Filter>
    </ClCompile>
    <ClInclude Include="include\app.h">
      <Filter>Header Files</Filter>
    </ClInclude>
    <ClCompile Include="src\stale.cpp">
      <Filter>Source Files</Filter>
    </ClCompile>
  </ItemGroup>
</Project>
`

// testEnv locates every toolchain under C:/VS<n>.
func testEnv() toolchain.Environment {
	return toolchain.MapEnvironment(map[string]string{
		"VS80COMNTOOLS":  `C:\VS8\Common7\Tools\`,
		"VS100COMNTOOLS": `C:\VS10\Common7\Tools\`,
		"VS120COMNTOOLS": `C:\VS12\Common7\Tools\`,
		"BOOST_ROOT":     `C:\boost`,
	})
}

// writeProject writes content to dir/name and returns the host path.
func writeProject(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

// canonicalDir returns the '/' form of a host directory as the loader reports it.
func canonicalDir(dir string) string {
	return msbuild.AbsFromHost(dir)
}

func parentOf(dir string) string {
	return path.Dir(canonicalDir(dir))
}
