package project

import (
	"sort"
	"strings"

	"github.com/willibrandon/vcproj/folder"
	"github.com/willibrandon/vcproj/msbuild"
)

// vcprojProject is a VS2005 .vcproj file.
type vcprojProject struct {
	*document
}

const (
	vcprojDefaultOutputDirectory       = "$(SolutionDir)$(ConfigurationName)"
	vcprojDefaultIntermediateDirectory = "$(ConfigurationName)"

	toolCompiler  = "VCCLCompilerTool"
	toolLinker    = "VCLinkerTool"
	toolLibrarian = "VCLibrarianTool"
)

func parseVcproj(doc *document, data []byte) (*vcprojProject, error) {
	var raw vcprojDocument
	if err := decodeDocument(doc.path, data, &raw); err != nil {
		return nil, err
	}

	p := &vcprojProject{document: doc}
	fileSet := make(map[string]struct{})

	for _, cfg := range raw.Configurations {
		key := strings.TrimSpace(cfg.Name)
		if key == "" {
			doc.logger.Warn("Configuration without a Name attribute skipped")
			continue
		}

		target := p.buildTarget(key, cfg)
		target.Files = p.collectFiles(raw.Files, key, "", nil)
		if !doc.addTarget(target) {
			continue
		}
		for _, f := range target.Files {
			fileSet[f] = struct{}{}
		}
	}

	doc.files = make([]string, 0, len(fileSet))
	for f := range fileSet {
		doc.files = append(doc.files, f)
	}
	sort.Strings(doc.files)

	// The tree holds every file that is built in at least one configuration.
	p.collectFiles(raw.Files, "", "", doc.root)

	return p, nil
}

func vcprojTargetType(code string) TargetType {
	switch strings.TrimSpace(code) {
	case "", "1":
		return Executable
	case "2":
		return DynamicLibrary
	case "3":
		return StaticLibrary
	case "4":
		return Utility
	default:
		return Other
	}
}

func (p *vcprojProject) buildTarget(key string, cfg vcprojConfiguration) BuildTarget {
	name, platform := msbuild.SplitConfiguration(key)

	target := BuildTarget{
		Configuration: key,
		Title:         p.name,
		TargetType:    vcprojTargetType(cfg.ConfigurationType),
		CharacterSet:  charsetFromCode(cfg.CharacterSet),
		SharedMFC:     strings.TrimSpace(cfg.UseOfMFC) == "2",
	}

	vars := p.variables(name, platform)
	vars.Set(msbuild.VarTargetExt, target.TargetType.Extension())

	outDir := cfg.OutputDirectory
	if strings.TrimSpace(outDir) == "" {
		outDir = vcprojDefaultOutputDirectory
	}
	target.OutDir = p.expandDir(outDir, vars)
	vars.Set(msbuild.VarOutDir, target.OutDir)

	intDir := cfg.IntermediateDirectory
	if strings.TrimSpace(intDir) == "" {
		intDir = vcprojDefaultIntermediateDirectory
	}
	target.IntDir = p.expandDir(intDir, vars)
	vars.Set(msbuild.VarIntDir, target.IntDir)

	defines := newDefineBlock()
	var includes []string
	output := ""

	for _, tool := range cfg.Tools {
		switch tool.Name {
		case toolCompiler:
			includes = append(includes, splitIncludeList(tool.AdditionalIncludeDirectories)...)
			for _, entry := range strings.Split(tool.PreprocessorDefinitions, ";") {
				defines.addEntry(p.expand(entry, vars))
			}
			if rt, ok := runtimeFromCode(tool.RuntimeLibrary); ok {
				target.RuntimeLibrary = rt
			}
		case toolLinker:
			if target.TargetType.HasLinkerOutput() && strings.TrimSpace(tool.OutputFile) != "" {
				output = tool.OutputFile
			}
		case toolLibrarian:
			if target.TargetType == StaticLibrary && strings.TrimSpace(tool.OutputFile) != "" {
				output = tool.OutputFile
			}
		}
	}

	if output == "" && target.TargetType != Utility && target.TargetType != Other {
		output = msbuild.DefaultOutputFile()
	}
	target.Output = p.expandPath(output, vars)
	target.IncludeDirectories = p.includeDirectories(includes, vars)

	p.finishTarget(&target, defines)
	return target
}

// splitIncludeList splits an AdditionalIncludeDirectories attribute. Old projects
// separate entries with ',' instead of ';'.
func splitIncludeList(value string) []string {
	entries := msbuild.SplitList(value)
	if len(entries) == 1 && strings.Contains(entries[0], ",") {
		var out []string
		for _, part := range strings.Split(entries[0], ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return entries
}

// collectFiles walks <Files>. When configuration is non-empty, files with per-file
// overrides are kept only if one names the configuration; when it is empty, a file is
// kept if it builds in any configuration. Files are added to tree (if non-nil) under
// their filter path, and the resolved paths are returned sorted.
func (p *vcprojProject) collectFiles(filter vcprojFilter, configuration, filterPath string, tree *folder.Folder) []string {
	var out []string
	p.walkFilter(filter, configuration, filterPath, tree, &out)
	sort.Strings(out)
	return dedupSorted(out)
}

func (p *vcprojProject) walkFilter(filter vcprojFilter, configuration, filterPath string, tree *folder.Folder, out *[]string) {
	p.walkFiles(filter.Files, configuration, filterPath, tree, out)
	for _, child := range filter.Filters {
		childPath := filterPath
		if name := strings.TrimSpace(child.Name); name != "" {
			if childPath != "" {
				childPath += folder.Separator
			}
			childPath += name
		}
		if tree != nil {
			tree.FindOrCreate(childPath)
		}
		p.walkFilter(child, configuration, childPath, tree, out)
	}
}

func (p *vcprojProject) walkFiles(files []vcprojFile, configuration, filterPath string, tree *folder.Folder, out *[]string) {
	for _, f := range files {
		if strings.TrimSpace(f.RelativePath) != "" && p.fileIncluded(f, configuration) {
			resolved := p.resolver.Resolve(f.RelativePath)
			*out = append(*out, resolved)
			if tree != nil {
				tree.FindOrCreate(filterPath).AddFile(resolved)
			}
		}
		p.walkFiles(f.Files, configuration, filterPath, tree, out)
	}
}

func (p *vcprojProject) fileIncluded(f vcprojFile, configuration string) bool {
	if len(f.Configurations) == 0 {
		return true
	}
	for _, fc := range f.Configurations {
		name := strings.TrimSpace(fc.Name)
		if configuration == "" {
			for _, known := range p.configurations {
				if name == known {
					return true
				}
			}
			continue
		}
		if name == configuration {
			return true
		}
	}
	return false
}

// BuildCmd returns the vcbuild command building configuration.
func (p *vcprojProject) BuildCmd(configuration string) CommandLine {
	return p.command(configuration, ModeBuild)
}

// CleanCmd returns the vcbuild command cleaning configuration.
func (p *vcprojProject) CleanCmd(configuration string) CommandLine {
	return p.command(configuration, ModeClean)
}

func (p *vcprojProject) command(configuration string, mode BuildMode) CommandLine {
	cfgArg := strings.ReplaceAll(configuration, "|", "^|")
	if strings.Contains(cfgArg, " ") {
		cfgArg = `"` + cfgArg + `"`
	}

	buildSwitch := ""
	if mode == ModeClean {
		buildSwitch = "/Clean "
	}

	return CommandLine{
		Program: shellProgram,
		Args: `/c "call "` + msbuild.ToNative(p.toolchain.VcvarsPath()) + `" & vcbuild "` +
			msbuild.ToNative(p.path) + `" /nologo ` + buildSwitch + cfgArg + `"`,
	}
}

func dedupSorted(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := in[:1]
	for _, s := range in[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
