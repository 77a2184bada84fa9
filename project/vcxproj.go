package project

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/willibrandon/vcproj/msbuild"
	"github.com/willibrandon/vcproj/observability"
)

// vcxprojProject is a VS2010+ MSBuild .vcxproj file.
type vcxprojProject struct {
	*document
	raw msbuildProject
}

const (
	labelProjectConfigurations = "ProjectConfigurations"
	labelConfiguration         = "Configuration"
	labelGlobals               = "Globals"
	labelUserMacros            = "UserMacros"

	itemProjectConfiguration = "ProjectConfiguration"
	itemFilter               = "Filter"

	filtersSuffix = ".filters"
)

// fileItemTypes are the item types listed as project files.
var fileItemTypes = map[string]bool{
	"ClCompile":       true,
	"ClInclude":       true,
	"Midl":            true,
	"None":            true,
	"ResourceCompile": true,
	"CustomBuild":     true,
	"FxCompile":       true,
	"Image":           true,
	"Text":            true,
	"Xml":             true,
}

// IsFileItemType reports whether items of the given element name are project files.
func IsFileItemType(name string) bool {
	return fileItemTypes[name]
}

func parseMSBuild(ctx context.Context, doc *document, data []byte) (*vcxprojProject, error) {
	p := &vcxprojProject{document: doc}
	if err := decodeDocument(doc.path, data, &p.raw); err != nil {
		return nil, err
	}

	configurations := p.declaredConfigurations()
	p.files = p.collectFiles()

	for _, key := range configurations {
		p.addTarget(p.buildTarget(key))
	}

	p.buildTree(ctx)
	return p, nil
}

// declaredConfigurations returns the ProjectConfiguration Include values in order,
// without duplicates.
func (p *vcxprojProject) declaredConfigurations() []string {
	var out []string
	seen := make(map[string]bool)
	for _, group := range p.raw.ItemGroups {
		if group.Label != labelProjectConfigurations {
			continue
		}
		for _, item := range group.Items {
			key := strings.TrimSpace(item.Include)
			if item.XMLName.Local != itemProjectConfiguration || key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

func (p *vcxprojProject) collectFiles() []string {
	var out []string
	for _, group := range p.raw.ItemGroups {
		if group.Label != "" {
			continue
		}
		for _, item := range group.Items {
			if IsFileItemType(item.XMLName.Local) && strings.TrimSpace(item.Include) != "" {
				out = append(out, p.resolver.Resolve(item.Include))
			}
		}
	}
	sort.Strings(out)
	return dedupSorted(out)
}

// applies reports whether a Condition attribute is satisfied for configuration. An
// absent condition always applies.
func applies(condition, configuration string) bool {
	return strings.TrimSpace(condition) == "" || msbuild.ConditionMatches(condition, configuration)
}

func msbuildTargetType(value string) TargetType {
	switch text(value) {
	case "", "Application":
		return Executable
	case "DynamicLibrary":
		return DynamicLibrary
	case "StaticLibrary":
		return StaticLibrary
	case "Utility":
		return Utility
	default:
		return Other
	}
}

// configurationProperties is what a configuration's property groups set.
type configurationProperties struct {
	configurationType string
	characterSet      string
	useOfMfc          string

	// assignments are the macro-valued properties in document order, unexpanded
	assignments []propertyAssignment
}

// propertyAssignment is one property that feeds the macro map.
type propertyAssignment struct {
	name  string
	value string
}

var overridableProperties = []string{
	msbuild.VarTargetName,
	msbuild.VarTargetExt,
	msbuild.VarOutDir,
	msbuild.VarIntDir,
}

func isOverridable(name string) bool {
	for _, n := range overridableProperties {
		if n == name {
			return true
		}
	}
	return false
}

// properties scans the PropertyGroups in document order; later values win as they do
// in MSBuild.
func (p *vcxprojProject) properties(configuration string) configurationProperties {
	var props configurationProperties

	for _, group := range p.raw.PropertyGroups {
		if !applies(group.Condition, configuration) {
			continue
		}
		for _, prop := range group.Properties {
			if !applies(prop.Condition, configuration) {
				continue
			}
			name, value := prop.XMLName.Local, text(prop.Value)

			switch group.Label {
			case labelConfiguration:
				switch name {
				case "ConfigurationType":
					props.configurationType = value
				case "CharacterSet":
					props.characterSet = value
				case "UseOfMfc":
					props.useOfMfc = value
				}
			case labelGlobals:
				if name == msbuild.VarProjectName && value != "" {
					props.assignments = append(props.assignments, propertyAssignment{name, value})
				}
			case labelUserMacros:
				props.assignments = append(props.assignments, propertyAssignment{name, value})
			case "":
				if isOverridable(name) {
					props.assignments = append(props.assignments, propertyAssignment{name, value})
				}
			}
		}
	}
	return props
}

// assign evaluates the property assignments in order. Each value is expanded against the
// macros as they stand before it, so $(TargetName)_d extends the previous TargetName.
func (p *vcxprojProject) assign(assignments []propertyAssignment, vars msbuild.Variables) {
	for _, a := range assignments {
		switch a.name {
		case msbuild.VarOutDir, msbuild.VarIntDir:
			if a.value != "" {
				vars.Set(a.name, p.expandDir(a.value, vars))
			}
		case msbuild.VarTargetName:
			if value := p.expand(a.value, vars); value != "" {
				vars.Set(a.name, value)
			}
		case msbuild.VarProjectName:
			value := p.expand(a.value, vars)
			vars.Set(msbuild.VarProjectName, value)
			vars.Set(msbuild.VarTargetName, value)
		default:
			vars.Set(a.name, p.expand(a.value, vars))
		}
	}
}

func (p *vcxprojProject) buildTarget(key string) BuildTarget {
	name, platform := msbuild.SplitConfiguration(key)
	vars := p.variables(name, platform)
	props := p.properties(key)

	target := BuildTarget{
		Configuration: key,
		Title:         p.name,
		TargetType:    msbuildTargetType(props.configurationType),
		CharacterSet:  charsetFromName(props.characterSet),
		SharedMFC:     text(props.useOfMfc) == "Dynamic",
	}

	vars.Set(msbuild.VarTargetExt, target.TargetType.Extension())
	vars.Set(msbuild.VarOutDir, p.expandDir(msbuild.DefaultOutDir(platform), vars))
	vars.Set(msbuild.VarIntDir, p.expandDir(msbuild.DefaultIntDir(platform), vars))
	p.assign(props.assignments, vars)

	target.OutDir, _ = vars.Get(msbuild.VarOutDir)
	target.IntDir, _ = vars.Get(msbuild.VarIntDir)

	defines := newDefineBlock()
	var includes []string
	output := ""

	for _, group := range p.raw.ItemDefinitionGroups {
		if !applies(group.Condition, key) {
			continue
		}
		if cl := group.ClCompile; cl != nil {
			for _, entry := range msbuild.SplitList(p.expand(text(cl.PreprocessorDefinitions), vars)) {
				defines.addEntry(entry)
			}
			includes = append(includes, msbuild.SplitList(text(cl.AdditionalIncludeDirectories))...)
			if rt, ok := runtimeFromName(text(cl.RuntimeLibrary)); ok {
				target.RuntimeLibrary = rt
			}
		}
		if link := group.Link; link != nil && target.TargetType.HasLinkerOutput() && text(link.OutputFile) != "" {
			output = text(link.OutputFile)
		}
		if lib := group.Lib; lib != nil && target.TargetType == StaticLibrary && text(lib.OutputFile) != "" {
			output = text(lib.OutputFile)
		}
	}

	if output == "" && target.TargetType != Utility && target.TargetType != Other {
		output = msbuild.DefaultOutputFile()
	}
	target.Output = p.expandPath(output, vars)
	target.IncludeDirectories = p.includeDirectories(includes, vars)
	target.Files = append([]string(nil), p.files...)

	p.finishTarget(&target, defines)
	return target
}

// buildTree places files into the filter tree from the companion .filters file. Without
// one, or when it cannot be parsed, every file goes into the root folder.
func (p *vcxprojProject) buildTree(ctx context.Context) {
	filters, ok := p.readFilters(ctx)
	if !ok {
		for _, f := range p.files {
			p.root.AddFile(f)
		}
		return
	}

	byFile := make(map[string]string)
	for _, group := range filters.ItemGroups {
		for _, item := range group.Items {
			include := strings.TrimSpace(item.Include)
			if include == "" {
				continue
			}
			switch {
			case item.XMLName.Local == itemFilter:
				p.root.FindOrCreate(include)
			case IsFileItemType(item.XMLName.Local):
				if filter := text(item.Filter); filter != "" {
					byFile[p.resolver.Resolve(include)] = filter
				}
			}
		}
	}

	for _, f := range p.files {
		p.root.FindOrCreate(byFile[f]).AddFile(f)
	}
}

func (p *vcxprojProject) readFilters(ctx context.Context) (msbuildProject, bool) {
	hostPath := p.hostPath + filtersSuffix
	data, err := os.ReadFile(hostPath)
	if err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn("Cannot read filters file {Path}: {Error}", hostPath, err)
		}
		return msbuildProject{}, false
	}

	canonical := p.path + filtersSuffix
	p.watch = append(p.watch, canonical)

	_, span := observability.StartFiltersParseSpan(ctx, canonical)
	var filters msbuildProject
	err = decodeDocument(canonical, data, &filters)
	observability.EndSpanWithError(span, err)
	if err != nil {
		p.logger.Warn("Ignoring malformed filters file: {Error}", err)
		return msbuildProject{}, false
	}
	return filters, true
}

// BuildCmd returns the msbuild command building configuration.
func (p *vcxprojProject) BuildCmd(configuration string) CommandLine {
	return p.command(configuration, ModeBuild)
}

// CleanCmd returns the msbuild command cleaning configuration.
func (p *vcxprojProject) CleanCmd(configuration string) CommandLine {
	return p.command(configuration, ModeClean)
}

func (p *vcxprojProject) command(configuration string, mode BuildMode) CommandLine {
	name, platform := msbuild.SplitConfiguration(configuration)

	target := "/t:Build"
	if mode == ModeClean {
		target = "/t:Clean"
	}

	// VISUALSTUDIOVERSION is cleared so vcvarsall selects the msbuild of this toolchain.
	return CommandLine{
		Program: shellProgram,
		Args: `/c "set "VISUALSTUDIOVERSION=" & call "` + msbuild.ToNative(p.toolchain.VcvarsPath()) +
			`" & msbuild "` + msbuild.ToNative(p.path) + `" /nologo ` + target +
			` /p:Configuration="` + name + `" /p:Platform="` + platform + `""`,
	}
}

var (
	_ Project = (*vcxprojProject)(nil)
	_ Project = (*vcprojProject)(nil)
)
