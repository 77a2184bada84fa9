// Package project loads Visual C++ project files (.vcproj and .vcxproj with its optional
// .vcxproj.filters companion) into an immutable model of build targets, files, a filter
// tree and build/clean command lines.
package project

import (
	"context"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/willibrandon/vcproj/folder"
	"github.com/willibrandon/vcproj/msbuild"
	"github.com/willibrandon/vcproj/observability"
	"github.com/willibrandon/vcproj/toolchain"
)

// Schema identifies the project file format family.
type Schema int

const (
	// SchemaUnknown is reported before detection succeeds
	SchemaUnknown Schema = iota
	// SchemaVcproj is the VS2005 <VisualStudioProject> format
	SchemaVcproj
	// SchemaMSBuild is the VS2010+ MSBuild <Project> format
	SchemaMSBuild
)

func (s Schema) String() string {
	switch s {
	case SchemaVcproj:
		return "vcproj"
	case SchemaMSBuild:
		return "msbuild"
	default:
		return "unknown"
	}
}

// Project is the loaded model of one project file. A Project never changes after Load
// returns; reloading produces a new Project. Slices and the folder tree returned by its
// methods must not be modified by callers.
type Project interface {
	// Path is the absolute project file path with '/' separators
	Path() string

	// Dir is the directory containing the project file
	Dir() string

	// Name is the project file's base name without extension
	Name() string

	Schema() Schema
	Toolchain() toolchain.Toolchain

	// LoadID is unique per load, so consumers can tell two parses of one file apart
	LoadID() uuid.UUID

	// Targets returns one target per configuration in declaration order
	Targets() []BuildTarget

	// TargetsFor returns the targets matching a full "<Config>|<Platform>" key, or every
	// platform of a bare configuration name
	TargetsFor(configuration string) []BuildTarget

	// RunnableTargets returns the executable targets with a known output
	RunnableTargets() []BuildTarget

	// Configurations returns the distinct configuration keys in declaration order
	Configurations() []string

	// Files returns every project file, absolute, sorted and duplicate free
	Files() []string

	// FilesToWatch lists the files whose change requires a reload
	FilesToWatch() []string

	// Root is the filter tree
	Root() *folder.Folder

	BuildCmd(configuration string) CommandLine
	CleanCmd(configuration string) CommandLine
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	logger observability.Logger
	env    toolchain.Environment
}

// WithLogger sets the logger used while loading.
func WithLogger(logger observability.Logger) Option {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEnvironment replaces the process environment for toolchain discovery and for
// resolving macros the project does not define.
func WithEnvironment(env toolchain.Environment) Option {
	return func(o *loadOptions) {
		if env != nil {
			o.env = env
		}
	}
}

func newLoadOptions(opts []Option) loadOptions {
	o := loadOptions{
		logger: observability.NewNullLogger(),
		env:    toolchain.OSEnvironment,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load reads and parses the project file at path.
func Load(path string, opts ...Option) (Project, error) {
	return LoadContext(context.Background(), path, opts...)
}

// LoadContext is Load with a context carrying the parent trace span.
func LoadContext(ctx context.Context, filePath string, opts ...Option) (Project, error) {
	o := newLoadOptions(opts)
	canonical := msbuild.AbsFromHost(filePath)

	ctx, span := observability.StartProjectLoadSpan(ctx, canonical)
	start := time.Now()

	p, version, err := load(ctx, filePath, canonical, o)

	label := version.Name
	if label == "" {
		label = "unknown"
	}
	observability.ProjectLoadDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	if err != nil {
		observability.ProjectLoadsTotal.WithLabelValues(label, observability.StatusFailure).Inc()
		o.logger.WarnContext(ctx, "Failed to load {ProjectPath}: {Error}", canonical, err)
		observability.EndSpanWithError(span, err)
		return nil, err
	}

	observability.ProjectLoadsTotal.WithLabelValues(label, observability.StatusSuccess).Inc()
	observability.ProjectFilesTotal.WithLabelValues(label).Observe(float64(len(p.Files())))
	observability.RecordModelSize(ctx, len(p.Targets()), len(p.Files()))
	o.logger.DebugContext(ctx, "Loaded {ProjectPath} ({Toolchain}) with {TargetCount} targets and {FileCount} files",
		canonical, version.Name, len(p.Targets()), len(p.Files()))
	observability.EndSpanWithError(span, nil)
	return p, nil
}

func load(ctx context.Context, hostPath, canonical string, o loadOptions) (Project, toolchain.Version, error) {
	data, err := os.ReadFile(hostPath)
	if err != nil {
		return nil, toolchain.Version{}, &FileReadError{Path: hostPath, Err: err}
	}

	schema, version, err := Detect(canonical, data)
	if err != nil {
		return nil, version, err
	}
	observability.RecordSchema(ctx, schema.String(), version.Name)

	doc := newDocument(hostPath, canonical, schema, toolchain.Locate(version, o.env), o)
	if !doc.toolchain.Located() {
		doc.logger.Warn("{EnvVar} is not set; default include directories are omitted and build commands reference a relative script",
			version.EnvVar)
	}

	switch schema {
	case SchemaVcproj:
		p, err := parseVcproj(doc, data)
		return p, version, err
	default:
		p, err := parseMSBuild(ctx, doc, data)
		return p, version, err
	}
}

// Detect inspects the root element of a project document and selects the schema and
// toolchain version. path is only used in error messages.
func Detect(path string, data []byte) (Schema, toolchain.Version, error) {
	root, err := readRoot(path, data)
	if err != nil {
		return SchemaUnknown, toolchain.Version{}, err
	}

	switch root.Name {
	case rootVcproj:
		raw := root.Attrs["Version"]
		v, ok := toolchain.ForVcproj(raw)
		if !ok {
			return SchemaUnknown, toolchain.Version{}, &UnsupportedSchemaVersionError{
				Path: path, Root: root.Name, Version: toolchain.NormalizeVersion(raw),
			}
		}
		return SchemaVcproj, v, nil
	case rootMSBuild:
		raw := root.Attrs["ToolsVersion"]
		v, ok := toolchain.ForToolsVersion(raw)
		if !ok {
			return SchemaUnknown, toolchain.Version{}, &UnsupportedSchemaVersionError{
				Path: path, Root: root.Name, Version: toolchain.NormalizeVersion(raw),
			}
		}
		return SchemaMSBuild, v, nil
	default:
		return SchemaUnknown, toolchain.Version{}, &UnrecognizedProjectFileError{Path: path, Root: root.Name}
	}
}

// document holds the state shared by both schema implementations.
type document struct {
	path      string
	hostPath  string
	dir       string
	name      string
	schema    Schema
	toolchain toolchain.Toolchain
	loadID    uuid.UUID
	resolver  *msbuild.PathResolver
	env       toolchain.Environment
	logger    observability.Logger

	targets        []BuildTarget
	configurations []string
	files          []string
	watch          []string
	root           *folder.Folder
}

func newDocument(hostPath, canonical string, schema Schema, tc toolchain.Toolchain, o loadOptions) *document {
	dir := path.Dir(canonical)
	base := path.Base(canonical)
	name := strings.TrimSuffix(base, path.Ext(base))

	return &document{
		path:      canonical,
		hostPath:  hostPath,
		dir:       dir,
		name:      name,
		schema:    schema,
		toolchain: tc,
		loadID:    uuid.New(),
		resolver:  msbuild.NewPathResolver(dir),
		env:       o.env,
		logger:    o.logger.ForContext("Project", name),
		root:      folder.NewRoot(),
		watch:     []string{canonical},
	}
}

func (d *document) Path() string                   { return d.path }
func (d *document) Dir() string                    { return d.dir }
func (d *document) Name() string                   { return d.name }
func (d *document) Schema() Schema                 { return d.schema }
func (d *document) Toolchain() toolchain.Toolchain { return d.toolchain }
func (d *document) LoadID() uuid.UUID              { return d.loadID }
func (d *document) Root() *folder.Folder           { return d.root }

func (d *document) Targets() []BuildTarget {
	out := make([]BuildTarget, len(d.targets))
	for i, t := range d.targets {
		out[i] = t.clone()
	}
	return out
}

func (d *document) TargetsFor(configuration string) []BuildTarget {
	full := strings.Contains(configuration, "|")
	var out []BuildTarget
	for _, t := range d.targets {
		if (full && t.Configuration == configuration) || (!full && t.ConfigurationName() == configuration) {
			out = append(out, t.clone())
		}
	}
	return out
}

func (d *document) RunnableTargets() []BuildTarget {
	var out []BuildTarget
	for _, t := range d.targets {
		if t.IsRunnable() {
			out = append(out, t.clone())
		}
	}
	return out
}

func (d *document) Configurations() []string {
	return append([]string(nil), d.configurations...)
}

func (d *document) Files() []string {
	return append([]string(nil), d.files...)
}

func (d *document) FilesToWatch() []string {
	return append([]string(nil), d.watch...)
}

// addTarget appends t unless its configuration is already present.
func (d *document) addTarget(t BuildTarget) bool {
	for _, existing := range d.configurations {
		if existing == t.Configuration {
			d.logger.Warn("Duplicate configuration {Configuration} ignored", t.Configuration)
			return false
		}
	}
	d.configurations = append(d.configurations, t.Configuration)
	d.targets = append(d.targets, t)
	return true
}

// variables returns the macro map every configuration starts from.
func (d *document) variables(configurationName, platform string) msbuild.Variables {
	dir := strings.TrimSuffix(d.dir, "/") + "/"

	vars := msbuild.NewVariables()
	vars.Set(msbuild.VarProjectDir, dir)
	vars.Set(msbuild.VarSolutionDir, dir)
	vars.Set(msbuild.VarProjectName, d.name)
	vars.Set(msbuild.VarTargetName, d.name)
	vars.Set(msbuild.VarConfiguration, configurationName)
	vars.Set(msbuild.VarConfigurationName, configurationName)
	vars.Set(msbuild.VarPlatform, platform)
	vars.Set(msbuild.VarPlatformName, platform)
	return vars
}

// expand substitutes vars into text. Tokens the map does not cover are looked up in the
// environment, as MSBuild exposes environment variables as properties.
func (d *document) expand(text string, vars msbuild.Variables) string {
	out, err := msbuild.SubstituteStrict(text, vars)
	if err != nil {
		d.logger.Warn("Macro expansion of {Value} did not settle: {Error}", text, err)
	}

	tokens := msbuild.Tokens(out)
	if len(tokens) == 0 {
		return out
	}

	var fromEnv msbuild.Variables
	for _, name := range tokens {
		if value, ok := d.env(name); ok {
			if fromEnv == nil {
				fromEnv = vars.Clone()
			}
			fromEnv.Set(name, value)
			continue
		}
		d.logger.Debug("Unresolved macro {Token} in {Value}", name, text)
		observability.UnresolvedTokensTotal.WithLabelValues(name).Inc()
	}

	if fromEnv != nil {
		out = msbuild.Substitute(out, fromEnv)
	}
	return out
}

func (d *document) expandPath(text string, vars msbuild.Variables) string {
	return d.resolver.Resolve(d.expand(text, vars))
}

func (d *document) expandDir(text string, vars msbuild.Variables) string {
	return d.resolver.ResolveDir(d.expand(text, vars))
}

// includeDirectories resolves explicit entries and appends the toolchain defaults.
func (d *document) includeDirectories(entries []string, vars msbuild.Variables) []string {
	dirs := make([]string, 0, len(entries)+3)
	for _, entry := range entries {
		if resolved := d.expandPath(entry, vars); resolved != "" {
			dirs = append(dirs, resolved)
		}
	}
	return append(dirs, d.toolchain.DefaultIncludeDirs()...)
}

// finishTarget fills in the fields both schemas derive the same way.
func (d *document) finishTarget(t *BuildTarget, defines *defineBlock) {
	if t.RuntimeLibrary == RuntimeUnknown {
		t.RuntimeLibrary = runtimeByConvention(t.ConfigurationName())
		if t.RuntimeLibrary != RuntimeUnknown {
			d.logger.Debug("No runtime library declared for {Configuration}, assuming {Runtime}",
				t.Configuration, t.RuntimeLibrary.String())
		}
	}
	t.CompilerOptions = append(compilerOptions(t.RuntimeLibrary), t.CompilerOptions...)

	defines.addDefaults(t.Platform(), t.RuntimeLibrary, t.CharacterSet, t.SharedMFC, d.toolchain.Version)
	t.Defines = defines.String()
}
