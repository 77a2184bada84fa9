package project

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	rootVcproj  = "VisualStudioProject"
	rootMSBuild = "Project"
)

// vcprojDocument represents the root <VisualStudioProject> element of a .vcproj file.
type vcprojDocument struct {
	XMLName        xml.Name              `xml:"VisualStudioProject"`
	Version        string                `xml:"Version,attr"`
	Name           string                `xml:"Name,attr"`
	Configurations []vcprojConfiguration `xml:"Configurations>Configuration"`
	Files          vcprojFilter          `xml:"Files"`
}

// vcprojConfiguration represents a <Configuration> element.
type vcprojConfiguration struct {
	Name                  string       `xml:"Name,attr"`
	OutputDirectory       string       `xml:"OutputDirectory,attr"`
	IntermediateDirectory string       `xml:"IntermediateDirectory,attr"`
	ConfigurationType     string       `xml:"ConfigurationType,attr"`
	CharacterSet          string       `xml:"CharacterSet,attr"`
	UseOfMFC              string       `xml:"UseOfMFC,attr"`
	Tools                 []vcprojTool `xml:"Tool"`
}

// vcprojTool represents a <Tool> element. Only the attributes of the compiler, linker and
// librarian tools are mapped.
type vcprojTool struct {
	Name                         string `xml:"Name,attr"`
	AdditionalIncludeDirectories string `xml:"AdditionalIncludeDirectories,attr"`
	PreprocessorDefinitions      string `xml:"PreprocessorDefinitions,attr"`
	RuntimeLibrary               string `xml:"RuntimeLibrary,attr"`
	OutputFile                   string `xml:"OutputFile,attr"`
}

// vcprojFilter represents <Files> and the <Filter> elements nested in it.
type vcprojFilter struct {
	Name    string         `xml:"Name,attr"`
	Filters []vcprojFilter `xml:"Filter"`
	Files   []vcprojFile   `xml:"File"`
}

// vcprojFile represents a <File> element. Files can nest (generated files under an .idl).
type vcprojFile struct {
	RelativePath   string                    `xml:"RelativePath,attr"`
	Configurations []vcprojFileConfiguration `xml:"FileConfiguration"`
	Files          []vcprojFile              `xml:"File"`
}

// vcprojFileConfiguration represents a per-file <FileConfiguration> override.
type vcprojFileConfiguration struct {
	Name string `xml:"Name,attr"`
}

// msbuildProject represents the root <Project> element of a .vcxproj or .vcxproj.filters
// file.
type msbuildProject struct {
	XMLName              xml.Name                     `xml:"Project"`
	ToolsVersion         string                       `xml:"ToolsVersion,attr"`
	ItemGroups           []msbuildItemGroup           `xml:"ItemGroup"`
	PropertyGroups       []msbuildPropertyGroup       `xml:"PropertyGroup"`
	ItemDefinitionGroups []msbuildItemDefinitionGroup `xml:"ItemDefinitionGroup"`
}

// msbuildItemGroup represents an <ItemGroup>; its children are kept generically because
// the element name is the item type.
type msbuildItemGroup struct {
	Label     string        `xml:"Label,attr"`
	Condition string        `xml:"Condition,attr"`
	Items     []msbuildItem `xml:",any"`
}

// msbuildItem is one item such as <ClCompile Include="a.cpp"> or <ProjectConfiguration>.
type msbuildItem struct {
	XMLName xml.Name
	Include string `xml:"Include,attr"`
	Filter  string `xml:"Filter"`
}

// msbuildPropertyGroup represents a <PropertyGroup>.
type msbuildPropertyGroup struct {
	Label      string            `xml:"Label,attr"`
	Condition  string            `xml:"Condition,attr"`
	Properties []msbuildProperty `xml:",any"`
}

// msbuildProperty is one property element; the element name is the property name.
type msbuildProperty struct {
	XMLName   xml.Name
	Condition string `xml:"Condition,attr"`
	Value     string `xml:",chardata"`
}

// msbuildItemDefinitionGroup represents an <ItemDefinitionGroup>. Absent tools decode as
// nil and absent values as "".
type msbuildItemDefinitionGroup struct {
	Condition string            `xml:"Condition,attr"`
	ClCompile *msbuildClCompile `xml:"ClCompile"`
	Link      *msbuildOutput    `xml:"Link"`
	Lib       *msbuildOutput    `xml:"Lib"`
}

type msbuildClCompile struct {
	PreprocessorDefinitions      string `xml:"PreprocessorDefinitions"`
	AdditionalIncludeDirectories string `xml:"AdditionalIncludeDirectories"`
	RuntimeLibrary               string `xml:"RuntimeLibrary"`
}

type msbuildOutput struct {
	OutputFile string `xml:"OutputFile"`
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// newDecoder returns a decoder that accepts a UTF-8 BOM and the legacy encodings
// (Windows-1252 and friends) Visual Studio writes into .vcproj declarations.
func newDecoder(data []byte) *xml.Decoder {
	d := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	d.CharsetReader = charset.NewReaderLabel
	return d
}

// rootElement is the name and attributes of a document's first element.
type rootElement struct {
	Name  string
	Attrs map[string]string
}

// readRoot scans tokens up to the first start element.
func readRoot(path string, data []byte) (rootElement, error) {
	d := newDecoder(data)
	for {
		tok, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return rootElement{}, &ParseError{FilePath: path, Message: "document has no root element"}
			}
			return rootElement{}, newParseError(path, err)
		}

		if start, ok := tok.(xml.StartElement); ok {
			root := rootElement{Name: start.Name.Local, Attrs: make(map[string]string, len(start.Attr))}
			for _, a := range start.Attr {
				root.Attrs[a.Name.Local] = a.Value
			}
			return root, nil
		}
	}
}

// decodeDocument decodes the whole document into v.
func decodeDocument(path string, data []byte, v any) error {
	if err := newDecoder(data).Decode(v); err != nil {
		return newParseError(path, err)
	}
	return nil
}

func newParseError(path string, err error) *ParseError {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{FilePath: path, Line: syntaxErr.Line, Message: syntaxErr.Msg}
	}
	return &ParseError{FilePath: path, Message: err.Error()}
}

// text returns trimmed element text.
func text(s string) string {
	return strings.TrimSpace(s)
}
