package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gobundle/gobundle"
	"github.com/gobundle/gobundle/cmd/internal/cliutil"
)

const dumpUsage = `gobundle dump - Output a full descriptor as JSON or YAML

Usage:
  gobundle dump [options] FILE

Options:
  -yaml                  YAML output instead of JSON
  --compact              Minified JSON (no indentation)
  -o, --output FILE      Write to file instead of stdout
  -h, --help             Show help

Examples:
  gobundle dump MANIFEST.MF
  gobundle dump -yaml MANIFEST.MF
  gobundle dump MANIFEST.MF | jq '.imports'
`

// dumpDoc is the serialized shape of a descriptor.
type dumpDoc struct {
	ManifestVersion string            `json:"manifestVersion" yaml:"manifestVersion"`
	SymbolicName    string            `json:"symbolicName,omitempty" yaml:"symbolicName,omitempty"`
	Version         string            `json:"version" yaml:"version"`
	Exports         []dumpExport      `json:"exports,omitempty" yaml:"exports,omitempty"`
	Imports         []dumpImport      `json:"imports,omitempty" yaml:"imports,omitempty"`
	DynamicImports  []dumpImport      `json:"dynamicImports,omitempty" yaml:"dynamicImports,omitempty"`
	NativeClauses   []dumpNative      `json:"nativeClauses,omitempty" yaml:"nativeClauses,omitempty"`
	NativeOptional  bool              `json:"nativeOptional,omitempty" yaml:"nativeOptional,omitempty"`
	Headers         map[string]string `json:"headers" yaml:"headers"`
}

type dumpExport struct {
	Name       string            `json:"name" yaml:"name"`
	Directives map[string]string `json:"directives,omitempty" yaml:"directives,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

type dumpImport struct {
	Name       string            `json:"name" yaml:"name"`
	Range      string            `json:"range" yaml:"range"`
	Directives map[string]string `json:"directives,omitempty" yaml:"directives,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

type dumpNative struct {
	Files           []string `json:"files" yaml:"files"`
	OSNames         []string `json:"osnames,omitempty" yaml:"osnames,omitempty"`
	Processors      []string `json:"processors,omitempty" yaml:"processors,omitempty"`
	OSVersions      []string `json:"osversions,omitempty" yaml:"osversions,omitempty"`
	Languages       []string `json:"languages,omitempty" yaml:"languages,omitempty"`
	SelectionFilter string   `json:"selectionFilter,omitempty" yaml:"selectionFilter,omitempty"`
}

func (c *cli) cmdDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, dumpUsage) }

	yamlOut := fs.Bool("yaml", false, "YAML output")
	compact := fs.Bool("compact", false, "minified JSON")
	outputFile := fs.String("o", "", "output file")
	fs.StringVar(outputFile, "output", "", "output file")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, dumpUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		printError("expected exactly one manifest file")
		fmt.Fprint(os.Stderr, dumpUsage)
		return exitError
	}
	path := fs.Arg(0)

	desc, err := c.parseFile(path)
	if err != nil {
		printError("%s: %v", path, err)
		return exitError
	}

	out, closeOut, err := cliutil.GetOutput(*outputFile)
	if err != nil {
		printError("%v", err)
		return exitError
	}
	defer closeOut()

	doc := buildDumpDoc(desc)
	if *yamlOut {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			printError("%v", err)
			return exitError
		}
		_ = enc.Close()
		return exitOK
	}

	enc := json.NewEncoder(out)
	if !*compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		printError("%v", err)
		return exitError
	}
	return exitOK
}

func buildDumpDoc(desc gobundle.Descriptor) dumpDoc {
	doc := dumpDoc{
		ManifestVersion: desc.ManifestVersion(),
		SymbolicName:    desc.SymbolicName(),
		Version:         desc.Version().String(),
		NativeOptional:  desc.NativeOptional(),
		Headers:         make(map[string]string),
	}
	for _, name := range []string{
		"Bundle-ManifestVersion", "Bundle-SymbolicName", "Bundle-Version",
		"Export-Package", "Import-Package", "DynamicImport-Package", "Bundle-NativeCode",
	} {
		if v := desc.Header(name); v != "" {
			doc.Headers[name] = v
		}
	}
	for _, e := range desc.Exports() {
		doc.Exports = append(doc.Exports, dumpExport{
			Name:       e.Name,
			Directives: directiveMap(e.Directives),
			Attributes: attributeMap(e.Attributes),
		})
	}
	doc.Imports = dumpImports(desc.Imports())
	doc.DynamicImports = dumpImports(desc.DynamicImports())
	for _, n := range desc.NativeClauses() {
		doc.NativeClauses = append(doc.NativeClauses, dumpNative{
			Files:           n.Files,
			OSNames:         n.OSNames,
			Processors:      n.Processors,
			OSVersions:      n.OSVersions,
			Languages:       n.Languages,
			SelectionFilter: n.SelectionFilter,
		})
	}
	return doc
}

func dumpImports(imports []gobundle.Import) []dumpImport {
	var out []dumpImport
	for _, imp := range imports {
		out = append(out, dumpImport{
			Name:       imp.Name,
			Range:      imp.Range.String(),
			Directives: directiveMap(imp.Directives),
			Attributes: attributeMap(imp.Attributes),
		})
	}
	return out
}

func directiveMap(dirs []gobundle.Directive) map[string]string {
	if len(dirs) == 0 {
		return nil
	}
	m := make(map[string]string, len(dirs))
	for _, d := range dirs {
		m[d.Name] = d.Value
	}
	return m
}

func attributeMap(attrs []gobundle.Attribute) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a.Value
	}
	return m
}
