package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

const parseUsage = `gobundle parse - Parse manifests and report descriptor summaries

Usage:
  gobundle parse [options] FILE...

Options:
  -h, --help   Show help

Examples:
  gobundle parse META-INF/MANIFEST.MF
  gobundle parse bundles/*.mf
`

func (c *cli) cmdParse(args []string) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, parseUsage) }
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, parseUsage)
		return exitOK
	}

	files := fs.Args()
	if len(files) == 0 {
		printError("no manifest files specified")
		fmt.Fprint(os.Stderr, parseUsage)
		return exitError
	}

	code := exitOK
	for _, path := range files {
		desc, err := c.parseFile(path)
		if err != nil {
			printError("%s: %v", path, err)
			code = exitError
			continue
		}

		name := desc.SymbolicName()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%s: %s %s (format %s)\n", path, name, desc.Version(), desc.ManifestVersion())
		fmt.Printf("  exports: %d  imports: %d  dynamic: %d  native clauses: %d%s\n",
			len(desc.Exports()), len(desc.Imports()), len(desc.DynamicImports()),
			len(desc.NativeClauses()), optionalSuffix(desc.NativeOptional()))
		for _, e := range desc.Exports() {
			var extras []string
			for _, a := range e.Attributes {
				extras = append(extras, a.Name+"="+a.Value)
			}
			for _, d := range e.Directives {
				extras = append(extras, d.Name+":="+d.Value)
			}
			fmt.Printf("    export %s", e.Name)
			if len(extras) > 0 {
				fmt.Printf(" [%s]", strings.Join(extras, " "))
			}
			fmt.Println()
		}
		for _, imp := range desc.Imports() {
			fmt.Printf("    import %s %s\n", imp.Name, imp.Range)
		}
	}
	return code
}

func optionalSuffix(optional bool) string {
	if optional {
		return " (optional)"
	}
	return ""
}
