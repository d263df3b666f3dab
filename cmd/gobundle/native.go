package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gobundle/gobundle"
	"github.com/gobundle/gobundle/internal/envmatch"
)

const nativeUsage = `gobundle native - Run native clause selection against an environment

Usage:
  gobundle native [options] FILE

Options:
  -os NAME          Override OS name (default: runtime)
  -arch NAME        Override processor (default: runtime)
  -osversion V      Set OS version property
  -lang L           Override language (default: en)
  -prop K=V         Set an extra platform property (repeatable)
  -revision ID      Owning revision id for resolved entries (default: "0")
  -h, --help        Show help

Examples:
  gobundle native MANIFEST.MF
  gobundle native -os windows -arch 386 MANIFEST.MF
  gobundle native -os linux -osversion 5.10.0 MANIFEST.MF
`

type propList []string

func (p *propList) String() string     { return strings.Join(*p, ",") }
func (p *propList) Set(v string) error { *p = append(*p, v); return nil }

func (c *cli) cmdNative(args []string) int {
	fs := flag.NewFlagSet("native", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, nativeUsage) }

	osName := fs.String("os", "", "OS name override")
	arch := fs.String("arch", "", "processor override")
	osVersion := fs.String("osversion", "", "OS version property")
	lang := fs.String("lang", "", "language override")
	revision := fs.String("revision", "0", "owning revision id")
	var props propList
	fs.Var(&props, "prop", "extra platform property K=V")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, nativeUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		printError("expected exactly one manifest file")
		fmt.Fprint(os.Stderr, nativeUsage)
		return exitError
	}

	desc, err := c.parseFile(fs.Arg(0))
	if err != nil {
		printError("%s: %v", fs.Arg(0), err)
		return exitError
	}

	envProps := make(map[string]string)
	if *osName != "" {
		envProps[envmatch.PropOSName] = *osName
	}
	if *arch != "" {
		envProps[envmatch.PropProcessor] = *arch
	}
	if *osVersion != "" {
		envProps[envmatch.PropOSVersion] = *osVersion
	}
	if *lang != "" {
		envProps[envmatch.PropLanguage] = *lang
	}
	for _, kv := range props {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			printError("invalid -prop %q, expected K=V", kv)
			return exitError
		}
		envProps[k] = v
	}

	var opts []gobundle.Option
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, gobundle.WithLogger(logger))
	}
	env := gobundle.NewEnvironment(envProps, opts...)

	libs, err := desc.NativeLibraries(*revision, env)
	if err != nil {
		if errors.Is(err, gobundle.ErrNoMatchingNativeClause) {
			printError("%v", err)
		} else {
			printError("selection failed: %v", err)
		}
		return exitError
	}
	if len(libs) == 0 {
		fmt.Println("no native libraries selected")
		return exitOK
	}
	for _, lib := range libs {
		fmt.Printf("%s (revision %s)\n", lib.File, lib.Revision)
	}
	return exitOK
}
