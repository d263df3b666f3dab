// Command gobundle parses bundle manifests and inspects the resulting
// descriptors.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gobundle/gobundle"
	"github.com/gobundle/gobundle/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error or manifest validation failure
)

const usage = `gobundle - bundle manifest parser and descriptor tool

Usage:
  gobundle <command> [options] [arguments]

Commands:
  parse   Parse manifests and report descriptor summaries
  dump    Output a full descriptor as JSON or YAML
  native  Run native clause selection against an environment
  version Show version

Common options:
  -v, --verbose     Enable debug logging
  -vv               Enable trace logging (implies -v)
  -h, --help        Show help

Examples:
  gobundle parse META-INF/MANIFEST.MF
  gobundle dump -yaml MANIFEST.MF
  gobundle native -os linux -arch amd64 MANIFEST.MF
`

type cli struct {
	verbose  int
	helpFlag bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var c cli
	args := os.Args[1:]
	var cmdArgs []string
	var cmd string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			c.helpFlag = true
		case arg == "-v" || arg == "--verbose":
			if c.verbose < 1 {
				c.verbose = 1
			}
		case arg == "-vv":
			c.verbose = 2
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}

	if c.helpFlag && cmd == "" {
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}

	if cmd == "" {
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	switch cmd {
	case "parse":
		return c.cmdParse(cmdArgs)
	case "dump":
		return c.cmdDump(cmdArgs)
	case "native":
		return c.cmdNative(cmdArgs)
	case "version":
		printVersion()
		return exitOK
	case "help":
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = gobundle.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// parseFile reads and parses one manifest file.
func (c *cli) parseFile(path string) (gobundle.Descriptor, error) {
	headers, err := gobundle.ReadManifestFile(path)
	if err != nil {
		return nil, err
	}
	var opts []gobundle.Option
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, gobundle.WithLogger(logger))
	}
	return gobundle.Parse(headers, opts...)
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("gobundle %s\n", version)
}

func printError(format string, args ...any) {
	cliutil.PrintError(format, args...)
}
