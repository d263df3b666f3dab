// Package envmatch evaluates native-code clauses against the running
// platform. OS and processor names are matched case-insensitively through
// alias tables keyed by the GOOS/GOARCH vocabulary, osversion ranges are
// checked against the osversion property when one is set, and the
// free-form selection filter is a CEL expression over the platform
// properties.
package envmatch

import (
	"log/slog"
	"runtime"
	"strings"

	"github.com/gobundle/gobundle/bundle"
)

// Well-known property names.
const (
	PropOSName    = "osname"
	PropProcessor = "processor"
	PropOSVersion = "osversion"
	PropLanguage  = "language"
)

// Alternate spellings accepted for OS names, keyed by GOOS value.
var osAliases = map[string][]string{
	"linux":   {"linux"},
	"windows": {"windows", "win32", "windowsnt"},
	"darwin":  {"darwin", "macos", "macosx", "mac os x"},
	"freebsd": {"freebsd"},
	"netbsd":  {"netbsd"},
	"openbsd": {"openbsd"},
	"solaris": {"solaris", "sunos"},
	"aix":     {"aix"},
}

// Alternate spellings accepted for processors, keyed by GOARCH value.
var processorAliases = map[string][]string{
	"amd64":   {"amd64", "x86-64", "x86_64", "x64", "em64t"},
	"386":     {"386", "x86", "i386", "i486", "i586", "i686", "pentium"},
	"arm64":   {"arm64", "aarch64"},
	"arm":     {"arm"},
	"ppc64":   {"ppc64", "powerpc64"},
	"ppc64le": {"ppc64le"},
	"s390x":   {"s390x", "s390"},
	"riscv64": {"riscv64"},
}

// Environment is a concrete bundle.EnvironmentMatcher. It is immutable
// after construction and safe for concurrent use.
type Environment struct {
	props  map[string]string
	logger *slog.Logger
}

// New returns an environment over the given properties. Missing osname,
// processor, and language entries default to runtime.GOOS, runtime.GOARCH,
// and "en". A nil logger disables logging.
func New(props map[string]string, logger *slog.Logger) *Environment {
	merged := map[string]string{
		PropOSName:    runtime.GOOS,
		PropProcessor: runtime.GOARCH,
		PropLanguage:  "en",
	}
	for k, v := range props {
		merged[k] = v
	}
	return &Environment{props: merged, logger: logger}
}

// Property returns a platform property value, or "" when unset.
func (e *Environment) Property(name string) string { return e.props[name] }

// Match reports whether the clause applies to this platform. Every
// non-empty criterion list must be satisfied; an empty list constrains
// nothing.
func (e *Environment) Match(c bundle.NativeClause) bool {
	switch {
	case len(c.OSNames) > 0 && !matchAliased(c.OSNames, e.props[PropOSName], osAliases):
		e.logReject(c, PropOSName)
	case len(c.Processors) > 0 && !matchAliased(c.Processors, e.props[PropProcessor], processorAliases):
		e.logReject(c, PropProcessor)
	case len(c.OSVersions) > 0 && !e.matchOSVersion(c.OSVersions):
		e.logReject(c, PropOSVersion)
	case len(c.Languages) > 0 && !containsFold(c.Languages, e.props[PropLanguage]):
		e.logReject(c, PropLanguage)
	case c.SelectionFilter != "" && !e.evalFilter(c.SelectionFilter):
		e.logReject(c, "selection-filter")
	default:
		return true
	}
	return false
}

func (e *Environment) logReject(c bundle.NativeClause, criterion string) {
	e.logDebug("clause rejected",
		slog.Any("files", c.Files), slog.String("criterion", criterion))
}

// matchOSVersion reports whether any declared range includes the platform
// OS version. An unset osversion property never disqualifies a clause.
func (e *Environment) matchOSVersion(ranges []string) bool {
	raw := e.props[PropOSVersion]
	if raw == "" {
		return true
	}
	v, err := bundle.ParseVersion(raw)
	if err != nil {
		return true
	}
	for _, rs := range ranges {
		r, err := bundle.ParseVersionRange(rs)
		if err != nil {
			continue
		}
		if r.Includes(v) {
			return true
		}
	}
	return false
}

// matchAliased reports whether any candidate names the same platform value
// as got, consulting the alias table in both directions.
func matchAliased(candidates []string, got string, aliases map[string][]string) bool {
	want := aliases[strings.ToLower(got)]
	if want == nil {
		want = []string{got}
	}
	for _, cand := range candidates {
		if containsFold(want, cand) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
