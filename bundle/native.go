package bundle

// NativeClause is one clause of the native-code header: a set of library
// files plus the platform criteria under which they apply. File order is
// link order. A nil Files list is the optional sentinel (written "*" in
// the manifest); it is stripped from the clause list before selection.
type NativeClause struct {
	Files           []string
	OSNames         []string
	Processors      []string
	OSVersions      []string // version range strings, validated at parse time
	Languages       []string
	SelectionFilter string
}

// Optional reports whether the clause is the optional sentinel.
func (c NativeClause) Optional() bool { return c.Files == nil }

// NativeLibrary is one resolved native-library entry: a single file from a
// selected clause, bound to the owning bundle revision and carrying the
// clause's matcher fields.
type NativeLibrary struct {
	Revision        string
	File            string
	OSNames         []string
	Processors      []string
	OSVersions      []string
	Languages       []string
	SelectionFilter string
}

// EnvironmentMatcher decides whether a native clause applies to the
// running platform. Implementations must be pure: selection relies on
// repeated calls with the same clause giving the same answer.
type EnvironmentMatcher interface {
	Match(c NativeClause) bool
}
