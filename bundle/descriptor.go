package bundle

// Descriptor is the validated, normalized form of a bundle manifest.
// It is immutable after construction and safe for concurrent reads.
// Returned slices are the descriptor's own; callers must not modify them.
type Descriptor interface {
	// ManifestVersion is the resolved manifest format version: "1"
	// (legacy) or "2" (modern).
	ManifestVersion() string

	// Header returns the raw header value, or "" when absent.
	Header(name string) string

	// SymbolicName returns the bundle symbolic name header value. Always
	// non-empty for a modern-format descriptor.
	SymbolicName() string

	// Version returns the parsed bundle version, 0.0.0 when absent or,
	// under the legacy format, unparsable.
	Version() Version

	// Declarations, in manifest order after normalization.
	Exports() []Export
	Imports() []Import
	DynamicImports() []Import

	// NativeClauses returns the raw clause list with the optional sentinel
	// stripped; NativeOptional reports whether one was present.
	NativeClauses() []NativeClause
	NativeOptional() bool

	// NativeLibraries selects the clause applying to the environment and
	// materializes one entry per library file, bound to the given owning
	// revision. Returns nil with no error when the native-code header is
	// absent or native code is optional and nothing matches.
	NativeLibraries(revision string, env EnvironmentMatcher) ([]NativeLibrary, error)
}
