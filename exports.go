package gobundle

import "github.com/gobundle/gobundle/bundle"

// Type aliases for the public API - all types come from the bundle subpackage.

// Descriptor is the validated, normalized form of a bundle manifest.
type Descriptor = bundle.Descriptor

// Export is a package the bundle makes available to others.
type Export = bundle.Export

// Import is a package the bundle requires, with a version range.
type Import = bundle.Import

// Attribute is a named, matchable metadata value on a declaration.
type Attribute = bundle.Attribute

// Directive is a named constraint affecting resolution behavior.
type Directive = bundle.Directive

// NativeClause is one clause of the native-code header.
type NativeClause = bundle.NativeClause

// NativeLibrary is one resolved native-library entry.
type NativeLibrary = bundle.NativeLibrary

// EnvironmentMatcher decides whether a native clause applies to the
// running platform.
type EnvironmentMatcher = bundle.EnvironmentMatcher

// Version is a bundle or package version.
type Version = bundle.Version

// VersionRange is a version interval constraint.
type VersionRange = bundle.VersionRange

// Construction errors, re-exported from the bundle subpackage. Test with
// errors.Is.
var (
	ErrMalformedManifest       = bundle.ErrMalformedManifest
	ErrReservedNamespace       = bundle.ErrReservedNamespace
	ErrDuplicateDeclaration    = bundle.ErrDuplicateDeclaration
	ErrUnsupportedLegacySyntax = bundle.ErrUnsupportedLegacySyntax
	ErrMissingRequiredHeader   = bundle.ErrMissingRequiredHeader
	ErrReservedAttribute       = bundle.ErrReservedAttribute
	ErrNoMatchingNativeClause  = bundle.ErrNoMatchingNativeClause
	ErrMalformedVersion        = bundle.ErrMalformedVersion
)
