// Package bundle defines the value types produced by manifest parsing:
// export, import, and dynamic-import declarations, native library clauses,
// versions and version ranges, and the Descriptor interface through which
// the resolver consumes them.
//
// All values are immutable once constructed. Normalization never mutates a
// declaration in place; it builds a replacement that preserves the package
// name and merges in synthesized directives and attributes.
package bundle

// Manifest header names.
const (
	HeaderManifestVersion = "Bundle-ManifestVersion"
	HeaderVersion         = "Bundle-Version"
	HeaderSymbolicName    = "Bundle-SymbolicName"
	HeaderExportPackage   = "Export-Package"
	HeaderImportPackage   = "Import-Package"
	HeaderDynamicImport   = "DynamicImport-Package"
	HeaderNativeCode      = "Bundle-NativeCode"
)

// Attribute names with meaning to the parser and normalizers.
const (
	// AttrVersion is the canonical version attribute. The tokenizer renames
	// the legacy specification-version attribute to this.
	AttrVersion = "version"

	// AttrSpecificationVersion is the legacy spelling of AttrVersion.
	AttrSpecificationVersion = "specification-version"

	// AttrBundleSymbolicName and AttrBundleVersion are attached implicitly
	// to every export under the modern manifest format. Authors may not
	// declare them explicitly.
	AttrBundleSymbolicName = "bundle-symbolic-name"
	AttrBundleVersion      = "bundle-version"
)

// Directive names.
const (
	// DirectiveUses lists the packages an export's internals may reference.
	// Synthesized on every export of a legacy-format bundle.
	DirectiveUses = "uses"
)

// ReservedPrefix is the root namespace no bundle may export or import.
const ReservedPrefix = "java."

// Native clause parameter names.
const (
	ParamOSName          = "osname"
	ParamProcessor       = "processor"
	ParamOSVersion       = "osversion"
	ParamLanguage        = "language"
	ParamSelectionFilter = "selection-filter"
)
