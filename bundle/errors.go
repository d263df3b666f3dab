package bundle

import "errors"

// Construction errors. Every failure aborts the whole parse; there is no
// partial descriptor. Errors are wrapped with context, so test with
// errors.Is rather than equality.
var (
	// ErrMalformedManifest reports an unsupported manifest-version value, a
	// bundle version that fails to parse under the modern format, or a
	// header clause the tokenizer cannot make sense of.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrReservedNamespace reports an export or import of a package under
	// the reserved root namespace.
	ErrReservedNamespace = errors.New("reserved namespace")

	// ErrDuplicateDeclaration reports two import declarations sharing a
	// package name. Duplicate exports are tolerated (first wins, warning
	// logged) and duplicate dynamic imports are legal.
	ErrDuplicateDeclaration = errors.New("duplicate declaration")

	// ErrUnsupportedLegacySyntax reports a legacy-format declaration using
	// directives, non-version attributes, or interval version ranges.
	ErrUnsupportedLegacySyntax = errors.New("unsupported legacy syntax")

	// ErrMissingRequiredHeader reports a modern-format manifest without a
	// symbolic name.
	ErrMissingRequiredHeader = errors.New("missing required header")

	// ErrReservedAttribute reports a modern-format export explicitly
	// declaring an implicit attribute.
	ErrReservedAttribute = errors.New("reserved attribute")

	// ErrNoMatchingNativeClause reports mandatory native code with no
	// clause matching the environment.
	ErrNoMatchingNativeClause = errors.New("no matching native clause")

	// ErrMalformedVersion reports invalid version or version-range syntax
	// where strict parsing is required.
	ErrMalformedVersion = errors.New("malformed version")
)
