package bundle

// Attribute is a named, matchable metadata value on a declaration.
// Mandatory marks attributes a consumer must match for the declaration to
// apply; the tokenizer leaves it false, resolution policy may set it on
// replacement declarations.
type Attribute struct {
	Name      string
	Value     string
	Mandatory bool
}

// Directive is a named constraint affecting resolution behavior.
type Directive struct {
	Name  string
	Value string
}

// FindAttribute returns the attribute with the given name, if present.
func FindAttribute(attrs []Attribute, name string) (Attribute, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// FindDirective returns the directive with the given name, if present.
func FindDirective(dirs []Directive, name string) (Directive, bool) {
	for _, d := range dirs {
		if d.Name == name {
			return d, true
		}
	}
	return Directive{}, false
}

// Export is a package the bundle makes available to others. Treat as
// immutable; normalization replaces exports via NewExport rather than
// mutating them.
type Export struct {
	Name       string
	Directives []Directive
	Attributes []Attribute
}

// NewExport returns an export declaration. The directive and attribute
// slices are used as given, not copied; callers hand over ownership.
func NewExport(name string, directives []Directive, attributes []Attribute) Export {
	return Export{Name: name, Directives: directives, Attributes: attributes}
}

// Version returns the value of the export's version attribute, or 0.0.0
// when absent or unparsable.
func (e Export) Version() Version {
	a, ok := FindAttribute(e.Attributes, AttrVersion)
	if !ok {
		return Version{}
	}
	v, err := ParseVersion(a.Value)
	if err != nil {
		return Version{}
	}
	return v
}

// Import is a package the bundle requires, with a version range
// constraint. The same type describes dynamic imports, whose names may end
// in a ".*" wildcard.
type Import struct {
	Name       string
	Range      VersionRange
	Directives []Directive
	Attributes []Attribute
}

// NewImport returns an import declaration, deriving the version range from
// the version attribute when one is present. A malformed version attribute
// is an ErrMalformedVersion error.
func NewImport(name string, directives []Directive, attributes []Attribute) (Import, error) {
	rng := AnyVersion
	if a, ok := FindAttribute(attributes, AttrVersion); ok {
		var err error
		rng, err = ParseVersionRange(a.Value)
		if err != nil {
			return Import{}, err
		}
	}
	return Import{Name: name, Range: rng, Directives: directives, Attributes: attributes}, nil
}

// ImportFromExport synthesizes the import implied by an export under the
// legacy single-class-space format: same package, floor at the export's
// version, no upper bound.
func ImportFromExport(e Export) Import {
	return Import{
		Name:       e.Name,
		Range:      VersionRange{Low: e.Version(), LowInclusive: true},
		Attributes: e.Attributes,
	}
}
