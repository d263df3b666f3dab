// Package header tokenizes manifest header values into clauses.
//
// The grammar is flat: clauses separated by commas, terms within a clause
// separated by semicolons, both splits honoring double-quoted spans. A term
// containing ":=" is a directive, a term containing "=" is an attribute,
// and anything else is a package name or library path. Package names must
// precede attributes and directives within their clause.
//
// Tokenizing stops at syntax; all semantic validation (reserved
// namespaces, duplicate declarations, format rules) happens in the
// manifest layer.
package header

import (
	"fmt"
	"strings"

	"github.com/gobundle/gobundle/bundle"
)

// Clause is one parsed package clause: one or more package names sharing
// an attribute and directive set.
type Clause struct {
	Names      []string
	Attributes []bundle.Attribute
	Directives []bundle.Directive
}

// SplitDelimited splits s on delim, ignoring delimiters inside
// double-quoted spans. Tokens are whitespace-trimmed; empty tokens are
// dropped. Quotes are preserved in the output.
func SplitDelimited(s string, delim byte) []string {
	var tokens []string
	var b strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"':
			inQuote = !inQuote
			b.WriteByte(s[i])
		case s[i] == delim && !inQuote:
			if tok := strings.TrimSpace(b.String()); tok != "" {
				tokens = append(tokens, tok)
			}
			b.Reset()
		default:
			b.WriteByte(s[i])
		}
	}
	if tok := strings.TrimSpace(b.String()); tok != "" {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Unquote strips one level of surrounding double quotes, if present.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// ParseClauses tokenizes a package header value (Export-Package,
// Import-Package, DynamicImport-Package). An empty value yields no
// clauses. Syntax errors wrap bundle.ErrMalformedManifest.
func ParseClauses(value string) ([]Clause, error) {
	var clauses []Clause
	for _, raw := range SplitDelimited(value, ',') {
		clause, err := parseClause(raw)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

func parseClause(raw string) (Clause, error) {
	var c Clause
	attrSeen := make(map[string]bool)
	dirSeen := make(map[string]bool)

	for _, term := range SplitDelimited(raw, ';') {
		eq := strings.IndexByte(term, '=')
		switch {
		case eq < 0:
			if len(c.Attributes) > 0 || len(c.Directives) > 0 {
				return Clause{}, fmt.Errorf("%w: package name %q after parameter in clause %q",
					bundle.ErrMalformedManifest, term, raw)
			}
			c.Names = append(c.Names, term)

		case eq > 0 && term[eq-1] == ':':
			name := strings.TrimSpace(term[:eq-1])
			if dirSeen[name] {
				return Clause{}, fmt.Errorf("%w: duplicate directive %q in clause %q",
					bundle.ErrMalformedManifest, name, raw)
			}
			dirSeen[name] = true
			c.Directives = append(c.Directives, bundle.Directive{
				Name:  name,
				Value: Unquote(term[eq+1:]),
			})

		default:
			name := strings.TrimSpace(term[:eq])
			// The legacy spelling normalizes to the canonical version
			// attribute so later passes have a single special case.
			if name == bundle.AttrSpecificationVersion {
				name = bundle.AttrVersion
			}
			if attrSeen[name] {
				return Clause{}, fmt.Errorf("%w: duplicate attribute %q in clause %q",
					bundle.ErrMalformedManifest, name, raw)
			}
			attrSeen[name] = true
			c.Attributes = append(c.Attributes, bundle.Attribute{
				Name:  name,
				Value: Unquote(term[eq+1:]),
			})
		}
	}

	if len(c.Names) == 0 {
		return Clause{}, fmt.Errorf("%w: clause %q has no package name",
			bundle.ErrMalformedManifest, raw)
	}
	return c, nil
}

// ParseNativeClauses tokenizes the native-code header value. The trailing
// "*" sentinel, when present, is stripped and reported through optional.
// A sentinel anywhere but last, a clause with no library files, and an
// invalid osversion range are all fatal.
func ParseNativeClauses(value string) (clauses []bundle.NativeClause, optional bool, err error) {
	raws := SplitDelimited(value, ',')
	for i, raw := range raws {
		if raw == "*" {
			if i != len(raws)-1 {
				return nil, false, fmt.Errorf("%w: optional native clause %q must be last",
					bundle.ErrMalformedManifest, raw)
			}
			optional = true
			continue
		}
		clause, err := parseNativeClause(raw)
		if err != nil {
			return nil, false, err
		}
		clauses = append(clauses, clause)
	}
	return clauses, optional, nil
}

func parseNativeClause(raw string) (bundle.NativeClause, error) {
	var c bundle.NativeClause
	for _, term := range SplitDelimited(raw, ';') {
		eq := strings.IndexByte(term, '=')
		if eq < 0 {
			c.Files = append(c.Files, term)
			continue
		}
		name := strings.ToLower(strings.TrimSpace(term[:eq]))
		val := Unquote(term[eq+1:])
		switch name {
		case bundle.ParamOSName:
			c.OSNames = append(c.OSNames, val)
		case bundle.ParamProcessor:
			c.Processors = append(c.Processors, val)
		case bundle.ParamOSVersion:
			if _, err := bundle.ParseVersionRange(val); err != nil {
				return bundle.NativeClause{}, err
			}
			c.OSVersions = append(c.OSVersions, val)
		case bundle.ParamLanguage:
			c.Languages = append(c.Languages, val)
		case bundle.ParamSelectionFilter:
			c.SelectionFilter = val
		default:
			// Unknown parameters are ignored for forward compatibility.
		}
	}
	if c.Files == nil {
		return bundle.NativeClause{}, fmt.Errorf("%w: native clause %q has no library files",
			bundle.ErrMalformedManifest, raw)
	}
	return c, nil
}
