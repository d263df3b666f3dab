package header

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gobundle/gobundle/bundle"
)

func TestSplitDelimited(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		delim byte
		want  []string
	}{
		{"simple", "a,b,c", ',', []string{"a", "b", "c"}},
		{"trims whitespace", " a , b ", ',', []string{"a", "b"}},
		{"drops empties", "a,,b,", ',', []string{"a", "b"}},
		{"quoted delimiter", `a;filter="x;y";b`, ';', []string{"a", `filter="x;y"`, "b"}},
		{"quoted comma", `lib;osversion="[1.0,2.0)"`, ',', []string{`lib;osversion="[1.0,2.0)"`}},
		{"empty input", "", ',', nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitDelimited(tt.in, tt.delim)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitDelimited(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseClauses(t *testing.T) {
	clauses, err := ParseClauses(`a.b;a.c;version="1.0";resolution:=optional,d.e`)
	if err != nil {
		t.Fatal(err)
	}
	want := []Clause{
		{
			Names:      []string{"a.b", "a.c"},
			Attributes: []bundle.Attribute{{Name: "version", Value: "1.0"}},
			Directives: []bundle.Directive{{Name: "resolution", Value: "optional"}},
		},
		{Names: []string{"d.e"}},
	}
	if diff := cmp.Diff(want, clauses); diff != "" {
		t.Errorf("clauses mismatch (-want +got):\n%s", diff)
	}
}

func TestParseClauses_EmptyValue(t *testing.T) {
	clauses, err := ParseClauses("")
	if err != nil || clauses != nil {
		t.Errorf("ParseClauses(\"\") = %v, %v; want nil, nil", clauses, err)
	}
}

func TestParseClauses_SpecificationVersionRename(t *testing.T) {
	clauses, err := ParseClauses("a.b;specification-version=2.0")
	if err != nil {
		t.Fatal(err)
	}
	a, ok := bundle.FindAttribute(clauses[0].Attributes, bundle.AttrVersion)
	if !ok || a.Value != "2.0" {
		t.Errorf("expected canonical version attribute, got %v", clauses[0].Attributes)
	}

	// Declaring both spellings collides on the canonical name.
	_, err = ParseClauses("a.b;specification-version=2.0;version=2.0")
	if !errors.Is(err, bundle.ErrMalformedManifest) {
		t.Errorf("both spellings: err = %v, want ErrMalformedManifest", err)
	}
}

func TestParseClauses_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"duplicate attribute", "a.b;version=1.0;version=2.0"},
		{"duplicate directive", "a.b;uses:=x;uses:=y"},
		{"name after parameter", "a.b;version=1.0;a.c"},
		{"no package name", "version=1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseClauses(tt.in); !errors.Is(err, bundle.ErrMalformedManifest) {
				t.Errorf("ParseClauses(%q) err = %v, want ErrMalformedManifest", tt.in, err)
			}
		})
	}
}

func TestParseNativeClauses(t *testing.T) {
	value := `lib/http.so;lib/zlib.so;osname=Linux;processor=x86;osversion="[1.0,3.0)";language=en;selection-filter="osname == 'linux'"`
	clauses, optional, err := ParseNativeClauses(value)
	if err != nil {
		t.Fatal(err)
	}
	if optional {
		t.Error("optional = true, want false")
	}
	want := []bundle.NativeClause{{
		Files:           []string{"lib/http.so", "lib/zlib.so"},
		OSNames:         []string{"Linux"},
		Processors:      []string{"x86"},
		OSVersions:      []string{"[1.0,3.0)"},
		Languages:       []string{"en"},
		SelectionFilter: "osname == 'linux'",
	}}
	if diff := cmp.Diff(want, clauses); diff != "" {
		t.Errorf("clauses mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNativeClauses_RepeatedParameters(t *testing.T) {
	clauses, _, err := ParseNativeClauses("a.so;osname=Linux;osname=FreeBSD;processor=x86;processor=x86-64")
	if err != nil {
		t.Fatal(err)
	}
	if len(clauses[0].OSNames) != 2 || len(clauses[0].Processors) != 2 {
		t.Errorf("repeated parameters should accumulate, got %+v", clauses[0])
	}
}

func TestParseNativeClauses_OptionalSentinel(t *testing.T) {
	clauses, optional, err := ParseNativeClauses("a.so;osname=Linux,*")
	if err != nil {
		t.Fatal(err)
	}
	if !optional {
		t.Error("optional = false, want true")
	}
	if len(clauses) != 1 {
		t.Errorf("sentinel should be stripped, got %d clauses", len(clauses))
	}

	_, _, err = ParseNativeClauses("*,a.so;osname=Linux")
	if !errors.Is(err, bundle.ErrMalformedManifest) {
		t.Errorf("sentinel not last: err = %v, want ErrMalformedManifest", err)
	}
}

func TestParseNativeClauses_Errors(t *testing.T) {
	if _, _, err := ParseNativeClauses("osname=Linux"); !errors.Is(err, bundle.ErrMalformedManifest) {
		t.Errorf("clause without files: err = %v, want ErrMalformedManifest", err)
	}
	if _, _, err := ParseNativeClauses("a.so;osversion=bogus"); !errors.Is(err, bundle.ErrMalformedVersion) {
		t.Errorf("bad osversion: err = %v, want ErrMalformedVersion", err)
	}
}
