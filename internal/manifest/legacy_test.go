package manifest

import (
	"testing"

	"github.com/gobundle/gobundle/bundle"
	"github.com/gobundle/gobundle/internal/testutil"
)

func TestLegacy_RejectsDirectivesAndAttributes(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"export directive", testutil.Headers(bundle.HeaderExportPackage, "a.b;uses:=c.d")},
		{"export non-version attribute", testutil.Headers(bundle.HeaderExportPackage, "a.b;vendor=acme")},
		{"export extra attribute", testutil.Headers(bundle.HeaderExportPackage, "a.b;version=1.0;vendor=acme")},
		{"import directive", testutil.Headers(bundle.HeaderImportPackage, "a.b;resolution:=optional")},
		{"import non-version attribute", testutil.Headers(bundle.HeaderImportPackage, "a.b;vendor=acme")},
		{"import interval range", testutil.Headers(bundle.HeaderImportPackage, `a.b;version="[1.0,2.0)"`)},
		{"dynamic import directive", testutil.Headers(bundle.HeaderDynamicImport, "a.b;x:=y")},
		{"dynamic import attribute", testutil.Headers(bundle.HeaderDynamicImport, "a.b;version=1.0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.headers, nil)
			testutil.ErrorIs(t, err, bundle.ErrUnsupportedLegacySyntax)
		})
	}
}

func TestLegacy_SynthesizesImports(t *testing.T) {
	d, err := Parse(testutil.Headers(
		bundle.HeaderExportPackage, "a.b;version=1.0",
		bundle.HeaderImportPackage, "c.d;version=2.0",
	), nil)
	testutil.NoError(t, err)

	// The export implies an import, appended after the explicit ones.
	testutil.Len(t, d.Imports(), 2)
	testutil.Equal(t, "c.d", d.Imports()[0].Name)
	testutil.Equal(t, "a.b", d.Imports()[1].Name)
	testutil.True(t, d.Imports()[1].Range.Includes(bundle.MustVersion("1.0.0")))
	testutil.False(t, d.Imports()[1].Range.Includes(bundle.MustVersion("0.9.0")))
}

func TestLegacy_ExistingImportUntouched(t *testing.T) {
	d, err := Parse(testutil.Headers(
		bundle.HeaderExportPackage, "a.b;version=2.0",
		bundle.HeaderImportPackage, "a.b;version=1.0",
	), nil)
	testutil.NoError(t, err)

	testutil.Len(t, d.Imports(), 1)
	// The explicit import keeps its own floor.
	testutil.True(t, d.Imports()[0].Range.Includes(bundle.MustVersion("1.0.0")))
}

func TestLegacy_UsesDirective(t *testing.T) {
	d, err := Parse(testutil.Headers(
		bundle.HeaderExportPackage, "a.b;version=1.0,e.f",
		bundle.HeaderImportPackage, "c.d",
	), nil)
	testutil.NoError(t, err)

	// Every export carries a uses directive listing all imports,
	// including the export-implied ones, in declaration order.
	testutil.Len(t, d.Exports(), 2)
	for _, e := range d.Exports() {
		uses, ok := bundle.FindDirective(e.Directives, bundle.DirectiveUses)
		testutil.True(t, ok, "export %s missing uses directive", e.Name)
		testutil.Equal(t, "c.d,a.b,e.f", uses.Value)
	}

	// Replacement preserves the version attribute.
	a, ok := bundle.FindAttribute(d.Exports()[0].Attributes, bundle.AttrVersion)
	testutil.True(t, ok)
	testutil.Equal(t, "1.0", a.Value)
}

func TestLegacy_ExportOnlyManifest(t *testing.T) {
	d, err := Parse(testutil.Headers(bundle.HeaderExportPackage, "a.b"), nil)
	testutil.NoError(t, err)

	testutil.Len(t, d.Exports(), 1)
	testutil.Len(t, d.Imports(), 1)
	uses, ok := bundle.FindDirective(d.Exports()[0].Directives, bundle.DirectiveUses)
	testutil.True(t, ok)
	testutil.Equal(t, "a.b", uses.Value)
}
