package manifest

import (
	"fmt"
	"strings"

	"github.com/gobundle/gobundle/bundle"
)

// normalizeLegacy reconciles a legacy-format (single class space) manifest
// with the modern model. Legacy declarations carry at most a version
// attribute and never directives; every export implies an import of the
// same package; and every export must declare visibility of every import,
// expressed as a synthesized uses directive.
func (d *Descriptor) normalizeLegacy() error {
	for _, e := range d.exports {
		if len(e.Directives) != 0 {
			return fmt.Errorf("%w: legacy exports cannot contain directives: %s",
				bundle.ErrUnsupportedLegacySyntax, e.Name)
		}
		if len(e.Attributes) > 1 ||
			(len(e.Attributes) == 1 && e.Attributes[0].Name != bundle.AttrVersion) {
			return fmt.Errorf("%w: legacy export syntax does not support attributes: %s",
				bundle.ErrUnsupportedLegacySyntax, e.Name)
		}
	}

	for _, imp := range d.imports {
		if len(imp.Directives) != 0 {
			return fmt.Errorf("%w: legacy imports cannot contain directives: %s",
				bundle.ErrUnsupportedLegacySyntax, imp.Name)
		}
		// Interval ranges are a modern construct; legacy imports declare
		// only a floor.
		if imp.Range.High != nil ||
			len(imp.Attributes) > 1 ||
			(len(imp.Attributes) == 1 && imp.Attributes[0].Name != bundle.AttrVersion) {
			return fmt.Errorf("%w: legacy import syntax does not support attributes: %s",
				bundle.ErrUnsupportedLegacySyntax, imp.Name)
		}
	}

	// Every export implies an import. Existing imports keep their spot;
	// synthesized ones follow in export order.
	have := make(map[string]bool, len(d.imports))
	for _, imp := range d.imports {
		have[imp.Name] = true
	}
	for _, e := range d.exports {
		if !have[e.Name] {
			have[e.Name] = true
			d.imports = append(d.imports, bundle.ImportFromExport(e))
		}
	}

	// A single class space means every export sees every import. Replace
	// each export with one carrying the full uses list.
	names := make([]string, len(d.imports))
	for i, imp := range d.imports {
		names[i] = imp.Name
	}
	uses := bundle.Directive{Name: bundle.DirectiveUses, Value: strings.Join(names, ",")}
	for i, e := range d.exports {
		d.exports[i] = bundle.NewExport(e.Name, []bundle.Directive{uses}, e.Attributes)
	}

	for _, dyn := range d.dynamics {
		if len(dyn.Directives) != 0 {
			return fmt.Errorf("%w: legacy dynamic imports cannot contain directives: %s",
				bundle.ErrUnsupportedLegacySyntax, dyn.Name)
		}
		if len(dyn.Attributes) != 0 {
			return fmt.Errorf("%w: legacy dynamic imports cannot contain attributes: %s",
				bundle.ErrUnsupportedLegacySyntax, dyn.Name)
		}
	}
	return nil
}
