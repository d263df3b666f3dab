package manifest

import (
	"fmt"

	"github.com/gobundle/gobundle/bundle"
)

// normalizeModern applies the modern-format rules: a symbolic name is
// required, and every export implicitly carries the bundle's symbolic name
// and version as attributes. Authors may not supply those attributes
// themselves.
func (d *Descriptor) normalizeModern() error {
	symName := d.SymbolicName()
	if symName == "" {
		return fmt.Errorf("%w: modern manifests must include %s",
			bundle.ErrMissingRequiredHeader, bundle.HeaderSymbolicName)
	}

	version := d.bundleVersion.String()
	for i, e := range d.exports {
		for _, a := range e.Attributes {
			if a.Name == bundle.AttrBundleVersion || a.Name == bundle.AttrBundleSymbolicName {
				return fmt.Errorf("%w: exports must not specify %s: %s",
					bundle.ErrReservedAttribute, a.Name, e.Name)
			}
		}

		attrs := make([]bundle.Attribute, len(e.Attributes), len(e.Attributes)+2)
		copy(attrs, e.Attributes)
		attrs = append(attrs,
			bundle.Attribute{Name: bundle.AttrBundleSymbolicName, Value: symName},
			bundle.Attribute{Name: bundle.AttrBundleVersion, Value: version},
		)
		d.exports[i] = bundle.NewExport(e.Name, e.Directives, attrs)
	}
	return nil
}
