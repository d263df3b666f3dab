// Package manifest turns a raw manifest header map into a validated,
// normalized bundle descriptor.
//
// Construction runs in a fixed order: version policy first (fatal on
// mismatch), then declaration building for exports, imports, and dynamic
// imports, then native-code clause parsing, then exactly one of the two
// format normalization passes, chosen by the resolved manifest version.
// Native clause selection runs lazily, on demand, against the parsed
// clause list.
//
// Every check fails fast; there is no partial descriptor. The one
// tolerated irregularity is a duplicated export, which is logged and
// dropped (first occurrence wins).
package manifest

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/gobundle/gobundle/bundle"
	"github.com/gobundle/gobundle/internal/header"
)

// Descriptor implements bundle.Descriptor.
type Descriptor struct {
	headers        map[string]string
	version        string // resolved manifest version, "1" or "2"
	bundleVersion  bundle.Version
	exports        []bundle.Export
	imports        []bundle.Import
	dynamics       []bundle.Import
	natives        []bundle.NativeClause
	nativeOptional bool
}

var _ bundle.Descriptor = (*Descriptor)(nil)

// Parse validates and normalizes the header map. The map is copied; the
// caller keeps ownership of its own copy.
func Parse(headers map[string]string, logger *slog.Logger) (*Descriptor, error) {
	d := &Descriptor{headers: maps.Clone(headers)}

	// Version policy. Only manifest version 2 is recognized; absence means
	// the legacy format.
	mv := d.Header(bundle.HeaderManifestVersion)
	if mv != "" && mv != "2" {
		return nil, fmt.Errorf("%w: unknown %s value %q",
			bundle.ErrMalformedManifest, bundle.HeaderManifestVersion, mv)
	}
	if mv == "" {
		d.version = "1"
	} else {
		d.version = mv
	}

	if bv := d.Header(bundle.HeaderVersion); bv != "" {
		v, err := bundle.ParseVersion(bv)
		if err != nil {
			// Modern bundle versions must parse; legacy ones may not.
			if d.version == "2" {
				return nil, fmt.Errorf("%w: %w", bundle.ErrMalformedManifest, err)
			}
		} else {
			d.bundleVersion = v
		}
	}

	var err error
	if d.exports, err = buildExports(d.Header(bundle.HeaderExportPackage), logger); err != nil {
		return nil, err
	}
	if d.imports, err = buildImports(d.Header(bundle.HeaderImportPackage)); err != nil {
		return nil, err
	}
	if d.dynamics, err = buildDynamicImports(d.Header(bundle.HeaderDynamicImport)); err != nil {
		return nil, err
	}

	d.natives, d.nativeOptional, err = header.ParseNativeClauses(d.Header(bundle.HeaderNativeCode))
	if err != nil {
		return nil, err
	}

	if d.version == "2" {
		err = d.normalizeModern()
	} else {
		err = d.normalizeLegacy()
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// buildExports folds export clauses into a declaration set keyed by
// package name, preserving first-occurrence order. Duplicates are dropped
// with a warning; reserved-namespace names are fatal.
func buildExports(value string, logger *slog.Logger) ([]bundle.Export, error) {
	clauses, err := header.ParseClauses(value)
	if err != nil {
		return nil, err
	}

	var exports []bundle.Export
	seen := make(map[string]bool)
	for _, clause := range clauses {
		for _, name := range clause.Names {
			if seen[name] {
				if logger != nil {
					logger.Warn("duplicate export", slog.String("package", name))
				}
				continue
			}
			if strings.HasPrefix(name, bundle.ReservedPrefix) {
				return nil, fmt.Errorf("%w: exporting %s packages not allowed: %s",
					bundle.ErrReservedNamespace, bundle.ReservedPrefix+"*", name)
			}
			seen[name] = true
			exports = append(exports, bundle.NewExport(name, clause.Directives, clause.Attributes))
		}
	}
	return exports, nil
}

// buildImports folds import clauses the same way, except that a repeated
// package name is a hard failure.
func buildImports(value string) ([]bundle.Import, error) {
	clauses, err := header.ParseClauses(value)
	if err != nil {
		return nil, err
	}

	var imports []bundle.Import
	seen := make(map[string]bool)
	for _, clause := range clauses {
		for _, name := range clause.Names {
			if seen[name] {
				return nil, fmt.Errorf("%w: import %s", bundle.ErrDuplicateDeclaration, name)
			}
			if strings.HasPrefix(name, bundle.ReservedPrefix) {
				return nil, fmt.Errorf("%w: importing %s packages not allowed: %s",
					bundle.ErrReservedNamespace, bundle.ReservedPrefix+"*", name)
			}
			seen[name] = true
			imp, err := bundle.NewImport(name, clause.Directives, clause.Attributes)
			if err != nil {
				return nil, err
			}
			imports = append(imports, imp)
		}
	}
	return imports, nil
}

// buildDynamicImports maps clauses 1:1 into declarations. No folding:
// order and duplicates are preserved, and wildcard names are legal.
func buildDynamicImports(value string) ([]bundle.Import, error) {
	clauses, err := header.ParseClauses(value)
	if err != nil {
		return nil, err
	}

	var dynamics []bundle.Import
	for _, clause := range clauses {
		for _, name := range clause.Names {
			imp, err := bundle.NewImport(name, clause.Directives, clause.Attributes)
			if err != nil {
				return nil, err
			}
			dynamics = append(dynamics, imp)
		}
	}
	return dynamics, nil
}

// ManifestVersion returns "1" or "2".
func (d *Descriptor) ManifestVersion() string { return d.version }

// Header returns the raw header value, or "" when absent.
func (d *Descriptor) Header(name string) string { return d.headers[name] }

// SymbolicName returns the bundle symbolic name header value.
func (d *Descriptor) SymbolicName() string { return d.Header(bundle.HeaderSymbolicName) }

// Version returns the parsed bundle version.
func (d *Descriptor) Version() bundle.Version { return d.bundleVersion }

// Exports returns the export declarations in manifest order.
func (d *Descriptor) Exports() []bundle.Export { return d.exports }

// Imports returns the import declarations in manifest order, including any
// synthesized by legacy normalization.
func (d *Descriptor) Imports() []bundle.Import { return d.imports }

// DynamicImports returns the dynamic import declarations in manifest order.
func (d *Descriptor) DynamicImports() []bundle.Import { return d.dynamics }

// NativeClauses returns the raw native clause list, sentinel stripped.
func (d *Descriptor) NativeClauses() []bundle.NativeClause { return d.natives }

// NativeOptional reports whether the optional sentinel was present.
func (d *Descriptor) NativeOptional() bool { return d.nativeOptional }

// NativeLibraries runs clause selection and materializes one entry per
// file in the selected clause.
func (d *Descriptor) NativeLibraries(revision string, env bundle.EnvironmentMatcher) ([]bundle.NativeLibrary, error) {
	if len(d.natives) == 0 {
		return nil, nil
	}
	clause, ok, err := bundle.SelectNativeClause(d.natives, d.nativeOptional, env)
	if err != nil || !ok {
		return nil, err
	}
	libs := make([]bundle.NativeLibrary, len(clause.Files))
	for i, file := range clause.Files {
		libs[i] = bundle.NativeLibrary{
			Revision:        revision,
			File:            file,
			OSNames:         clause.OSNames,
			Processors:      clause.Processors,
			OSVersions:      clause.OSVersions,
			Languages:       clause.Languages,
			SelectionFilter: clause.SelectionFilter,
		}
	}
	return libs, nil
}
