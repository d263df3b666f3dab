// Package gobundle parses bundle manifest header sets into validated,
// normalized descriptors: the packages a bundle exports, the packages it
// imports statically and dynamically, and the native libraries it
// requires. Descriptors feed the dependency resolver downstream.
package gobundle

import (
	"log/slog"

	"github.com/gobundle/gobundle/bundle"
	"github.com/gobundle/gobundle/internal/envmatch"
	"github.com/gobundle/gobundle/internal/manifest"
)

// LevelTrace is a custom log level more verbose than Debug.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Option configures Parse and NewEnvironment.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger for warnings and debug output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Parse transforms a raw manifest header map into a descriptor. The map
// is copied; callers may reuse theirs. Any validation failure aborts the
// whole parse.
//
// Example:
//
//	headers, err := gobundle.ReadManifestFile("META-INF/MANIFEST.MF")
//	if err != nil { ... }
//	desc, err := gobundle.Parse(headers, gobundle.WithLogger(slog.Default()))
func Parse(headers map[string]string, opts ...Option) (Descriptor, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return manifest.Parse(headers, componentLogger(cfg.logger, "manifest"))
}

// NewEnvironment returns an environment matcher over the given platform
// properties. Missing osname, processor, and language entries default to
// the running platform. Pass nil props for a pure runtime environment.
func NewEnvironment(props map[string]string, opts ...Option) EnvironmentMatcher {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return envmatch.New(props, componentLogger(cfg.logger, "envmatch"))
}

// SelectNativeClause exposes the clause selection policy directly for
// callers holding a descriptor's raw clause list.
func SelectNativeClause(clauses []NativeClause, optional bool, env EnvironmentMatcher) (NativeClause, bool, error) {
	return bundle.SelectNativeClause(clauses, optional, env)
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}
