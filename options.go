package jpointer

import (
	"log/slog"
	"unique"
)

const (
	// DefaultWildcard is the fragment matching every element of a sequence.
	DefaultWildcard = "*"
	// DefaultAppend is the final fragment that pushes onto a sequence.
	DefaultAppend = "-"
)

// KeyTransform maps an unescaped fragment to the key used against mappings.
type KeyTransform func(fragment string) string

var (
	// IdentityKeys compares and stores mapping keys as given.
	IdentityKeys KeyTransform = func(s string) string { return s }

	// InternKeys interns mapping keys so that repeated keys across documents
	// share a single canonical string. The interned key equals its input, so
	// lookups behave exactly as with IdentityKeys; only memory is shared.
	InternKeys KeyTransform = func(s string) string { return unique.Make(s).Value() }
)

// Config holds the resolved settings of a Pointer.
type Config struct {
	KeyTransform KeyTransform
	Wildcard     string
	Append       string

	// NewMapping constructs the empty mapping inserted when a write creates a
	// missing intermediate node.
	NewMapping func() any

	Logger *slog.Logger
}

// Option configures a Pointer. Options are applied in order, later options
// win.
type Option func(c *Config)

// WithKeyTransform sets the transform applied to key fragments.
func WithKeyTransform(t KeyTransform) Option {
	return func(c *Config) { c.KeyTransform = t }
}

// WithWildcard sets the wildcard token.
func WithWildcard(token string) Option {
	return func(c *Config) { c.Wildcard = token }
}

// WithAppend sets the append token.
func WithAppend(token string) Option {
	return func(c *Config) { c.Append = token }
}

// WithMaps makes writes create map[string]any for missing intermediate
// mappings instead of D.
func WithMaps() Option {
	return func(c *Config) {
		c.NewMapping = func() any { return map[string]any{} }
	}
}

// WithLogger sets the logger used to report skipped writes. If nil, nothing
// is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func newConfig(opts ...Option) Config {
	c := Config{
		KeyTransform: IdentityKeys,
		Wildcard:     DefaultWildcard,
		Append:       DefaultAppend,
		NewMapping:   func() any { return D{} },
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.KeyTransform == nil {
		c.KeyTransform = IdentityKeys
	}
	if c.NewMapping == nil {
		c.NewMapping = func() any { return D{} }
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
