package jpointer

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := newConfig()
		require.Equal(t, "*", c.Wildcard)
		require.Equal(t, "-", c.Append)
		require.Equal(t, "key", c.KeyTransform("key"))
		require.Equal(t, D{}, c.NewMapping())
		require.NotNil(t, c.Logger)
	})

	t.Run("later options win", func(t *testing.T) {
		c := newConfig(WithWildcard("#"), WithWildcard("@"))
		require.Equal(t, "@", c.Wildcard)
	})

	t.Run("nil values fall back to defaults", func(t *testing.T) {
		c := newConfig(WithKeyTransform(nil), WithLogger(nil))
		require.Equal(t, "key", c.KeyTransform("key"))
		require.NotNil(t, c.Logger)
	})
}

func TestWithKeyTransform(t *testing.T) {
	t.Run("interned keys resolve like plain keys", func(t *testing.T) {
		doc, _ := Set(D{}, "/a/b", 1, WithKeyTransform(InternKeys))
		require.Equal(t, 1, Get(doc, "/a/b", WithKeyTransform(InternKeys)))
		require.Equal(t, 1, Get(doc, "/a/b"))
	})

	t.Run("custom transform applies to stored and looked up keys", func(t *testing.T) {
		lower := WithKeyTransform(strings.ToLower)
		doc, _ := Set(D{}, "/Name", "ann", lower)
		require.Equal(t, D{{Key: "name", Value: "ann"}}, doc)
		require.Equal(t, "ann", Get(doc, "/NAME", lower))
		require.True(t, Exists(doc, "/nAmE", lower))
	})

	t.Run("transform does not affect indices or tokens", func(t *testing.T) {
		upper := WithKeyTransform(strings.ToUpper)
		doc := D{{Key: "A", Value: A{D{{Key: "X", Value: 1}}}}}
		require.Equal(t, 1, Get(doc, "/a/0/x", upper))
		require.Equal(t, A{1}, Get(doc, "/a/*/x", upper))
	})
}

func TestWithWildcard(t *testing.T) {
	doc := D{{Key: "a", Value: A{D{{Key: "x", Value: 1}}, D{{Key: "x", Value: 2}}}}}

	t.Run("custom token fans out", func(t *testing.T) {
		require.Equal(t, A{1, 2}, Get(doc, "/a/~/x", WithWildcard("~")))
	})

	t.Run("default token is no longer special", func(t *testing.T) {
		require.Nil(t, Get(doc, "/a/*/x", WithWildcard("all")))
		require.Equal(t, A{1, 2}, Get(doc, "/a/all/x", WithWildcard("all")))
	})
}

func TestWithAppend(t *testing.T) {
	t.Run("custom token appends", func(t *testing.T) {
		doc, ok := Set(D{}, "/a/+", 1, WithAppend("+"))
		require.True(t, ok)
		require.Equal(t, A{1}, Get(doc, "/a"))
	})

	t.Run("default token becomes a key", func(t *testing.T) {
		doc, _ := Set(D{}, "/a/-", 1, WithAppend("+"))
		require.Equal(t, D{{Key: "a", Value: D{{Key: "-", Value: 1}}}}, doc)
	})
}

func TestWithMaps(t *testing.T) {
	doc, ok := Set(D{}, "/a/b", 1, WithMaps())
	require.True(t, ok)
	require.Equal(t, D{{Key: "a", Value: map[string]any{"b": 1}}}, doc)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("skipped write is logged", func(t *testing.T) {
		buf.Reset()
		_, ok := Set(D{{Key: "a", Value: "text"}}, "/a/-", 1, WithLogger(log))
		require.False(t, ok)
		require.Contains(t, buf.String(), "write skipped")
		require.Contains(t, buf.String(), "append target is not a sequence")
	})

	t.Run("malformed index is logged", func(t *testing.T) {
		buf.Reset()
		Get(D{{Key: "a", Value: A{1}}}, "/a/x", WithLogger(log))
		require.Contains(t, buf.String(), "malformed index fragment")
	})

	t.Run("successful write logs nothing", func(t *testing.T) {
		buf.Reset()
		Set(D{}, "/a", 1, WithLogger(log))
		require.Empty(t, buf.String())
	})
}
