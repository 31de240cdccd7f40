package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calumari/jpointer"
)

func TestParseValue(t *testing.T) {
	cfg := &MainConfig{}

	t.Run("json values are decoded", func(t *testing.T) {
		require.Equal(t, float64(3), cfg.parseValue("3"))
		require.Equal(t, true, cfg.parseValue("true"))
		require.Nil(t, cfg.parseValue("null"))
		require.Equal(t, jpointer.D{{Key: "a", Value: float64(1)}}, cfg.parseValue(`{"a":1}`))
	})

	t.Run("bare words are strings", func(t *testing.T) {
		require.Equal(t, "bob", cfg.parseValue("bob"))
	})
}

func TestExistsText(t *testing.T) {
	require.Equal(t, "true", existsText(true, false))
	require.Equal(t, "false", existsText(false, false))
	require.Contains(t, existsText(true, true), "true")
}

func TestReadWriteDoc(t *testing.T) {
	dir := t.TempDir()

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(dir, "doc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"b":1,"a":[true]}`), 0o644))

		cfg := &MainConfig{}
		doc, err := cfg.readDoc(nil, []string{path})
		require.NoError(t, err)
		require.Equal(t, jpointer.A{true}, jpointer.Get(doc, "/a"))

		var buf bytes.Buffer
		require.NoError(t, cfg.writeDoc(&buf, doc))
		require.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    true\n  ]\n}\n", buf.String())
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "doc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: app\n"), 0o644))

		cfg := &MainConfig{Y: true}
		doc, err := cfg.readDoc(nil, []string{path})
		require.NoError(t, err)
		require.Equal(t, "app", jpointer.Get(doc, "/name"))
	})

	t.Run("too many files is a usage error", func(t *testing.T) {
		cfg := &MainConfig{}
		_, err := cfg.readDoc(nil, []string{"a", "b"})
		require.Error(t, err)
	})

	t.Run("missing file returns error", func(t *testing.T) {
		cfg := &MainConfig{}
		_, err := cfg.readDoc(nil, []string{filepath.Join(dir, "missing.json")})
		require.Error(t, err)
	})
}

func TestPointerOpts(t *testing.T) {
	var logs bytes.Buffer
	cfg := &MainConfig{Wildcard: "all", Append: "+", Maps: true, Verbose: true, Err: &logs}
	opts := cfg.pointerOpts()

	doc, ok := jpointer.Set(jpointer.D{}, "/a/b/+", 1, opts...)
	require.True(t, ok)
	require.Equal(t, jpointer.D{{Key: "a", Value: map[string]any{"b": jpointer.A{1}}}}, doc)
	require.Equal(t, jpointer.A{1}, jpointer.Get(doc, "/a/b/all", opts...))

	_, ok = jpointer.Set(doc, "/a/+", 2, opts...)
	require.False(t, ok)
	require.Contains(t, logs.String(), "write skipped")
}
