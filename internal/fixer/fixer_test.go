package fixer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-lang/reeflint/internal"
	"github.com/reef-lang/reeflint/internal/fixer"
)

func TestFixSource(t *testing.T) {
	t.Parallel()

	engine := internal.NewEngine(nil)

	t.Run("clean source needs no passes", func(t *testing.T) {
		t.Parallel()
		f := fixer.New(engine, false)
		src := []byte("f x = g x\n")
		out, applied, err := f.FixSource("clean.reef", src)
		require.NoError(t, err)
		assert.Equal(t, 0, applied)
		assert.Equal(t, src, out)
	})

	t.Run("single fix", func(t *testing.T) {
		t.Parallel()
		f := fixer.New(engine, false)
		out, applied, err := f.FixSource("one.reef", []byte("f x = x || False\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.Equal(t, "f x = x\n", string(out))
	})

	t.Run("fixes cascade across passes", func(t *testing.T) {
		t.Parallel()
		// The first pass drops the identity map; only then is the
		// reverse of an empty list the outermost simplification.
		f := fixer.New(engine, false)
		out, applied, err := f.FixSource("cascade.reef",
			[]byte("f xs = List.map identity (List.reverse [])\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, applied)
		assert.Equal(t, "f xs = ([])\n", string(out))
	})

	t.Run("dry run changes nothing", func(t *testing.T) {
		t.Parallel()
		f := fixer.New(engine, true)
		src := []byte("f x = x || False\n")
		out, applied, err := f.FixSource("dry.reef", src)
		require.NoError(t, err)
		assert.Equal(t, 0, applied)
		assert.Equal(t, src, out)
	})

	t.Run("parse errors surface", func(t *testing.T) {
		t.Parallel()
		f := fixer.New(engine, false)
		_, _, err := f.FixSource("broken.reef", []byte("f = (1\n"))
		require.Error(t, err)
	})
}

func TestFixFile(t *testing.T) {
	t.Parallel()

	engine := internal.NewEngine(nil)

	t.Run("writes the fixed file back", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.reef")
		require.NoError(t, os.WriteFile(path, []byte("f x = x && True\n"), 0o644))

		applied, err := fixer.New(engine, false).Fix(path)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "f x = x\n", string(after))
	})

	t.Run("dry run leaves the file alone", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.reef")
		src := []byte("f x = x && True\n")
		require.NoError(t, os.WriteFile(path, src, 0o644))

		applied, err := fixer.New(engine, true).Fix(path)
		require.NoError(t, err)
		assert.Equal(t, 0, applied)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, src, after)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := fixer.New(engine, false).Fix(filepath.Join(t.TempDir(), "absent.reef"))
		require.Error(t, err)
	})
}
