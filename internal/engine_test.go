package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-lang/reeflint/internal"
	tt "github.com/reef-lang/reeflint/internal/types"
)

func TestRunSource(t *testing.T) {
	t.Parallel()

	t.Run("findings carry filename and default severity", func(t *testing.T) {
		t.Parallel()
		engine := internal.NewEngine(nil)
		findings, err := engine.RunSource("app.reef", []byte("f x = x || True\n"))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "app.reef", findings[0].Filename)
		assert.Equal(t, "redundant-boolean-or", findings[0].Rule)
		assert.Equal(t, tt.SeverityWarning, findings[0].Severity)
	})

	t.Run("configured severity is stamped on", func(t *testing.T) {
		t.Parallel()
		engine := internal.NewEngine(map[string]tt.ConfigRule{
			"redundant-boolean-or": {Severity: tt.SeverityError},
		})
		findings, err := engine.RunSource("app.reef", []byte("f x = x || True\n"))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, tt.SeverityError, findings[0].Severity)
	})

	t.Run("severity off drops the rule", func(t *testing.T) {
		t.Parallel()
		engine := internal.NewEngine(map[string]tt.ConfigRule{
			"redundant-boolean-or": {Severity: tt.SeverityOff},
		})
		findings, err := engine.RunSource("app.reef", []byte("f x = x || True\n"))
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("ignored rule leaves others intact", func(t *testing.T) {
		t.Parallel()
		engine := internal.NewEngine(nil)
		engine.IgnoreRule("redundant-boolean-or")
		findings, err := engine.RunSource("app.reef",
			[]byte("f x = x || True\ng x = x && True\n"))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "redundant-boolean-and", findings[0].Rule)
	})

	t.Run("findings are sorted by position", func(t *testing.T) {
		t.Parallel()
		engine := internal.NewEngine(nil)
		findings, err := engine.RunSource("app.reef",
			[]byte("g x = x && True\nf x = x || True\n"))
		require.NoError(t, err)
		require.Len(t, findings, 2)
		assert.Equal(t, 1, findings[0].PrimaryRange.Start.Line)
		assert.Equal(t, 2, findings[1].PrimaryRange.Start.Line)
	})

	t.Run("nolint suppresses on the directive line", func(t *testing.T) {
		t.Parallel()
		engine := internal.NewEngine(nil)
		findings, err := engine.RunSource("app.reef",
			[]byte("f x = x || True -- nolint\ng x = x && True\n"))
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "redundant-boolean-and", findings[0].Rule)
	})

	t.Run("nolint with a rule list is selective", func(t *testing.T) {
		t.Parallel()
		engine := internal.NewEngine(nil)
		findings, err := engine.RunSource("app.reef",
			[]byte("f x = x || True -- nolint: redundant-boolean-and\n"))
		require.NoError(t, err)
		assert.Len(t, findings, 1)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		engine := internal.NewEngine(nil)
		_, err := engine.RunSource("app.reef", []byte("f = [1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.reef")
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("reads the file from disk", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "main.reef")
		require.NoError(t, os.WriteFile(path, []byte("f x = x || True\n"), 0o644))

		findings, err := internal.NewEngine(nil).Run(path)
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, path, findings[0].Filename)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := internal.NewEngine(nil).Run(filepath.Join(t.TempDir(), "absent.reef"))
		require.Error(t, err)
	})
}
