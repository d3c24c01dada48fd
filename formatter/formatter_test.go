package formatter_test

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-lang/reeflint/formatter"
	"github.com/reef-lang/reeflint/internal"
	"github.com/reef-lang/reeflint/internal/ast"
	tt "github.com/reef-lang/reeflint/internal/types"
)

func init() {
	color.NoColor = true
}

func analyzed(t *testing.T, src string) ([]tt.Finding, *internal.SourceCode) {
	t.Helper()
	findings, err := internal.NewEngine(nil).RunSource("app.reef", []byte(src))
	require.NoError(t, err)
	return findings, internal.SourceFromBytes([]byte(src))
}

func TestGenerateFormattedFindings(t *testing.T) {
	t.Run("warning with a fix preview", func(t *testing.T) {
		findings, snippet := analyzed(t, "f x = x || True\n")
		require.Len(t, findings, 1)

		out := formatter.GenerateFormattedFindings(findings, snippet)

		assert.Contains(t, out, "warning: redundant-boolean-or\n")
		assert.Contains(t, out, "--> app.reef:1:7")
		assert.Contains(t, out, "1 | f x = x || True\n")
		// `x || True` is nine characters wide
		assert.Contains(t, out, "      ~~~~~~~~~\n")
		assert.Contains(t, out, "= expression is always True\n")
		assert.Contains(t, out, "note: ")
		assert.Contains(t, out, "Fix:\n")
		assert.Contains(t, out, "1 | f x = True\n")
	})

	t.Run("error severity in the header", func(t *testing.T) {
		findings, snippet := analyzed(t, "f x = x || True\n")
		require.Len(t, findings, 1)
		findings[0].Severity = tt.SeverityError

		out := formatter.GenerateFormattedFindings(findings, snippet)
		assert.Contains(t, out, "error: redundant-boolean-or\n")
		assert.NotContains(t, out, "warning:")
	})

	t.Run("finding without edits has no fix section", func(t *testing.T) {
		snippet := internal.SourceFromBytes([]byte("f x = g x\n"))
		f := tt.Finding{
			Rule:     "demo-rule",
			Filename: "app.reef",
			Severity: tt.SeverityWarning,
			Message:  "something to look at",
			PrimaryRange: ast.Range{
				Start: ast.Position{Line: 1, Col: 7},
				End:   ast.Position{Line: 1, Col: 10},
			},
		}
		out := formatter.GenerateFormattedFindings([]tt.Finding{f}, snippet)
		assert.Contains(t, out, "something to look at")
		assert.NotContains(t, out, "Fix:")
	})

	t.Run("common indent is trimmed out of the snippet", func(t *testing.T) {
		src := "f x =\n  if x then y else y\n"
		findings, snippet := analyzed(t, src)
		require.Len(t, findings, 1)

		out := formatter.GenerateFormattedFindings(findings, snippet)
		assert.Contains(t, out, "2 | if x then y else y\n")
		assert.Contains(t, out, "--> app.reef:2:3")
	})

	t.Run("several findings render one after another", func(t *testing.T) {
		findings, snippet := analyzed(t, "f x = x || True\ng x = x && True\n")
		require.Len(t, findings, 2)

		out := formatter.GenerateFormattedFindings(findings, snippet)
		assert.Equal(t, 1, strings.Count(out, "warning: redundant-boolean-or\n"))
		assert.Equal(t, 1, strings.Count(out, "warning: redundant-boolean-and\n"))
		assert.Contains(t, out, "2 | g x = x && True\n")
	})

	t.Run("no findings renders nothing", func(t *testing.T) {
		out := formatter.GenerateFormattedFindings(nil, internal.SourceFromBytes([]byte("f = 1\n")))
		assert.Empty(t, out)
	})
}
