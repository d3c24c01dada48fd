package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-lang/reeflint/internal/equiv"
	"github.com/reef-lang/reeflint/internal/fixer"
	"github.com/reef-lang/reeflint/internal/parser"
	"github.com/reef-lang/reeflint/internal/resolve"
	"github.com/reef-lang/reeflint/internal/simplify"
	tt "github.com/reef-lang/reeflint/internal/types"
)

func analyze(t *testing.T, src string) []tt.Finding {
	t.Helper()
	mod, err := parser.ParseModule("test.reef", []byte(src))
	require.NoError(t, err)
	cx := &simplify.Context{
		Resolver: resolve.Build(mod),
		Oracle:   equiv.Structural{},
	}
	return simplify.Analyze(mod, cx)
}

func applyFix(t *testing.T, src string, f tt.Finding) string {
	t.Helper()
	out, err := fixer.Apply([]byte(src), f.Edits)
	require.NoError(t, err)
	return string(out)
}

// rewriteCase checks that analyzing src yields a finding of the given
// rule whose edits rewrite the source to out.
type rewriteCase struct {
	name string
	src  string
	rule string
	out  string
}

func runRewriteCases(t *testing.T, cases []rewriteCase) {
	t.Helper()
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			findings := analyze(t, tc.src)
			require.NotEmpty(t, findings, "expected a finding for %q", tc.src)
			assert.Equal(t, tc.rule, findings[0].Rule)
			assert.Equal(t, tc.out, applyFix(t, tc.src, findings[0]))
		})
	}
}

func assertNoFindings(t *testing.T, src string) {
	t.Helper()
	assert.Empty(t, analyze(t, src), "expected no findings for %q", src)
}
