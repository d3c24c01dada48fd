package simplify_test

import "testing"

func TestComposition(t *testing.T) {
	t.Parallel()
	runRewriteCases(t, []rewriteCase{
		{
			name: "identity on the right of >>",
			src:  "f g = g >> identity",
			rule: "composition-with-identity",
			out:  "f g = g",
		},
		{
			name: "identity on the left of <<",
			src:  "f g = identity << g",
			rule: "composition-with-identity",
			out:  "f g = g",
		},
		{
			name: "identity lambda in a composition",
			src:  "f g = (\\x -> x) >> g",
			rule: "composition-with-identity",
			out:  "f g = g",
		},
		{
			name: "not composed with itself",
			src:  "f = not >> not",
			rule: "self-inverse-composition",
			out:  "f = identity",
		},
		{
			name: "negate composed with itself",
			src:  "f = negate << negate",
			rule: "self-inverse-composition",
			out:  "f = identity",
		},
		{
			name: "constant second stage absorbs >>",
			src:  "f g k = g >> always k",
			rule: "composition-with-constant",
			out:  "f g k = always k",
		},
		{
			name: "constant second stage absorbs <<",
			src:  "f g k = always k << g",
			rule: "composition-with-constant",
			out:  "f g k = always k",
		},
	})

	t.Run("two opaque stages are left alone", func(t *testing.T) {
		t.Parallel()
		assertNoFindings(t, "f g h = g >> h")
	})

	t.Run("constant first stage is not absorbed", func(t *testing.T) {
		t.Parallel()
		// `always k >> g` still runs g over the constant; nothing
		// can be dropped.
		assertNoFindings(t, "f g k = always k >> g")
	})
}
