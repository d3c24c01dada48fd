package simplify_test

import "testing"

func TestCons(t *testing.T) {
	t.Parallel()
	runRewriteCases(t, []rewriteCase{
		{
			name: "cons onto an empty list",
			src:  "f a = a :: []",
			rule: "cons-to-literal",
			out:  "f a = [a]",
		},
		{
			name: "cons onto a literal",
			src:  "f a b = a :: [b]",
			rule: "cons-to-literal",
			out:  "f a b = [a, b]",
		},
		{
			name: "cons onto a longer literal",
			src:  "f a = a :: [1, 2]",
			rule: "cons-to-literal",
			out:  "f a = [a, 1, 2]",
		},
	})

	t.Run("cons onto an opaque tail is left alone", func(t *testing.T) {
		t.Parallel()
		assertNoFindings(t, "f a rest = a :: rest")
	})
}

func TestAppend(t *testing.T) {
	t.Parallel()
	runRewriteCases(t, []rewriteCase{
		{
			name: "empty list on the left",
			src:  "f xs = [] ++ xs",
			rule: "append-empty",
			out:  "f xs = xs",
		},
		{
			name: "empty string on the right",
			src:  `f s = s ++ ""`,
			rule: "append-empty",
			out:  "f s = s",
		},
		{
			name: "adjacent string literals merge",
			src:  `f = "ab" ++ "cd"`,
			rule: "literal-append",
			out:  `f = "abcd"`,
		},
		{
			name: "adjacent list literals merge",
			src:  "f = [1, 2] ++ [3]",
			rule: "literal-append",
			out:  "f = [1, 2, 3]",
		},
		{
			name: "singleton prefix becomes cons",
			src:  "f x ys = [x] ++ ys",
			rule: "singleton-append",
			out:  "f x ys = x :: ys",
		},
	})

	t.Run("opaque operands are left alone", func(t *testing.T) {
		t.Parallel()
		assertNoFindings(t, "f xs ys = xs ++ ys")
	})
}

func TestConcat(t *testing.T) {
	t.Parallel()
	runRewriteCases(t, []rewriteCase{
		{
			name: "all literal sublists merge into one",
			src:  "f = List.concat [[1, 2], [3]]",
			rule: "concat-literal-lists",
			out:  "f = [1, 2, 3]",
		},
		{
			name: "empty sublists are dropped first",
			src:  "f xs = List.concat [[], xs]",
			rule: "concat-literal-lists",
			out:  "f xs = List.concat [xs]",
		},
		{
			name: "trailing empty sublist",
			src:  "f xs = List.concat [xs, []]",
			rule: "concat-literal-lists",
			out:  "f xs = List.concat [xs]",
		},
		{
			name: "adjacent literal runs merge in mixed content",
			src:  "f xs = List.concat [[1], [2], xs]",
			rule: "concat-literal-lists",
			out:  "f xs = List.concat [[1, 2], xs]",
		},
		{
			name: "all literal sublists through a right pipe",
			src:  "f = [[1], [2]] |> List.concat",
			rule: "concat-literal-lists",
			out:  "f = [1, 2]",
		},
		{
			name: "all literal sublists through a left pipe",
			src:  "f = List.concat <| [[1, 2], [3]]",
			rule: "concat-literal-lists",
			out:  "f = [1, 2, 3]",
		},
	})

	t.Run("nothing mergeable is left alone", func(t *testing.T) {
		t.Parallel()
		assertNoFindings(t, "f xs ys = List.concat [xs, ys]")
	})
}

func TestConcatMap(t *testing.T) {
	t.Parallel()
	runRewriteCases(t, []rewriteCase{
		{
			name: "identity function makes it concat",
			src:  "f xs = List.concatMap identity xs",
			rule: "concat-map-identity",
			out:  "f xs = List.concat xs",
		},
		{
			name: "always-empty function",
			src:  "f xs = List.concatMap (always []) xs",
			rule: "concat-map-always-empty",
			out:  "f xs = []",
		},
		{
			name: "singleton argument is a direct call",
			src:  "f g x = List.concatMap g [x]",
			rule: "concat-map-singleton",
			out:  "f g x = g x",
		},
	})

	t.Run("identity through a pipe is reported without a fix", func(t *testing.T) {
		t.Parallel()
		// `identity` precedes the callee here, so the positional
		// rewrite cannot apply; the finding must not invent edits
		// that reorder operands.
		for _, f := range analyze(t, "f xs = identity |> List.concatMap") {
			if f.Rule == "concat-map-identity" {
				t.Fatalf("unexpected identity rewrite across a pipe")
			}
		}
	})
}
