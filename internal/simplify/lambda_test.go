package simplify_test

import "testing"

func TestIdentityAndAlways(t *testing.T) {
	t.Parallel()
	runRewriteCases(t, []rewriteCase{
		{
			name: "identity of a value",
			src:  "f x = identity x",
			rule: "redundant-identity",
			out:  "f x = x",
		},
		{
			name: "identity of a function application",
			src:  "f g x = identity g x",
			rule: "redundant-identity",
			out:  "f g x = g x",
		},
		{
			name: "fully applied always",
			src:  "f x y = always x y",
			rule: "redundant-always",
			out:  "f x y = x",
		},
		{
			name: "qualified identity",
			src:  "f x = Basics.identity x",
			rule: "redundant-identity",
			out:  "f x = x",
		},
	})

	t.Run("partially applied always is left alone", func(t *testing.T) {
		t.Parallel()
		assertNoFindings(t, "f x = always x")
	})

	t.Run("shadowed identity is left alone", func(t *testing.T) {
		t.Parallel()
		assertNoFindings(t, "f identity x = identity x")
		assertNoFindings(t, "identity = 1\ng x = identity x")
	})
}

func TestLambdaApplication(t *testing.T) {
	t.Parallel()
	runRewriteCases(t, []rewriteCase{
		{
			name: "wildcard lambda drops its argument",
			src:  "f k v = (\\_ -> k) v",
			rule: "ignored-lambda-argument",
			out:  "f k v = k",
		},
		{
			name: "unit lambda applied to unit",
			src:  "f k = (\\() -> k) ()",
			rule: "ignored-lambda-argument",
			out:  "f k = k",
		},
		{
			name: "first of several parameters",
			src:  "f k v = (\\_ y -> y + k) v",
			rule: "ignored-lambda-argument",
			out:  "f k v = (\\y -> y + k)",
		},
		{
			name: "extra arguments reapply to the body",
			src:  "f g v x = (\\_ -> g) v x",
			rule: "ignored-lambda-argument",
			out:  "f g v x = g x",
		},
	})

	t.Run("a lambda that uses its argument is left alone", func(t *testing.T) {
		t.Parallel()
		assertNoFindings(t, "f v = (\\x -> x + 1) v")
	})

	t.Run("unit lambda with an opaque argument is left alone", func(t *testing.T) {
		t.Parallel()
		assertNoFindings(t, "f k u = (\\() -> k) u")
	})
}

func TestPreferInfix(t *testing.T) {
	t.Parallel()
	runRewriteCases(t, []rewriteCase{
		{
			name: "sectioned plus",
			src:  "f a b = (+) a b",
			rule: "prefer-infix-operator",
			out:  "f a b = a + b",
		},
		{
			name: "sectioned append",
			src:  "f a b = (++) a b",
			rule: "prefer-infix-operator",
			out:  "f a b = a ++ b",
		},
	})

	t.Run("partially applied section is left alone", func(t *testing.T) {
		t.Parallel()
		assertNoFindings(t, "f a = (+) a")
	})
}
