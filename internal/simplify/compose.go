package simplify

import "github.com/reef-lang/reeflint/internal/types"

const (
	ruleComposeIdentity    = "composition-with-identity"
	ruleComposeSelfInverse = "self-inverse-composition"
	ruleComposeConstant    = "composition-with-constant"
)

// compositionChain is tried in order until one checker reports: identity
// elimination first, then self-inverse cancellation, then absorption by
// a constant function.
var compositionChain = []compositionChecker{
	checkComposeIdentity,
	checkComposeSelfInverse,
	checkComposeConstant,
}

// checkComposeIdentity drops an identity-shaped side of a composition.
func checkComposeIdentity(cx *Context, comp *CompositionShape) []types.Finding {
	if identityShaped(cx, comp.Left) {
		return []types.Finding{keepOnly(ruleComposeIdentity,
			"composing with identity has no effect",
			comp.FullRange, comp.RightRange)}
	}
	if identityShaped(cx, comp.Right) {
		return []types.Finding{keepOnly(ruleComposeIdentity,
			"composing with identity has no effect",
			comp.FullRange, comp.LeftRange)}
	}
	return nil
}

// selfInverses are the built-ins that cancel when composed with
// themselves.
var selfInverses = map[string]bool{
	"not":    true,
	"negate": true,
}

// checkComposeSelfInverse collapses `not >> not` and `negate >> negate`
// (either direction) to identity.
func checkComposeSelfInverse(cx *Context, comp *CompositionShape) []types.Finding {
	left, lmod, lok := resolvedRef(cx, comp.Left)
	right, rmod, rok := resolvedRef(cx, comp.Right)
	if !lok || !rok || lmod != "Basics" || rmod != "Basics" {
		return nil
	}
	if left.Name != right.Name || !selfInverses[left.Name] {
		return nil
	}
	return []types.Finding{replaceAll(ruleComposeSelfInverse,
		"composing `"+left.Name+"` with itself is the identity function",
		comp.FullRange, "identity")}
}

// checkComposeConstant absorbs a composition whose second stage is a
// constant function: whatever the first stage computes is discarded.
func checkComposeConstant(cx *Context, comp *CompositionShape) []types.Finding {
	second := comp.Second()
	if _, ok := constantWrapper(cx, second); !ok {
		return nil
	}
	return []types.Finding{keepOnly(ruleComposeConstant,
		"composition with a constant function discards the other stage",
		comp.FullRange, second.Range(),
		"the constant function ignores its argument, so the first stage never matters.")}
}
