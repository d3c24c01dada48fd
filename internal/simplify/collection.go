package simplify

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/reef-lang/reeflint/internal/types"
)

const (
	ruleEmptyListOperation   = "empty-list-operation"
	ruleEmptyStringOperation = "empty-string-operation"
	ruleEmptinessCheck       = "emptiness-check-on-literal"
	ruleLengthOfLiteral      = "length-of-literal"
	ruleUnnecessaryReverse   = "unnecessary-reverse"
	ruleRepeatZero           = "repeat-count-zero"
	ruleWithDefaultNothing   = "with-default-on-nothing"
	ruleMapIdentity          = "map-identity"
	ruleFilterConstant       = "filter-constant"
	ruleFilterMapNothing     = "filter-map-nothing"
	ruleRedundantBatch       = "redundant-batch"
)

// displayName renders the callee the way it was written, for messages.
func displayName(call *CanonicalCall) string {
	if call.Callee.Qualifier != "" {
		return call.Callee.Qualifier + "." + call.Name
	}
	return call.Name
}

// checkEmptyCollectionArg is the guard the by-name table wraps around
// list-producing entries: when the guarded argument is a literal empty
// list, the whole call is statically the empty list. Entries opt in per
// function; the guard is not universal (see checkIsEmpty, checkLength).
func checkEmptyCollectionArg(cx *Context, call *CanonicalCall, argIndex int) []types.Finding {
	arg := call.FirstArg
	if argIndex == 2 {
		arg = call.SecondArg
	}
	if arg == nil {
		return nil
	}
	lit, ok := listLiteral(arg)
	if !ok || len(lit.Items) != 0 {
		return nil
	}
	return []types.Finding{replaceAll(ruleEmptyListOperation,
		fmt.Sprintf("%s on an empty list yields an empty list", displayName(call)),
		call.FullRange, "[]",
		"the operation cannot produce elements out of nothing; the result is statically `[]`.")}
}

// checkIsEmpty computes List.isEmpty / String.isEmpty over literals.
func checkIsEmpty(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg != nil {
		return nil
	}
	var empty, known bool
	if lit, ok := listLiteral(call.FirstArg); ok {
		empty, known = len(lit.Items) == 0, true
	} else if lit, ok := stringLiteral(call.FirstArg); ok {
		empty, known = lit.Value == "", true
	}
	if !known {
		return nil
	}
	text := "False"
	if empty {
		text = "True"
	}
	return []types.Finding{replaceAll(ruleEmptinessCheck,
		fmt.Sprintf("%s on a literal is statically %s", displayName(call), text),
		call.FullRange, text)}
}

// checkLength computes List.length / String.length over literals.
// String lengths count runes, matching the runtime's character count.
func checkLength(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg != nil {
		return nil
	}
	var n int
	if lit, ok := listLiteral(call.FirstArg); ok {
		n = len(lit.Items)
	} else if lit, ok := stringLiteral(call.FirstArg); ok {
		n = utf8.RuneCountInString(lit.Value)
	} else {
		return nil
	}
	return []types.Finding{replaceAll(ruleLengthOfLiteral,
		fmt.Sprintf("length of a literal is statically %d", n),
		call.FullRange, strconv.Itoa(n))}
}

// checkStringConcat folds String.concat over a literal empty list.
func checkStringConcat(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg != nil {
		return nil
	}
	lit, ok := listLiteral(call.FirstArg)
	if !ok || len(lit.Items) != 0 {
		return nil
	}
	return []types.Finding{replaceAll(ruleEmptyStringOperation,
		"String.concat on an empty list yields the empty string",
		call.FullRange, `""`)}
}

// checkStringJoin folds String.join over a literal empty list.
func checkStringJoin(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg == nil {
		return nil
	}
	lit, ok := listLiteral(call.SecondArg)
	if !ok || len(lit.Items) != 0 {
		return nil
	}
	return []types.Finding{replaceAll(ruleEmptyStringOperation,
		"String.join on an empty list yields the empty string",
		call.FullRange, `""`,
		"with no elements to join, the separator is never used.")}
}

// checkStringReverse folds String.reverse over the empty string.
func checkStringReverse(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg != nil {
		return nil
	}
	lit, ok := stringLiteral(call.FirstArg)
	if !ok || lit.Value != "" {
		return nil
	}
	return []types.Finding{replaceAll(ruleEmptyStringOperation,
		"String.reverse on the empty string yields the empty string",
		call.FullRange, `""`)}
}

// checkReverse drops List.reverse over a singleton literal. The empty
// case is covered by the table's empty-collection guard.
func checkReverse(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg != nil {
		return nil
	}
	lit, ok := listLiteral(call.FirstArg)
	if !ok || len(lit.Items) != 1 {
		return nil
	}
	return []types.Finding{keepOnly(ruleUnnecessaryReverse,
		"reversing a single-element list has no effect",
		call.FullRange, call.FirstArg.Range())}
}

// checkRepeat folds List.repeat with a non-positive literal count.
func checkRepeat(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg == nil {
		return nil
	}
	v, ok := intLiteral(call.FirstArg)
	if !ok || v > 0 {
		return nil
	}
	return []types.Finding{replaceAll(ruleRepeatZero,
		"repeating an element zero times yields an empty list",
		call.FullRange, "[]")}
}

// checkWithDefaultNothing folds Maybe.withDefault over a literal Nothing.
func checkWithDefaultNothing(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg == nil || !isBuiltin(cx, call.SecondArg, "Maybe", "Nothing") {
		return nil
	}
	return []types.Finding{keepOnly(ruleWithDefaultNothing,
		"withDefault on Nothing always yields the default",
		call.FullRange, call.FirstArg.Range())}
}

// checkMapIdentity drops List.map / Maybe.map with an identity-shaped
// function: mapping identity over a structure is the structure itself.
func checkMapIdentity(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg == nil || !identityShaped(cx, call.FirstArg) {
		return nil
	}
	return []types.Finding{keepOnly(ruleMapIdentity,
		fmt.Sprintf("%s with the identity function has no effect", displayName(call)),
		call.FullRange, call.SecondArg.Range())}
}

// checkFilterConstant folds List.filter with a constant predicate:
// keeping everything is the list itself, keeping nothing is empty.
func checkFilterConstant(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg == nil {
		return nil
	}
	k, ok := constantWrapper(cx, call.FirstArg)
	if !ok {
		return nil
	}
	v, ok := boolLiteral(cx, k)
	if !ok {
		return nil
	}
	if v {
		return []types.Finding{keepOnly(ruleFilterConstant,
			"filtering with an always-True predicate keeps every element",
			call.FullRange, call.SecondArg.Range())}
	}
	return []types.Finding{replaceAll(ruleFilterConstant,
		"filtering with an always-False predicate keeps no element",
		call.FullRange, "[]")}
}

// checkFilterMapNothing folds List.filterMap with an always-Nothing
// function.
func checkFilterMapNothing(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg == nil {
		return nil
	}
	k, ok := constantWrapper(cx, call.FirstArg)
	if !ok || !isBuiltin(cx, k, "Maybe", "Nothing") {
		return nil
	}
	return []types.Finding{replaceAll(ruleFilterMapNothing,
		"filterMap with an always-Nothing function keeps no element",
		call.FullRange, "[]")}
}

// checkBatch simplifies the effect-batching family: batching no effects
// is the null effect, batching one effect is that effect.
func checkBatch(cx *Context, call *CanonicalCall) []types.Finding {
	if call.SecondArg != nil {
		return nil
	}
	lit, ok := listLiteral(call.FirstArg)
	if !ok {
		return nil
	}
	switch len(lit.Items) {
	case 0:
		qualifier := call.Callee.Qualifier
		if qualifier == "" {
			qualifier = call.Module
		}
		return []types.Finding{replaceAll(ruleRedundantBatch,
			fmt.Sprintf("batching no effects is %s.none", qualifier),
			call.FullRange, qualifier+".none")}
	case 1:
		return []types.Finding{keepOnly(ruleRedundantBatch,
			"batching a single effect is the effect itself",
			call.FullRange, lit.Items[0].Range())}
	}
	return nil
}
