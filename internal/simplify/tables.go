package simplify

import (
	"github.com/reef-lang/reeflint/internal/ast"
	"github.com/reef-lang/reeflint/internal/types"
)

type (
	callChecker        func(cx *Context, call *CanonicalCall) []types.Finding
	operatorChecker    func(cx *Context, op *ast.OperatorApplication) []types.Finding
	compositionChecker func(cx *Context, comp *CompositionShape) []types.Finding
)

// nameKey identifies a built-in by its resolved defining module and
// function name; a reference that fails resolution never reaches this
// table.
type nameKey struct {
	module string
	name   string
}

// callEntry couples a checker with the optional empty-collection guard:
// emptyArg names the 1-based argument that, when a literal empty list,
// short-circuits the call to `[]` before the checker runs. Only entries
// whose result is empty-on-empty opt in; it is not universal (isEmpty,
// length and the String producers handle emptiness themselves).
type callEntry struct {
	check    callChecker
	emptyArg int
}

var callTable = map[nameKey]callEntry{
	{"Basics", "identity"}: {check: checkIdentityCall},
	{"Basics", "always"}:   {check: checkAlwaysCall},
	{"Basics", "not"}:      {check: checkNotCall},
	{"Basics", "negate"}:   {check: checkNegateCall},

	{"List", "map"}:       {check: checkMapIdentity, emptyArg: 2},
	{"List", "filter"}:    {check: checkFilterConstant, emptyArg: 2},
	{"List", "filterMap"}: {check: checkFilterMapNothing, emptyArg: 2},
	{"List", "concat"}:    {check: checkConcat, emptyArg: 1},
	{"List", "concatMap"}: {check: checkConcatMap, emptyArg: 2},
	{"List", "isEmpty"}:   {check: checkIsEmpty},
	{"List", "length"}:    {check: checkLength},
	{"List", "reverse"}:   {check: checkReverse, emptyArg: 1},
	{"List", "repeat"}:    {check: checkRepeat},

	{"String", "isEmpty"}: {check: checkIsEmpty},
	{"String", "length"}:  {check: checkLength},
	{"String", "concat"}:  {check: checkStringConcat},
	{"String", "join"}:    {check: checkStringJoin},
	{"String", "reverse"}: {check: checkStringReverse},

	{"Maybe", "map"}:         {check: checkMapIdentity},
	{"Maybe", "withDefault"}: {check: checkWithDefaultNothing},

	{"Effect", "batch"}: {check: checkBatch},
	{"Sub", "batch"}:    {check: checkBatch},
}

var operatorTable = map[string]operatorChecker{
	"||": checkBooleanOr,
	"&&": checkBooleanAnd,
	"==": checkEquality,
	"/=": checkInequality,
	"+":  checkAddition,
	"-":  checkSubtraction,
	"*":  checkMultiplication,
	"/":  checkDivision,
	"++": checkAppend,
	"::": checkCons,
}
