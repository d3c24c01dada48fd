package simplify

// RuleInfo describes one rule for the CLI catalog and for severity
// configuration lookups; Name is the stable identifier findings carry.
type RuleInfo struct {
	Name string
	Doc  string
}

// Rules returns the full catalog in display order, grouped the way the
// checkers are: booleans, conditionals, arithmetic, lambdas and
// references, collections, list operators, composition.
func Rules() []RuleInfo {
	return []RuleInfo{
		{ruleRedundantOr, "a || True and a || False collapse to a constant or the other operand"},
		{ruleRedundantAnd, "a && True and a && False collapse to the other operand or a constant"},
		{ruleBooleanComparison, "comparing against a boolean literal is the operand itself or its negation"},
		{ruleIdenticalComparison, "comparing an expression with itself is always True (or False for /=)"},
		{ruleNegatedComparison, "not a == not b compares the operands directly"},
		{ruleBooleanNot, "not of a literal, a double not, or not over a comparison simplifies away"},

		{ruleConstantCondition, "an if with a literal condition always takes the same branch"},
		{ruleBooleanBranches, "an if returning True/False is the condition itself (or its negation)"},
		{ruleIdenticalBranches, "an if whose branches are equivalent is just either branch"},

		{ruleArithmeticIdentity, "adding or subtracting 0, multiplying or dividing by 1, changes nothing"},
		{ruleMultiplicationByZero, "multiplying by 0 is 0"},
		{ruleDoubleNegation, "negating twice restores the original value"},

		{ruleRedundantIdentity, "applying identity returns its argument unchanged"},
		{ruleRedundantAlways, "always k applied to two arguments is just k"},
		{ruleIgnoredLambdaArg, "a lambda that ignores its argument applied to a value drops both"},
		{rulePreferInfix, "a sectioned operator applied to both operands reads better infix"},

		{ruleEmptyListOperation, "list functions over a literal empty list produce []"},
		{ruleEmptyStringOperation, "string functions over empty input produce the empty string"},
		{ruleEmptinessCheck, "isEmpty of a literal is a known boolean"},
		{ruleLengthOfLiteral, "length of a literal is a known number"},
		{ruleUnnecessaryReverse, "reversing a singleton or empty collection changes nothing"},
		{ruleRepeatZero, "repeating zero or fewer times produces []"},
		{ruleWithDefaultNothing, "withDefault d Nothing is d"},
		{ruleMapIdentity, "mapping identity over a collection returns it unchanged"},
		{ruleFilterConstant, "filtering with a constant predicate keeps everything or nothing"},
		{ruleFilterMapNothing, "filterMap with always Nothing produces []"},
		{ruleRedundantBatch, "batching zero or one effect does not need batch"},

		{ruleConsToLiteral, "consing onto a literal list folds into the literal"},
		{ruleLiteralAppend, "appending two literals merges them into one"},
		{ruleAppendEmpty, "appending an empty collection changes nothing"},
		{ruleSingletonAppend, "[x] ++ rest is x :: rest"},
		{ruleConcatLiterals, "concat over literal lists merges or drops the empties"},
		{ruleConcatMapIdentity, "concatMap identity is concat"},
		{ruleConcatMapEmpty, "concatMap with always [] produces []"},
		{ruleConcatMapSingle, "concatMap f over a singleton is f applied to the element"},

		{ruleComposeIdentity, "composing with identity is the other function"},
		{ruleComposeSelfInverse, "composing a self-inverse with itself is identity"},
		{ruleComposeConstant, "composition ending in a constant function is that constant function"},
	}
}
