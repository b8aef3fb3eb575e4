package classify

import "fmt"

// operationPhrases maps analyzer operation tags to human phrases. Used only
// by the incompatible-types rule.
var operationPhrases = map[string]string{
	"Add":      "addition",
	"Sub":      "subtraction",
	"Mult":     "multiplication",
	"Div":      "division",
	"FloorDiv": "division",
	"Mod":      "the modulo operator",
	"Pow":      "an exponent",
	"USub":     "negation",
	"Eq":       "an equality comparison",
	"NotEq":    "an inequality comparison",
	"Lt":       "a less-than comparison",
	"LtE":      "a less-than comparison",
	"Gt":       "a greater-than comparison",
	"GtE":      "a greater-than comparison",
	"And":      "a logical and",
	"Or":       "a logical or",
	"Not":      "a logical not",
	"In":       "a membership test",
	"NotIn":    "a membership test",
	"Index":    "an index",
}

// typePhrases maps analyzer type tags to human phrases.
var typePhrases = map[string]string{
	"num":      "a number",
	"str":      "a string",
	"list":     "a list",
	"bool":     "a boolean",
	"dict":     "a dictionary",
	"tuple":    "a tuple",
	"set":      "a set",
	"function": "a function",
	"file":     "a file",
	"none":     "nothing (None)",
	"unknown":  "an unknown value",
}

func operationPhrase(op string) string {
	if p, ok := operationPhrases[op]; ok {
		return p
	}
	if op == "" {
		return "an operation"
	}
	return fmt.Sprintf("the operation %q", op)
}

func typePhrase(tag string) string {
	if p, ok := typePhrases[tag]; ok {
		return p
	}
	if tag == "" {
		return "an unknown value"
	}
	return fmt.Sprintf("a value of type %q", tag)
}
