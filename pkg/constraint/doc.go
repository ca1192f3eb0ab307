// Package constraint evaluates free-text input against declarative
// constraints (MIN, MAX, RANGE, REGEX) and derives value-independent hints.
//
// Evaluate and Hint are pure and safe for concurrent use. Bad input never
// surfaces as an error. Unparseable numbers produce an invalid Verdict;
// malformed patterns and unknown constraint kinds produce a valid one.
//
// Messages are produced through an injected message.Formatter and
// message.Table:
//
//	v := constraint.Evaluate("5", constraint.Min{Min: 10}, message.Placeholders, message.DefaultTable())
//	// v.Valid == false, v.Message == "Value must be at least 10"
package constraint
