package autosheet

import (
	"math"
	"strconv"
	"strings"
)

// flattenArgs performs depth-1 flattening: elements that are sequences
// ([]Value) are spliced in; scalars are kept
// as-is. This matches how the evaluator hands a range to a function as a
// single []Value argument — one level of flattening is all that's ever
// needed since ranges themselves are never nested.
func flattenArgs(args []Value) []Value {
	out := make([]Value, 0, len(args))
	for _, a := range args {
		if seq, ok := a.([]Value); ok {
			out = append(out, seq...)
			continue
		}
		out = append(out, a)
	}
	return out
}

// toNumberArray keeps finite numbers, parses non-empty strings via a
// permissive numeric parser and keeps the result when finite, and drops
// everything else silently — including booleans: logicals are never
// coerced to numbers here.
func toNumberArray(values []Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		switch x := v.(type) {
		case float64:
			if isFinite(x) {
				out = append(out, x)
			}
		case string:
			s := strings.TrimSpace(x)
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
				out = append(out, f)
			}
		}
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// compareValues orders a against b: numbers compare numerically, anything
// else compares by textual form lexicographically. Equal inputs compare
// equal (returns 0).
func compareValues(a, b Value) int {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as, bs := toText(a), toText(b)
	return strings.Compare(as, bs)
}

// valuesEqual is identity on equal numbers/strings/logicals; false
// otherwise.
func valuesEqual(a, b Value) bool {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	default:
		return false
	}
}

// criterionPredicate is the parsed form of a COUNTIF/SUMIF/criterion
// string: a comparison operator plus a target value (numbered if
// possible).
type criterionPredicate struct {
	op     string
	target Value
}

// parseCriterion parses a leading operator from >=, <=, <>, =, >, < (default
// =) and a trailing value, numbering the value if possible.
func parseCriterion(expr Value) criterionPredicate {
	s := toText(expr)
	for _, op := range []string{">=", "<=", "<>"} {
		if strings.HasPrefix(s, op) {
			return criterionPredicate{op: op, target: numberOrText(s[len(op):])}
		}
	}
	for _, op := range []string{"=", ">", "<"} {
		if strings.HasPrefix(s, op) {
			return criterionPredicate{op: op, target: numberOrText(s[len(op):])}
		}
	}
	return criterionPredicate{op: "=", target: numberOrText(s)}
}

func numberOrText(s string) Value {
	trimmed := strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return s
}

// matches applies the predicate's operator to candidate via compareValues
// (for ordering operators) or valuesEqual (for = and <>).
func (p criterionPredicate) matches(candidate Value) bool {
	cand := candidate
	if s, ok := candidate.(string); ok {
		cand = numberOrText(s)
	}
	switch p.op {
	case "=":
		return valuesEqual(cand, p.target)
	case "<>":
		return !valuesEqual(cand, p.target)
	case ">":
		return compareValues(cand, p.target) > 0
	case ">=":
		return compareValues(cand, p.target) >= 0
	case "<":
		return compareValues(cand, p.target) < 0
	case "<=":
		return compareValues(cand, p.target) <= 0
	default:
		return false
	}
}

// firstError scans values for the first in-cell error, if any — used by
// functions that must propagate an error argument rather than silently
// drop it.
func firstError(values []Value) (*EvalError, bool) {
	for _, v := range values {
		if err, ok := asError(v); ok {
			return err, true
		}
	}
	return nil, false
}
