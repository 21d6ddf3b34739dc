package autosheet

import "strings"

// CONCAT: flatten → string-coerce (absent ⇒ empty) → concatenation.
func biCONCAT(args []Value, _ *FuncContext) Value {
	if err, ok := firstError(args); ok {
		return err
	}
	var sb strings.Builder
	for _, v := range flattenArgs(args) {
		sb.WriteString(toText(v))
	}
	return sb.String()
}

// LEN: length of the string form of the single argument.
func biLEN(args []Value, _ *FuncContext) Value {
	if len(args) != 1 {
		return newError(ErrValue, "LEN requires 1 argument, got %d", len(args))
	}
	if err, ok := asError(args[0]); ok {
		return err
	}
	return float64(len([]rune(toText(args[0]))))
}

// UPPER: upper-cases the string form of the single argument.
func biUPPER(args []Value, _ *FuncContext) Value {
	if len(args) != 1 {
		return newError(ErrValue, "UPPER requires 1 argument, got %d", len(args))
	}
	if err, ok := asError(args[0]); ok {
		return err
	}
	return strings.ToUpper(toText(args[0]))
}

// LOWER: lower-cases the string form of the single argument.
func biLOWER(args []Value, _ *FuncContext) Value {
	if len(args) != 1 {
		return newError(ErrValue, "LOWER requires 1 argument, got %d", len(args))
	}
	if err, ok := asError(args[0]); ok {
		return err
	}
	return strings.ToLower(toText(args[0]))
}
