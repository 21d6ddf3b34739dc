package autosheet

// MATCH: match_type 0 finds an exact match; 1 (the default when the
// argument is omitted) finds the largest value <= target assuming
// ascending input; -1 finds the smallest value >= target assuming
// descending input. Behavior on unsorted input in approximate mode is
// caller responsibility — no sortedness check is performed.
func biMATCH(args []Value, _ *FuncContext) Value {
	if len(args) != 2 && len(args) != 3 {
		return newError(ErrValue, "MATCH requires 2 or 3 arguments, got %d", len(args))
	}
	if err, ok := firstError(args); ok {
		return err
	}
	target := args[0]
	seq, ok := asSequence(args[1])
	if !ok {
		return newError(ErrValue, "MATCH: second argument is not a range")
	}

	matchType := 1.0
	if len(args) == 3 {
		f, ok := toNumber(args[2])
		if !ok {
			return newError(ErrValue, "MATCH: match_type must be numeric")
		}
		matchType = f
	}

	switch matchType {
	case 0:
		for i, v := range seq {
			if valuesEqual(v, target) {
				return float64(i + 1)
			}
		}
		return newError(ErrNA, "MATCH: exact match not found")
	case 1:
		pos := -1
		for i, v := range seq {
			if compareValues(v, target) <= 0 {
				pos = i
			}
		}
		if pos < 0 {
			return newError(ErrNA, "MATCH: no value <= target")
		}
		return float64(pos + 1)
	case -1:
		pos := -1
		for i, v := range seq {
			if compareValues(v, target) >= 0 {
				pos = i
			}
		}
		if pos < 0 {
			return newError(ErrNA, "MATCH: no value >= target")
		}
		return float64(pos + 1)
	default:
		return newError(ErrValue, "MATCH: unknown match_type %v", matchType)
	}
}

// INDEX: a 2D array indexes [row-1][col-1]; a 1D array indexes [row-1].
// Out-of-bounds is REF; a non-array first argument is VALUE.
func biINDEX(args []Value, _ *FuncContext) Value {
	if len(args) != 2 && len(args) != 3 {
		return newError(ErrValue, "INDEX requires 2 or 3 arguments, got %d", len(args))
	}
	if err, ok := firstError(args); ok {
		return err
	}
	seq, ok := asSequence(args[0])
	if !ok {
		return newError(ErrValue, "INDEX: first argument is not an array")
	}
	row, ok := toNumber(args[1])
	if !ok || row < 1 {
		return newError(ErrValue, "INDEX: row must be a positive number")
	}
	rowIdx := int(row) - 1

	is2D := len(seq) > 0
	if is2D {
		_, is2D = asSequence(seq[0])
	}

	if is2D {
		if len(args) != 3 {
			return newError(ErrValue, "INDEX: 2D array requires a column argument")
		}
		col, ok := toNumber(args[2])
		if !ok || col < 1 {
			return newError(ErrValue, "INDEX: column must be a positive number")
		}
		colIdx := int(col) - 1
		if rowIdx < 0 || rowIdx >= len(seq) {
			return newError(ErrRef, "INDEX: row %d out of bounds", int(row))
		}
		rowSeq, _ := asSequence(seq[rowIdx])
		if colIdx < 0 || colIdx >= len(rowSeq) {
			return newError(ErrRef, "INDEX: column %d out of bounds", int(col))
		}
		return rowSeq[colIdx]
	}

	if rowIdx < 0 || rowIdx >= len(seq) {
		return newError(ErrRef, "INDEX: row %d out of bounds", int(row))
	}
	return seq[rowIdx]
}

// vlookupRow coerces one table element to a row: a sequence is used as
// is, a scalar is promoted to a single-column row.
func vlookupRow(v Value) []Value {
	if seq, ok := asSequence(v); ok {
		return seq
	}
	return []Value{v}
}

// VLOOKUP: table is a sequence of rows (a 1D table is promoted to
// single-column rows). Sorted mode (the default) picks the last row whose
// first-column value compares <= target; exact mode picks the first row
// with first-column equality. A missing row is NA; a bad column argument
// is VALUE; a column index beyond the matched row's width is REF.
func biVLOOKUP(args []Value, _ *FuncContext) Value {
	if len(args) != 3 && len(args) != 4 {
		return newError(ErrValue, "VLOOKUP requires 3 or 4 arguments, got %d", len(args))
	}
	if err, ok := firstError(args); ok {
		return err
	}
	target := args[0]
	tableSeq, ok := asSequence(args[1])
	if !ok {
		return newError(ErrValue, "VLOOKUP: second argument is not a table")
	}
	colNum, ok := toNumber(args[2])
	if !ok || colNum < 1 {
		return newError(ErrValue, "VLOOKUP: column index must be a positive number")
	}
	colIdx := int(colNum) - 1

	sorted := true
	if len(args) == 4 {
		sorted = truthy(args[3])
	}

	var match []Value
	found := false
	if sorted {
		for _, rowVal := range tableSeq {
			row := vlookupRow(rowVal)
			if len(row) == 0 {
				continue
			}
			if compareValues(row[0], target) <= 0 {
				match = row
				found = true
			}
		}
	} else {
		for _, rowVal := range tableSeq {
			row := vlookupRow(rowVal)
			if len(row) == 0 {
				continue
			}
			if valuesEqual(row[0], target) {
				match = row
				found = true
				break
			}
		}
	}

	if !found {
		return newError(ErrNA, "VLOOKUP: no matching row")
	}
	if colIdx < 0 || colIdx >= len(match) {
		return newError(ErrRef, "VLOOKUP: column %d out of bounds", int(colNum))
	}
	return match[colIdx]
}
