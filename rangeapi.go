package autosheet

// RangeMode selects which of a cell descriptor's Raw/Computed fields
// GetRange populates.
type RangeMode int

const (
	ModeRaw RangeMode = iota
	ModeComputed
	ModeBoth
)

// CellDescriptor is one cell's entry in a range result matrix.
type CellDescriptor struct {
	Address  string
	Raw      CellContent // populated when mode is ModeRaw or ModeBoth
	HasRaw   bool
	Computed Value // populated when mode is ModeComputed or ModeBoth
	HasComputed bool
}

// RangeResult is the structured return value of GetRange/SetRange.
type RangeResult struct {
	Sheet string
	Range string
	Rows  [][]CellDescriptor
}

// GetRange reads a rectangular region, returning a row-major matrix of
// cell descriptors. mode selects which of Raw/Computed are populated. A
// missing sheet is rejected here, unlike SetCell's convenience
// auto-creation — this asymmetry is intentional, not harmonized.
func (e *Engine) GetRange(sheet string, rangeText string, mode RangeMode) (RangeResult, error) {
	resolvedSheet, r, err := parseRange(rangeText, sheet)
	if err != nil {
		return RangeResult{}, err
	}
	if !e.workbook.hasSheet(resolvedSheet) {
		return RangeResult{}, newAPIError("unknown sheet: %q", resolvedSheet)
	}

	return e.buildRangeResult(resolvedSheet, r, mode), nil
}

// SetRange validates that values is a non-empty rectangular matrix whose
// shape equals range's dimensions, writes each cell through the
// cell-level write operation, then returns the same record shape as
// GetRange in ModeBoth.
func (e *Engine) SetRange(sheet string, rangeText string, values [][]CellContent) (RangeResult, error) {
	resolvedSheet, r, err := parseRange(rangeText, sheet)
	if err != nil {
		return RangeResult{}, err
	}
	if !e.workbook.hasSheet(resolvedSheet) {
		return RangeResult{}, newAPIError("unknown sheet: %q", resolvedSheet)
	}

	wantRows := int(r.MaxRow - r.MinRow + 1)
	wantCols := int(r.MaxCol - r.MinCol + 1)
	if len(values) != wantRows {
		return RangeResult{}, newAPIError("shape mismatch: range %s has %d rows, matrix has %d", rangeText, wantRows, len(values))
	}
	for i, row := range values {
		if len(row) != wantCols {
			return RangeResult{}, newAPIError("shape mismatch: range %s has %d columns, matrix row %d has %d", rangeText, wantCols, i, len(row))
		}
	}
	if wantRows == 0 || wantCols == 0 {
		return RangeResult{}, newAPIError("shape mismatch: range %s is empty", rangeText)
	}

	for rowIdx := uint32(0); rowIdx < uint32(wantRows); rowIdx++ {
		for colIdx := uint32(0); colIdx < uint32(wantCols); colIdx++ {
			addr := Address{Col: r.MinCol + colIdx, Row: r.MinRow + rowIdx}
			e.workbook.setCell(resolvedSheet, addr, values[rowIdx][colIdx])
		}
	}

	return e.buildRangeResult(resolvedSheet, r, ModeBoth), nil
}

func (e *Engine) buildRangeResult(sheet string, r Range, mode RangeMode) RangeResult {
	rows := make([][]CellDescriptor, 0, r.MaxRow-r.MinRow+1)
	for row := r.MinRow; row <= r.MaxRow; row++ {
		cols := make([]CellDescriptor, 0, r.MaxCol-r.MinCol+1)
		for col := r.MinCol; col <= r.MaxCol; col++ {
			addr := Address{Col: col, Row: row}
			desc := CellDescriptor{Address: addr.CanonicalText()}
			if mode == ModeRaw || mode == ModeBoth {
				desc.Raw = e.workbook.getCell(sheet, addr)
				desc.HasRaw = true
			}
			if mode == ModeComputed || mode == ModeBoth {
				desc.Computed = e.evaluateCell(sheet, addr, make(map[string]bool))
				desc.HasComputed = true
			}
			cols = append(cols, desc)
		}
		rows = append(rows, cols)
	}
	return RangeResult{Sheet: sheet, Range: rangeText(r), Rows: rows}
}
