package autosheet

// evalContext threads the engine, the current default sheet, and the
// call-chain-local visit set through the evaluation of one formula. Each
// evaluateCell call builds its own context for the cell's sheet, while the
// visited map is created once by the outermost caller and passed down, so
// every recursive cellRefNode/rangeRefNode eval shares the same visit set.
type evalContext struct {
	engine  *Engine
	sheet   string
	visited map[string]bool
}

// visitKey forms the "sheet!canonical" key the visit set is keyed by.
func visitKey(sheet string, addr Address) string {
	return sheet + "!" + addr.CanonicalText()
}

// evaluateCell is the evaluator's entry point for an already-normalized
// sheet and address (EvaluateCell does the normalizing). It checks and updates the call-chain-local visit set for
// cycle detection, reads the raw cell, and — if it's a formula — parses
// and evaluates it. The visit key is removed again on every exit path via
// defer (scoped acquisition), so a CYCLE error or a function
// panic never leaves a stale entry behind.
func (e *Engine) evaluateCell(sheet string, addr Address, visited map[string]bool) Value {
	key := visitKey(sheet, addr)
	if visited[key] {
		return newError(ErrCycle, "circular reference at %s", key)
	}
	visited[key] = true
	defer delete(visited, key)

	raw := e.workbook.getCell(sheet, addr)

	formulaText, ok := isFormula(raw)
	if !ok {
		return raw
	}

	tree, err := parseFormula(formulaText)
	if err != nil {
		return newError(ErrValue, "formula parse error: %v", err)
	}

	ctx := &evalContext{engine: e, sheet: sheet, visited: visited}
	return tree.eval(ctx)
}

// EvaluateCell evaluates the given address on sheet, resolving formulas
// recursively and detecting circular references. A sheet-qualified
// address string overrides sheet for this evaluation.
func (e *Engine) EvaluateCell(sheet string, addressText string) Value {
	resolvedSheet, addr, ok := normalize(addressText, sheet)
	if !ok {
		return newError(ErrValue, "invalid cell address: %q", addressText)
	}
	return e.evaluateCell(resolvedSheet, addr, make(map[string]bool))
}
