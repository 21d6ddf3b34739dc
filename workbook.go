package autosheet

// workbook is a mapping from sheet name to a mapping from canonical
// address text to cell content: a flat nested map, with no ID-indirected
// sheet/cell tables.
type workbook struct {
	sheets map[string]map[string]CellContent
}

func newWorkbook() *workbook {
	return &workbook{sheets: make(map[string]map[string]CellContent)}
}

// addSheet creates sheet name if it doesn't already exist; idempotent.
func (w *workbook) addSheet(name string) string {
	if _, ok := w.sheets[name]; !ok {
		w.sheets[name] = make(map[string]CellContent)
	}
	return name
}

func (w *workbook) hasSheet(name string) bool {
	_, ok := w.sheets[name]
	return ok
}

// setCell creates the sheet if missing (the auto-vivifying convenience
// path), canonicalizes the address, and writes the value.
func (w *workbook) setCell(sheet string, addr Address, value CellContent) {
	cells, ok := w.sheets[sheet]
	if !ok {
		cells = make(map[string]CellContent)
		w.sheets[sheet] = cells
	}
	cells[addr.CanonicalText()] = value
}

// getCell returns the raw stored value, or nil if the sheet or cell is
// absent. The store imposes no interpretation on what's returned.
func (w *workbook) getCell(sheet string, addr Address) CellContent {
	cells, ok := w.sheets[sheet]
	if !ok {
		return nil
	}
	return cells[addr.CanonicalText()]
}
