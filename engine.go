package autosheet

// Engine is the spreadsheet calculation engine: it owns one workbook and
// one function registry, with no process-wide singletons. A host
// constructs one Engine per document.
type Engine struct {
	workbook *workbook
	registry *registry
}

// New constructs an empty engine with the built-in function library
// already registered.
func New() *Engine {
	e := &Engine{
		workbook: newWorkbook(),
		registry: newRegistry(),
	}
	registerBuiltins(e.registry)
	return e
}

// AddSheet creates sheet name if missing; idempotent.
func (e *Engine) AddSheet(name string) string {
	return e.workbook.addSheet(name)
}

// SetCell writes raw content to sheet/address, creating sheet on demand
// (the auto-vivifying convenience path). addressText may carry
// absolute markers and/or a sheet qualifier, which overrides sheet.
func (e *Engine) SetCell(sheet string, addressText string, value CellContent) error {
	resolvedSheet, addr, ok := normalize(addressText, sheet)
	if !ok {
		return newAPIError("invalid cell address: %q", addressText)
	}
	e.workbook.setCell(resolvedSheet, addr, value)
	return nil
}

// GetCell returns the raw stored content at sheet/address, or nil if
// absent.
func (e *Engine) GetCell(sheet string, addressText string) (CellContent, error) {
	resolvedSheet, addr, ok := normalize(addressText, sheet)
	if !ok {
		return nil, newAPIError("invalid cell address: %q", addressText)
	}
	return e.workbook.getCell(resolvedSheet, addr), nil
}

// RegisterFunction adds or replaces a user-defined function under name,
// case-insensitively.
func (e *Engine) RegisterFunction(name string, impl Function) {
	e.registry.register(name, impl)
}

// HasFunction reports whether name is registered, case-insensitively.
func (e *Engine) HasFunction(name string) bool {
	return e.registry.has(name)
}

// FunctionNames returns the original-case names of every registered
// function (built-in and user-registered), in no particular order.
func (e *Engine) FunctionNames() []string {
	return e.registry.names()
}
