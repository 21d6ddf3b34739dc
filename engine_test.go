package autosheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCellAutoCreatesSheet(t *testing.T) {
	e := New()
	require.NoError(t, e.SetCell("NewSheet", "A1", 42.0))

	got, err := e.GetCell("NewSheet", "A1")
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

func TestSetCellRejectsInvalidAddress(t *testing.T) {
	e := New()
	err := e.SetCell("Sheet1", "not-an-address", 1.0)
	assert.Error(t, err)
}

func TestSetCellSheetQualifierOverridesArgument(t *testing.T) {
	e := New()
	require.NoError(t, e.SetCell("Sheet1", "Sheet2!A1", 5.0))

	got, err := e.GetCell("Sheet2", "A1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestRegisterFunctionCallableFromFormula(t *testing.T) {
	e := New()
	e.AddSheet("Sheet1")
	e.RegisterFunction("DOUBLE", func(args []Value, _ *FuncContext) Value {
		n, _ := toNumber(args[0])
		return n * 2
	})

	require.NoError(t, e.SetCell("Sheet1", "A1", "=DOUBLE(21)"))
	assert.Equal(t, 42.0, e.EvaluateCell("Sheet1", "A1"))
	assert.True(t, e.HasFunction("double"))
}

func TestFunctionNamesIncludesBuiltins(t *testing.T) {
	e := New()
	names := e.FunctionNames()
	assert.Contains(t, names, "SUM")
	assert.Contains(t, names, "VLOOKUP")
}

func TestGetCellAbsentReturnsNilNoError(t *testing.T) {
	e := New()
	e.AddSheet("Sheet1")
	got, err := e.GetCell("Sheet1", "Z99")
	require.NoError(t, err)
	assert.Nil(t, got)
}
