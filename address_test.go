package autosheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLettersRoundTrip(t *testing.T) {
	cases := []struct {
		letters string
		index   uint32
	}{
		{"A", 1},
		{"Z", 26},
		{"AA", 27},
		{"AZ", 52},
		{"BA", 53},
		{"ZZ", 702},
		{"AAA", 703},
	}
	for _, c := range cases {
		idx, ok := columnLettersToIndex(c.letters)
		require.True(t, ok, c.letters)
		assert.Equal(t, c.index, idx, c.letters)
		assert.Equal(t, c.letters, indexToColumnLetters(c.index), c.letters)
	}
}

func TestColumnLettersLowerCase(t *testing.T) {
	idx, ok := columnLettersToIndex("az")
	require.True(t, ok)
	assert.Equal(t, uint32(52), idx)
}

func TestParseAddress(t *testing.T) {
	addr, ok := parseAddress("B12")
	require.True(t, ok)
	assert.Equal(t, Address{Col: 2, Row: 12}, addr)
	assert.Equal(t, "B12", addr.CanonicalText())
}

func TestParseAddressAbsoluteMarkers(t *testing.T) {
	for _, text := range []string{"$B12", "B$12", "$B$12"} {
		addr, ok := parseAddress(text)
		require.True(t, ok, text)
		assert.Equal(t, Address{Col: 2, Row: 12}, addr, text)
	}
}

func TestParseAddressRejectsMalformed(t *testing.T) {
	for _, text := range []string{"", "1A", "A", "A0", "A1B2", "ZZ"} {
		_, ok := parseAddress(text)
		assert.False(t, ok, text)
	}
}

func TestNormalizeSheetQualified(t *testing.T) {
	sheet, addr, ok := normalize("Sheet2!C3", "Sheet1")
	require.True(t, ok)
	assert.Equal(t, "Sheet2", sheet)
	assert.Equal(t, Address{Col: 3, Row: 3}, addr)
}

func TestNormalizeDefaultSheet(t *testing.T) {
	sheet, addr, ok := normalize("C3", "Sheet1")
	require.True(t, ok)
	assert.Equal(t, "Sheet1", sheet)
	assert.Equal(t, Address{Col: 3, Row: 3}, addr)
}

func TestParseRangeReordersEndpoints(t *testing.T) {
	sheet, r, err := parseRange("B2:A1", "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet)
	assert.Equal(t, Range{MinCol: 1, MinRow: 1, MaxCol: 2, MaxRow: 2}, r)
}

func TestParseRangeMalformed(t *testing.T) {
	_, _, err := parseRange("A1", "Sheet1")
	assert.Error(t, err)
	_, _, err = parseRange("A1:ZZ", "Sheet1")
	assert.Error(t, err)
}

func TestExpandRangeRowMajor(t *testing.T) {
	r := Range{MinCol: 1, MinRow: 1, MaxCol: 2, MaxRow: 2}
	addrs := expandRange(r)
	want := []Address{
		{Col: 1, Row: 1}, {Col: 2, Row: 1},
		{Col: 1, Row: 2}, {Col: 2, Row: 2},
	}
	assert.Equal(t, want, addrs)
}
