package autosheet

import (
	"strconv"
	"strings"
)

// Address is a normalized cell address: a 1-based column and row index.
// There is no separate "canonical form" type — CanonicalText derives the
// upper-case "A1" string form on demand.
type Address struct {
	Col uint32
	Row uint32
}

// CanonicalText renders the address in canonical form: upper-case column
// letters followed by the row number, with no absolute markers.
func (a Address) CanonicalText() string {
	return indexToColumnLetters(a.Col) + strconv.FormatUint(uint64(a.Row), 10)
}

// Range is an inclusive rectangle on a single sheet, endpoints already
// reordered so that Min <= Max on each axis.
type Range struct {
	MinCol, MinRow uint32
	MaxCol, MaxRow uint32
}

// isAsciiLetter reports whether r is an ASCII letter, matching the grammar's
// column-letter alphabet (no locale-sensitive classification).
func isAsciiLetter(r byte) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAsciiDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

// columnLettersToIndex converts upper- or lower-case column letters to a
// 1-based column index using base-26 with A=1.
func columnLettersToIndex(letters string) (uint32, bool) {
	if letters == "" {
		return 0, false
	}
	var n uint32
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if !isAsciiLetter(c) {
			return 0, false
		}
		upper := c
		if upper >= 'a' && upper <= 'z' {
			upper -= 'a' - 'A'
		}
		n = n*26 + uint32(upper-'A'+1)
	}
	return n, true
}

// indexToColumnLetters is the inverse of columnLettersToIndex. Note the
// off-by-one: the index is decremented before taking the modulus, since
// the alphabet has no representation for zero.
func indexToColumnLetters(n uint32) string {
	if n == 0 {
		return ""
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}

// parsedAddress is the raw result of parsing a single A1 token, before
// canonicalization: markers are preserved only transiently, then stripped
// by normalize.
type parsedAddress struct {
	absCol  bool
	col     string
	absRow  bool
	row     string
	consumed int
}

// parseCellToken scans a single cell-reference token from the start of s,
// accepting the grammar $?[A-Za-z]+$?[0-9]+. Returns the parsed pieces and
// the number of bytes consumed, or ok=false if s does not begin with a
// valid cell reference.
func parseCellToken(s string) (parsedAddress, bool) {
	i := 0
	absCol := false
	if i < len(s) && s[i] == '$' {
		absCol = true
		i++
	}
	letterStart := i
	for i < len(s) && isAsciiLetter(s[i]) {
		i++
	}
	if i == letterStart {
		return parsedAddress{}, false
	}
	letters := s[letterStart:i]

	absRow := false
	if i < len(s) && s[i] == '$' {
		absRow = true
		i++
	}
	digitStart := i
	for i < len(s) && isAsciiDigit(s[i]) {
		i++
	}
	if i == digitStart {
		return parsedAddress{}, false
	}
	digits := s[digitStart:i]

	return parsedAddress{
		absCol:   absCol,
		col:      letters,
		absRow:   absRow,
		row:      digits,
		consumed: i,
	}, true
}

// parseAddress parses a bare cell-reference string (no sheet qualifier)
// into a canonical Address. Returns ok=false on any malformed input or
// trailing garbage.
func parseAddress(text string) (Address, bool) {
	pa, ok := parseCellToken(text)
	if !ok || pa.consumed != len(text) {
		return Address{}, false
	}
	col, ok := columnLettersToIndex(pa.col)
	if !ok {
		return Address{}, false
	}
	row, err := strconv.ParseUint(pa.row, 10, 32)
	if err != nil || row == 0 {
		return Address{}, false
	}
	return Address{Col: col, Row: uint32(row)}, true
}

// splitSheetQualifier splits "Sheet!A1" (or "A1:B2") into its optional
// sheet name and the remainder. Sheet names consist of letters, digits,
// and underscore; embedded spaces are not supported.
func splitSheetQualifier(text string) (sheet string, rest string, qualified bool) {
	idx := strings.IndexByte(text, '!')
	if idx < 0 {
		return "", text, false
	}
	name := text[:idx]
	if name == "" || !isValidSheetName(name) {
		return "", text, false
	}
	return name, text[idx+1:], true
}

func isValidSheetName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isAsciiLetter(c) && !isAsciiDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

// normalize resolves a possibly sheet-qualified, possibly absolute-marked
// A1 address string against a default sheet, returning the resolved sheet
// name and the canonical (upper-case, marker-stripped) address. Accepts
// "Sheet!A1", "A1", "$A$1", "A$1", "$A1" in any letter case.
func normalize(addressText string, defaultSheet string) (sheet string, addr Address, ok bool) {
	sheetName, rest, qualified := splitSheetQualifier(addressText)
	a, parsedOK := parseAddress(rest)
	if !parsedOK {
		return "", Address{}, false
	}
	if qualified {
		return sheetName, a, true
	}
	return defaultSheet, a, true
}

// parseRange parses "A1:B2" or "Sheet!A1:B2" against a default sheet,
// reordering endpoints so Min <= Max on each axis. A sheet-qualified
// endpoint on one side and an unqualified endpoint on the other takes the
// qualified side's sheet for both.
func parseRange(text string, defaultSheet string) (sheet string, r Range, err error) {
	sheetName, rest, qualified := splitSheetQualifier(text)
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 {
		return "", Range{}, newAPIError("malformed range %q: expected A1:B2", text)
	}

	startSheet := defaultSheet
	if qualified {
		startSheet = sheetName
	}

	endText := parts[1]
	if endSheet, endRest, endQualified := splitSheetQualifier(parts[1]); endQualified {
		if qualified && endSheet != sheetName {
			return "", Range{}, newAPIError("malformed range %q: endpoints on different sheets", text)
		}
		startSheet = endSheet
		endText = endRest
	}

	start, ok1 := parseAddress(parts[0])
	end, ok2 := parseAddress(endText)
	if !ok1 || !ok2 {
		return "", Range{}, newAPIError("malformed range %q: invalid cell reference", text)
	}

	minCol, maxCol := start.Col, end.Col
	if minCol > maxCol {
		minCol, maxCol = maxCol, minCol
	}
	minRow, maxRow := start.Row, end.Row
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
	}

	return startSheet, Range{MinCol: minCol, MinRow: minRow, MaxCol: maxCol, MaxRow: maxRow}, nil
}

// expandRange enumerates every canonical address covered by r, row-major:
// row-min to row-max outer, col-min to col-max inner.
func expandRange(r Range) []Address {
	addrs := make([]Address, 0, int(r.MaxRow-r.MinRow+1)*int(r.MaxCol-r.MinCol+1))
	for row := r.MinRow; row <= r.MaxRow; row++ {
		for col := r.MinCol; col <= r.MaxCol; col++ {
			addrs = append(addrs, Address{Col: col, Row: row})
		}
	}
	return addrs
}

// rangeText renders a Range back to its canonical "A1:B2" form.
func rangeText(r Range) string {
	start := Address{Col: r.MinCol, Row: r.MinRow}
	end := Address{Col: r.MaxCol, Row: r.MaxRow}
	return start.CanonicalText() + ":" + end.CanonicalText()
}
