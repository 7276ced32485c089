// Package parser infers checklist structure from worksheet cell formatting.
package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cell is a read-only view of a single worksheet cell: its resolved value
// plus the presentation attributes the classifier depends on.
type Cell struct {
	// Value is the resolved cell value, empty for blank cells.
	Value string
	// Bold reports whether the cell font is bold.
	Bold bool
	// FillColor is the normalized ARGB fill color (e.g. "FFFFFF00"),
	// empty when the cell has no fill.
	FillColor string
	// Column is the column letter ("A", "B", ...).
	Column string
	// Row is the 1-based row index.
	Row int
}

// Coordinate returns the A1-style coordinate of the cell.
func (c Cell) Coordinate() string {
	return c.Column + strconv.Itoa(c.Row)
}

// LoadCell builds a Cell for the given 1-based position, resolving the
// bold flag and fill color from the cell's style. value is the already
// resolved cell value. Style lookup failures degrade to unstyled.
func LoadCell(f *excelize.File, sheetName string, col, row int, value string) Cell {
	name, _ := excelize.ColumnNumberToName(col)
	cell := Cell{Value: value, Column: name, Row: row}

	styleID, err := f.GetCellStyle(sheetName, cell.Coordinate())
	if err != nil {
		return cell
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return cell
	}
	if style.Font != nil {
		cell.Bold = style.Font.Bold
	}
	if len(style.Fill.Color) > 0 {
		cell.FillColor = normalizeARGB(style.Fill.Color[0])
	}
	return cell
}

// normalizeARGB upper-cases a hex color and pads 6-digit RGB values with
// an opaque alpha channel, so "ffff00", "#FFFF00" and "FFFFFF00" compare
// equal.
func normalizeARGB(s string) string {
	s = strings.ToUpper(strings.TrimPrefix(s, "#"))
	if len(s) == 6 {
		return "FF" + s
	}
	return s
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
