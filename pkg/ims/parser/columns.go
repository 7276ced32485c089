package parser

import (
	"github.com/xuri/excelize/v2"
)

// inputHeaders are the literal header texts that mark a column as carrying
// inspection input values. Matching is exact and case-sensitive.
var inputHeaders = []string{
	"Date Inspected by who?",
	"OK",
	"OK?",
	"Date Inspected by who",
}

// DetectInputColumns scans the full used extent of a sheet and returns the
// set of column letters containing an input header anywhere in the column.
// A header match flags its column for the whole sheet, however far it sits
// from the rows it covers. Returns an empty set when nothing matches.
func DetectInputColumns(f *excelize.File, sheetName string) (map[string]bool, error) {
	cols, err := f.GetCols(sheetName)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool)
	for colIdx, col := range cols {
		for _, value := range col {
			if isInputHeader(value) {
				name, _ := excelize.ColumnNumberToName(colIdx + 1)
				found[name] = true
				break
			}
		}
	}
	return found, nil
}

func isInputHeader(value string) bool {
	for _, h := range inputHeaders {
		if value == h {
			return true
		}
	}
	return false
}
