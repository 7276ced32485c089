package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// NoInput is the sentinel recorded for an input cell that is present but
// empty, distinguishing "checked, no value" from "never inspected".
const NoInput = "no input"

// CollectInputs extracts the input values co-located on a task's anchor
// row. row holds the resolved values of that row, rowNum its 1-based
// index, and inputCols the column letters flagged by DetectInputColumns.
// The leading column never contributes (it holds the task text itself).
// Empty or missing cells in an input column yield the NoInput sentinel;
// everything else is coerced to int64/float64/string.
func CollectInputs(row []string, rowNum int, inputCols map[string]bool) map[string]any {
	inputs := make(map[string]any)
	for col := range inputCols {
		colNum, err := excelize.ColumnNameToNumber(col)
		if err != nil || colNum == 1 {
			continue
		}
		value := ""
		if colNum-1 < len(row) {
			value = row[colNum-1]
		}
		coord := col + strconv.Itoa(rowNum)
		if value == "" {
			inputs[coord] = NoInput
		} else {
			inputs[coord] = parseValue(value)
		}
	}
	return inputs
}
