package ims

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Rhine227/IMS-Automation/pkg/ims/models"
	"github.com/Rhine227/IMS-Automation/pkg/ims/parser"
)

// Extract opens the workbook at path and builds its Document: one sheet
// record per worksheet, in workbook order. Each sheet gets a full header
// pre-pass for input columns before the structural row walk. An unreadable
// workbook fails before any record is produced; per-sheet trouble degrades
// to an empty record and is logged, never fatal.
func Extract(path string, opts Options) (models.Document, error) {
	log := opts.logger()

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	doc := make(models.Document, 0, len(sheetList))

	for _, sheetName := range sheetList {
		inputCols, err := parser.DetectInputColumns(f, sheetName)
		if err != nil {
			log.Warn("input column scan failed",
				"error", &SheetError{SheetName: sheetName, Stage: "columns", Err: err})
			inputCols = nil
		}
		log.Info("identified input columns",
			"sheet", sheetName, "columns", sortedColumns(inputCols))

		doc = append(doc, parser.ParseSheet(f, sheetName, inputCols, log))
	}

	return doc, nil
}

func sortedColumns(cols map[string]bool) []string {
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
