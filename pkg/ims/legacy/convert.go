// Package legacy converts old binary .xls workbooks to .xlsx so the
// extractor only ever reads one format. Values only: the legacy reader
// exposes no styles, and converted files are re-styled by hand anyway.
package legacy

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ConvertFile converts a single .xls workbook to a sibling .xlsx file with
// the same base name, one sheet per source sheet. Returns the path of the
// file written.
func ConvertFile(xlsPath string) (string, error) {
	wb, err := xls.Open(xlsPath, "utf-8")
	if err != nil {
		return "", fmt.Errorf("open %s: %w", xlsPath, err)
	}

	out := excelize.NewFile()
	defer out.Close()

	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		if i == 0 {
			if err := out.SetSheetName("Sheet1", sheet.Name); err != nil {
				return "", fmt.Errorf("rename sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := out.NewSheet(sheet.Name); err != nil {
				return "", fmt.Errorf("create sheet %q: %w", sheet.Name, err)
			}
		}

		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			for c := row.FirstCol(); c <= row.LastCol(); c++ {
				value := row.Col(c)
				if value == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					continue
				}
				if err := out.SetCellValue(sheet.Name, cell, value); err != nil {
					return "", fmt.Errorf("set %s!%s: %w", sheet.Name, cell, err)
				}
			}
		}
	}

	xlsxPath := strings.TrimSuffix(xlsPath, filepath.Ext(xlsPath)) + ".xlsx"
	if err := out.SaveAs(xlsxPath); err != nil {
		return "", fmt.Errorf("save %s: %w", xlsxPath, err)
	}
	return xlsxPath, nil
}

// ConvertDir walks root recursively and converts every .xls file found,
// returning the paths of the .xlsx files written. Stops on the first
// conversion failure.
func ConvertDir(root string) ([]string, error) {
	var converted []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".xls" {
			return nil
		}
		xlsxPath, err := ConvertFile(path)
		if err != nil {
			return err
		}
		converted = append(converted, xlsxPath)
		return nil
	})
	if err != nil {
		return converted, err
	}
	return converted, nil
}
