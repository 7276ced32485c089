package parser

import (
	"io"
	"log/slog"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestClassify(t *testing.T) {
	bold := func(value, fill string) Cell {
		return Cell{Value: value, Bold: true, FillColor: fill, Column: "A", Row: 2}
	}
	plain := func(value string) Cell {
		return Cell{Value: value, Column: "A", Row: 2}
	}

	tests := []struct {
		name     string
		cell     Cell
		ctx      Context
		expected Kind
	}{
		{"blank cell", plain(""), Context{}, KindBlank},
		{"blank beats everything", Cell{Bold: true, FillColor: CategoryFill}, Context{InCategory: true}, KindBlank},
		{"category", bold("Safety Checks", CategoryFill), Context{}, KindCategory},
		{"category resets inside comments", bold("Electrical", CategoryFill), Context{InCategory: true, InComments: true}, KindCategory},
		{"bold with wrong fill is not a category", bold("Safety Checks", "FF00FF00"), Context{}, KindOther},
		{"bold without category is not a task", bold("Orphan", ""), Context{}, KindOther},
		{"task under category", bold("Check fire extinguisher", ""), Context{InCategory: true}, KindTask},
		{"bold in comments block is still a task", bold("Valve handle loose", ""), Context{InCategory: true, InComments: true}, KindTask},
		{"description under task", plain("Verify pressure gauge reads green."), Context{InCategory: true, InTask: true}, KindDescription},
		{"plain without task", plain("stray text"), Context{InCategory: true}, KindOther},
		{"plain in comments block", plain("not recorded"), Context{InCategory: true, InTask: true, InComments: true}, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Classify(tt.cell, tt.ctx); result != tt.expected {
				t.Errorf("Classify(%+v, %+v) = %v, expected %v", tt.cell, tt.ctx, result, tt.expected)
			}
		})
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// checklistSheet builds the canonical test worksheet:
//
//	row 1: header row ("Task", "OK" in C, "Date Inspected by who?" in D)
//	row 2: category "Safety Checks" (bold, yellow)
//	row 3: task "Check fire extinguisher", C3=Yes, D3=5
//	row 4: description row
//	row 5: blank leading cell (C5 holds a stray value)
//	row 6: "Comments" marker (plain)
//	row 7: bold "Valve handle loose" (comment item), C7/D7 empty
//	row 8: plain text inside the comments block
//	row 9: category "Electrical" (bold, yellow)
//	row 10: task "Check breakers", C10=2025-01-05
func checklistSheet(t *testing.T, f *excelize.File, sheetName string) {
	t.Helper()

	categoryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFFF00"}, Pattern: 1},
	})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}

	set := func(cell, value string) {
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			t.Fatalf("SetCellValue(%s) failed: %v", cell, err)
		}
	}
	style := func(cell string, styleID int) {
		if err := f.SetCellStyle(sheetName, cell, cell, styleID); err != nil {
			t.Fatalf("SetCellStyle(%s) failed: %v", cell, err)
		}
	}

	set("A1", "Task")
	set("C1", "OK")
	set("D1", "Date Inspected by who?")

	set("A2", "Safety Checks")
	style("A2", categoryStyle)

	set("A3", "Check fire extinguisher")
	style("A3", boldStyle)
	set("C3", "Yes")
	f.SetCellValue(sheetName, "D3", 5)

	set("A4", "Verify pressure gauge reads green.")
	set("C5", "stray")

	set("A6", "Comments")

	set("A7", "Valve handle loose")
	style("A7", boldStyle)

	set("A8", "not recorded")

	set("A9", "Electrical")
	style("A9", categoryStyle)

	set("A10", "Check breakers")
	style("A10", boldStyle)
	set("C10", "2025-01-05")
}

func TestParseSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	checklistSheet(t, f, sheetName)

	inputCols, err := DetectInputColumns(f, sheetName)
	if err != nil {
		t.Fatalf("DetectInputColumns failed: %v", err)
	}

	rec := ParseSheet(f, sheetName, inputCols, discardLogger())
	if rec.Sheet != sheetName {
		t.Errorf("Sheet = %q, expected %q", rec.Sheet, sheetName)
	}
	if len(rec.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(rec.Categories))
	}

	safety := rec.Categories[0]
	if safety.Category != "Safety Checks" {
		t.Errorf("Category = %q, expected Safety Checks", safety.Category)
	}
	if len(safety.Tasks) != 2 {
		t.Fatalf("expected 2 tasks in Safety Checks, got %d", len(safety.Tasks))
	}

	fire := safety.Tasks[0]
	if fire.Task != "Check fire extinguisher" {
		t.Errorf("Task = %q, expected Check fire extinguisher", fire.Task)
	}
	// The plain "Comments" row joins the description before it arms the
	// comments flag; the blank row 5 contributes nothing.
	if fire.Description != "Verify pressure gauge reads green. Comments" {
		t.Errorf("Description = %q", fire.Description)
	}
	if fire.Inputs["C3"] != "Yes" || fire.Inputs["D3"] != int64(5) {
		t.Errorf("Inputs = %v, expected C3=Yes D3=5", fire.Inputs)
	}
	if len(fire.Inputs) != 2 {
		t.Errorf("expected 2 inputs, got %v", fire.Inputs)
	}

	// Bold row inside the comments block still appends a task; its empty
	// input cells carry the sentinel.
	valve := safety.Tasks[1]
	if valve.Task != "Valve handle loose" {
		t.Errorf("Task = %q, expected Valve handle loose", valve.Task)
	}
	if valve.Description != "" {
		t.Errorf("Description = %q, expected empty inside comments block", valve.Description)
	}
	if valve.Inputs["C7"] != NoInput || valve.Inputs["D7"] != NoInput {
		t.Errorf("Inputs = %v, expected sentinels", valve.Inputs)
	}

	electrical := rec.Categories[1]
	if electrical.Category != "Electrical" {
		t.Errorf("Category = %q, expected Electrical", electrical.Category)
	}
	if len(electrical.Tasks) != 1 {
		t.Fatalf("expected 1 task in Electrical, got %d", len(electrical.Tasks))
	}
	breakers := electrical.Tasks[0]
	if breakers.Inputs["C10"] != "2025-01-05" || breakers.Inputs["D10"] != NoInput {
		t.Errorf("Inputs = %v", breakers.Inputs)
	}
}

func TestParseSheetSkipsHeaderRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	categoryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFFF00"}, Pattern: 1},
	})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}

	// A category-looking cell on row 1 must never produce a category, so
	// the bold row 2 has no category to attach to.
	f.SetCellValue(sheetName, "A1", "Looks Like A Category")
	f.SetCellStyle(sheetName, "A1", "A1", categoryStyle)
	f.SetCellValue(sheetName, "A2", "Orphan task")
	f.SetCellStyle(sheetName, "A2", "A2", boldStyle)

	rec := ParseSheet(f, sheetName, nil, discardLogger())
	if len(rec.Categories) != 0 {
		t.Errorf("expected no categories, got %v", rec.Categories)
	}
}

func TestParseSheetEmptyCategory(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	categoryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFFF00"}, Pattern: 1},
	})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}

	f.SetCellValue(sheetName, "A2", "Empty Category")
	f.SetCellStyle(sheetName, "A2", "A2", categoryStyle)
	f.SetCellValue(sheetName, "A3", "Next Category")
	f.SetCellStyle(sheetName, "A3", "A3", categoryStyle)

	rec := ParseSheet(f, sheetName, nil, discardLogger())
	if len(rec.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(rec.Categories))
	}
	if len(rec.Categories[0].Tasks) != 0 {
		t.Errorf("expected zero tasks in first category, got %v", rec.Categories[0].Tasks)
	}
}
