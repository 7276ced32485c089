package models

// SheetRecord holds the categories extracted from a single worksheet.
type SheetRecord struct {
	// Sheet is the worksheet name.
	Sheet string `json:"sheet"`
	// Categories in first-seen order. Never nil.
	Categories []CategoryRecord `json:"categories"`
}

// CategoryRecord groups the tasks listed under one category heading.
type CategoryRecord struct {
	// Category is the literal text of the category cell.
	Category string `json:"category"`
	// Tasks in row order. Never nil.
	Tasks []TaskRecord `json:"tasks"`
}

// TaskRecord is a single checklist item with its description text and the
// input values found on its anchor row.
type TaskRecord struct {
	// Task is the literal text of the task cell.
	Task string `json:"task"`
	// Description is the space-joined text of the non-bold rows following
	// the task, empty when there are none.
	Description string `json:"description"`
	// Inputs maps cell coordinate (e.g. "C3") to the value found there,
	// or the "no input" sentinel for empty input cells. Keys are always
	// on the task's anchor row. Never nil.
	Inputs map[string]any `json:"inputs"`
}
