package parser

import (
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Rhine227/IMS-Automation/pkg/ims/models"
)

// CategoryFill is the ARGB fill color marking a category heading cell.
const CategoryFill = "FFFFFF00"

// commentsMarker flags the start of a comments block in a sheet.
const commentsMarker = "Comments"

// Kind is the structural role assigned to a row's leading cell.
type Kind int

const (
	// KindBlank skips the row entirely.
	KindBlank Kind = iota
	// KindCategory starts a new category.
	KindCategory
	// KindTask starts a new task under the active category.
	KindTask
	// KindDescription appends to the active task's description.
	KindDescription
	// KindOther contributes nothing.
	KindOther
)

// Context is the parser state a classification decision depends on.
// Threading it explicitly keeps Classify a pure function.
type Context struct {
	// InCategory reports whether a category is active.
	InCategory bool
	// InTask reports whether a task is active.
	InTask bool
	// InComments reports whether a comments marker was seen since the
	// last category started.
	InComments bool
}

// Classify assigns a structural role to a row's leading cell. Precedence:
// blank, category (bold + category fill), task (bold under an active
// category, comments block or not), description (non-bold under an active
// task outside a comments block), other.
func Classify(c Cell, ctx Context) Kind {
	switch {
	case c.Value == "":
		return KindBlank
	case c.Bold && c.FillColor == CategoryFill:
		return KindCategory
	case c.Bold && ctx.InCategory:
		return KindTask
	case !c.Bold && ctx.InTask && !ctx.InComments:
		return KindDescription
	default:
		return KindOther
	}
}

// ParseSheet walks a worksheet's rows and builds its SheetRecord. The
// first row is always treated as a header row and skipped. inputCols is
// the set produced by DetectInputColumns for the same sheet; input values
// are collected exactly once per task, from its anchor row. Malformed
// content never fails: anything unclassifiable contributes nothing.
func ParseSheet(f *excelize.File, sheetName string, inputCols map[string]bool, log *slog.Logger) models.SheetRecord {
	rec := models.SheetRecord{
		Sheet:      sheetName,
		Categories: []models.CategoryRecord{},
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		log.Warn("reading sheet rows failed", "sheet", sheetName, "error", err)
		return rec
	}

	catIdx, taskIdx := -1, -1
	inComments := false

	for i := 1; i < len(rows); i++ {
		rowNum := i + 1
		value := ""
		if len(rows[i]) > 0 {
			value = rows[i][0]
		}
		if value == "" {
			continue
		}

		lead := LoadCell(f, sheetName, 1, rowNum, value)
		ctx := Context{
			InCategory: catIdx >= 0,
			InTask:     taskIdx >= 0,
			InComments: inComments,
		}

		switch Classify(lead, ctx) {
		case KindCategory:
			rec.Categories = append(rec.Categories, models.CategoryRecord{
				Category: lead.Value,
				Tasks:    []models.TaskRecord{},
			})
			catIdx = len(rec.Categories) - 1
			taskIdx = -1
			inComments = false

		case KindTask:
			task := models.TaskRecord{
				Task:   lead.Value,
				Inputs: CollectInputs(rows[i], rowNum, inputCols),
			}
			cat := &rec.Categories[catIdx]
			cat.Tasks = append(cat.Tasks, task)
			taskIdx = len(cat.Tasks) - 1
			log.Debug("task identified",
				"sheet", sheetName, "task", lead.Value, "row", rowNum)

		case KindDescription:
			task := &rec.Categories[catIdx].Tasks[taskIdx]
			fragment := strings.TrimSpace(lead.Value)
			if fragment != "" {
				if task.Description == "" {
					task.Description = fragment
				} else {
					task.Description += " " + fragment
				}
			}
		}

		// The marker check is independent of classification: it runs on
		// every non-blank row and only resets with the next category.
		if lead.Value == commentsMarker {
			inComments = true
		}
	}

	return rec
}
