// Package ims extracts normalized checklist hierarchies from IMS workbooks.
//
// The source templates carry no schema: categories are yellow bold cells,
// tasks are bold cells under a category, descriptions are the plain rows
// in between, and input columns are found by their header text. Extract
// turns that formatting into a Document of sheet/category/task records.
package ims

import "log/slog"

// Options configures extraction behavior.
type Options struct {
	// Logger receives progress and diagnostics. Nil means slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
