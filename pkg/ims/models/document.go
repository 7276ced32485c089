// Package models defines the record hierarchy extracted from IMS workbooks.
package models

// Document is the full extraction result, one record per worksheet in
// workbook order. It serializes as a top-level JSON array.
type Document []SheetRecord
