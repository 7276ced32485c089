// Package templates resolves named IMS template workbooks from a template
// directory: one subdirectory per template, holding <name>.xlsx.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is the template root used when no override is set.
const DefaultDir = "IMS_TEMPLATE_COPIES"

// EnvDir is the environment variable overriding the template root.
const EnvDir = "IMS_TEMPLATE_DIR"

// Dir returns the template root directory.
func Dir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	return DefaultDir
}

// List returns the template names available under root: the names of its
// subdirectories, in directory order.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read template directory %s: %w", root, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// WorkbookPath resolves the workbook for a named template and verifies it
// exists on disk.
func WorkbookPath(root, name string) (string, error) {
	path := filepath.Join(root, name, name+".xlsx")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("template workbook not found: %s", path)
	}
	return path, nil
}
