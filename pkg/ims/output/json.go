// Package output serializes extracted documents to JSON files.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhine227/IMS-Automation/pkg/ims/models"
)

// ErrWriteOutput indicates the destination could not be written.
var ErrWriteOutput = errors.New("write output")

// ToJSON serializes a Document. Pretty output uses 4-space indentation.
func ToJSON(doc models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "    ")
	}
	return json.Marshal(doc)
}

// SiblingPath returns the JSON output path next to the source workbook:
// same directory, same base name, ".json" extension.
func SiblingPath(srcPath string) string {
	return strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ".json"
}

// WriteFile writes data to path through a temp file and rename, so a
// failed save never leaves a partial output file behind.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}
