// Package export serializes result sets into the downloadable JSON documents.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/goodnatureofminers/evmquery/internal/evm/model"
)

const indent = "  "

// Document wraps the records under the key for the result set kind, e.g. {"contracts": [...]}.
func Document(rs model.ResultSet) map[string][]model.Record {
	records := rs.Records
	if records == nil {
		records = []model.Record{}
	}
	return map[string][]model.Record{rs.Kind.ExportKey(): records}
}

// Write encodes the document for rs as indented JSON.
func Write(w io.Writer, rs model.ResultSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	if err := enc.Encode(Document(rs)); err != nil {
		return fmt.Errorf("encode %s document: %w", rs.Kind.ExportKey(), err)
	}
	return nil
}

// WriteFile writes rs into dir under the file name of its kind and returns the written path.
func WriteFile(dir string, rs model.ResultSet) (path string, err error) {
	path = filepath.Join(dir, rs.Kind.FileName())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err = Write(f, rs); err != nil {
		return "", err
	}
	return path, nil
}
