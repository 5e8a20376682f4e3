package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// ExportData is a saved run flattened into a single JSON document:
// the metadata plus the CSV payload as column names and rows.
type ExportData struct {
	RunMetadata
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// ExportJSON writes a saved run as one indented JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	payload := "concentrations.csv"
	if meta.Kind == "titration" {
		payload = "curve.csv"
	}
	f, err := os.Open(filepath.Join(s.baseDir, runID, payload))
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return err
	}

	data := ExportData{RunMetadata: *meta}
	if len(records) > 0 {
		data.Columns = records[0]
		data.Rows = records[1:]
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
