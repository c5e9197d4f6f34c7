package storage

import (
	"encoding/json"
	"io"
)

// ExportData is a saved run flattened into one JSON document.
type ExportData struct {
	RunMetadata
	Population []int `json:"population"`
}

// Export writes the run's metadata and population series to w as indented
// JSON.
func (s *Store) Export(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	population, err := s.LoadPopulation(runID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{RunMetadata: *meta, Population: population})
}
