package recstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// recordsEnvelope matches the export shape of the metrics page, which wraps
// the record array in an object. Bare arrays are also accepted.
type recordsEnvelope struct {
	Metrics []schema.MetricRecord `json:"metrics"`
}

// LoadRecordsFile reads metric records from a JSON file. The file may hold
// either a bare array of records or an object with a "metrics" key. Records
// are returned in file order, which exporters write newest-first.
func LoadRecordsFile(path string) ([]schema.MetricRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file %s: %w", path, err)
	}

	var records []schema.MetricRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var envelope recordsEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse records file %s: %w", path, err)
	}
	if envelope.Metrics == nil {
		return nil, fmt.Errorf("records file %s has no metrics array", path)
	}
	return envelope.Metrics, nil
}
