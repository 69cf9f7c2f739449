package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/importer"
)

// timeLayout is used for every stored timestamp.
const timeLayout = time.RFC3339

// encodeSnapshot stores a project in its file representation so stored
// snapshots can be exported and re-imported unchanged.
func encodeSnapshot(p *domain.Project) (string, error) {
	data, err := json.Marshal(importer.FromProject(p))
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return string(data), nil
}

func decodeSnapshot(data string) (*domain.Project, error) {
	schema, err := importer.Parse([]byte(data), importer.EncodingJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	p, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return p, nil
}

// parseTime returns the zero time for values that fail to parse.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
