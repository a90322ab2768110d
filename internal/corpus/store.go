// Package corpus loads the bundled example collections and keeps their
// stored verdicts consistent with the classifier.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phishwise/phishwise/internal/domain"
)

// Store holds the example collections loaded once at startup. The loaded
// slices are treated as immutable for the life of the process; Collection
// hands out copies so callers cannot mutate the shared state. Repairing
// labels is the maintainer's job and happens on the files, never here.
type Store struct {
	collections map[domain.Kind][]domain.ExampleRecord
}

// Open reads every known collection file under dir
func Open(dir string) (*Store, error) {
	s := &Store{collections: make(map[domain.Kind][]domain.ExampleRecord)}
	for _, col := range Collections {
		path := filepath.Join(dir, col.File)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("corpus: read %s: %w", col.File, err)
		}
		var records []domain.ExampleRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("corpus: parse %s: %w", col.File, err)
		}
		s.collections[col.Kind] = records
	}
	return s, nil
}

// Collection returns a copy of the records for one artifact kind
func (s *Store) Collection(kind domain.Kind) ([]domain.ExampleRecord, error) {
	records, ok := s.collections[kind]
	if !ok {
		return nil, fmt.Errorf("corpus: no collection for kind %q", kind)
	}
	out := make([]domain.ExampleRecord, len(records))
	copy(out, records)
	return out, nil
}
