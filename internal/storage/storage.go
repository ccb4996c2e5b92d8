package storage

import (
	"errors"
	"fmt"

	"apismoke/internal/config"
	"apismoke/internal/domain"
)

// ErrNoRuns is returned by Load when nothing has been saved yet
var ErrNoRuns = errors.New("no stored runs")

// Storage persists and loads smoke run reports
type Storage interface {
	Save(report *domain.RunReport) error
	Load() (*domain.RunReport, error)
}

// JSONStorage stores the last run in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// MultiStorage saves to every store and loads from the first
type MultiStorage struct {
	stores []Storage
}

// NewMultiStorage combines stores; nil entries are skipped
func NewMultiStorage(stores ...Storage) *MultiStorage {
	ms := &MultiStorage{}
	for _, s := range stores {
		if s != nil {
			ms.stores = append(ms.stores, s)
		}
	}
	return ms
}

// Save writes the report to every store, collecting all errors
func (m *MultiStorage) Save(report *domain.RunReport) error {
	var errs []error
	for _, s := range m.stores {
		if err := s.Save(report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load reads from the first store
func (m *MultiStorage) Load() (*domain.RunReport, error) {
	if len(m.stores) == 0 {
		return nil, fmt.Errorf("load: %w", ErrNoRuns)
	}
	return m.stores[0].Load()
}
