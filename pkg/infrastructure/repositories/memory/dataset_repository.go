package memory

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/repositories"
)

// DatasetRepository provides in-memory storage for the datasets of one archive
type DatasetRepository struct {
	source   string
	datasets map[string]*entities.Table
}

// NewDatasetRepository creates a new in-memory dataset repository.
// source names the archive the datasets came from and is used in error messages.
func NewDatasetRepository(source string, expectedDatasets int) *DatasetRepository {
	return &DatasetRepository{
		source:   source,
		datasets: make(map[string]*entities.Table, expectedDatasets),
	}
}

// Verify interface compliance
var _ repositories.DatasetRepository = (*DatasetRepository)(nil)

// LoadDatasets loads a stem-keyed member set into the repository
func (r *DatasetRepository) LoadDatasets(datasets map[string]*entities.Table) error {
	for stem, table := range datasets {
		if table == nil {
			return fmt.Errorf("dataset %q has no table", stem)
		}
		r.AddDataset(stem, table)
	}
	return nil
}

// AddDataset adds a dataset under its file stem
func (r *DatasetRepository) AddDataset(stem string, table *entities.Table) {
	r.datasets[stem] = table
}

// GetDataset returns the dataset for a file name ("sales.csv") or stem ("sales")
func (r *DatasetRepository) GetDataset(fileName string) (*entities.Table, error) {
	table, exists := r.datasets[Stem(fileName)]
	if !exists {
		return nil, fmt.Errorf("%w: %q not found in %q", entities.ErrMissingMember, fileName, r.source)
	}
	return table, nil
}

// GetAllDatasets returns a copy of the stem-keyed member set
func (r *DatasetRepository) GetAllDatasets() map[string]*entities.Table {
	all := make(map[string]*entities.Table, len(r.datasets))
	for stem, table := range r.datasets {
		all[stem] = table
	}
	return all
}

// Names returns the stems of all datasets in sorted order
func (r *DatasetRepository) Names() []string {
	names := make([]string, 0, len(r.datasets))
	for stem := range r.datasets {
		names = append(names, stem)
	}
	sort.Strings(names)
	return names
}

// Stem returns the base name of a file without its directory or extension
func Stem(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}
