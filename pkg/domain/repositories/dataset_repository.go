package repositories

import "github.com/vsinha/inventory/pkg/domain/entities"

// DatasetRepository provides access to the datasets of one archive, keyed by file stem
type DatasetRepository interface {
	GetDataset(fileName string) (*entities.Table, error)
	GetAllDatasets() map[string]*entities.Table
	Names() []string
}

// DatasetSource opens an archive as a DatasetRepository. When files are given,
// only members with a matching base name are loaded.
type DatasetSource interface {
	OpenRepository(archivePath string, files ...string) (DatasetRepository, error)
}
