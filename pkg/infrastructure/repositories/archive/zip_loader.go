// Package archive loads the CSV members of a zip archive as tables.
package archive

import (
	"archive/zip"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/repositories"
	"github.com/vsinha/inventory/pkg/infrastructure/logging"
	csvrepo "github.com/vsinha/inventory/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/memory"
)

const datasetExtension = ".csv"

// Loader reads zip archives of CSV datasets
type Loader struct {
	csv    *csvrepo.Loader
	logger *slog.Logger
}

// NewLoader creates an archive loader. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		csv:    csvrepo.NewLoader(),
		logger: logging.OrDiscard(logger),
	}
}

// Verify interface compliance
var _ repositories.DatasetSource = (*Loader)(nil)

// LoadDatasets returns every CSV member of the archive keyed by file stem.
// When files are given, only members whose base name matches the base name of
// one of them are loaded.
func (l *Loader) LoadDatasets(archivePath string, files ...string) (map[string]*entities.Table, error) {
	info, err := os.Stat(archivePath)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %q", entities.ErrMissingPath, archivePath)
	}

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer reader.Close()

	var wanted map[string]bool
	if len(files) > 0 {
		wanted = make(map[string]bool, len(files))
		for _, f := range files {
			wanted[baseName(f)] = true
		}
	}

	datasets := make(map[string]*entities.Table)
	for _, member := range reader.File {
		if member.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(member.Name), datasetExtension) {
			continue
		}
		base := baseName(member.Name)
		if wanted != nil && !wanted[base] {
			continue
		}

		table, err := l.loadMember(member)
		if err != nil {
			return nil, fmt.Errorf("archive %s member %s: %w", archivePath, member.Name, err)
		}

		datasets[memory.Stem(base)] = table
		l.logger.Debug("dataset loaded",
			"archive", archivePath,
			"member", member.Name,
			"rows", table.Len(),
			"columns", len(table.Columns()))
	}

	return datasets, nil
}

// OpenRepository loads the archive into an in-memory dataset repository
func (l *Loader) OpenRepository(archivePath string, files ...string) (repositories.DatasetRepository, error) {
	datasets, err := l.LoadDatasets(archivePath, files...)
	if err != nil {
		return nil, err
	}

	repo := memory.NewDatasetRepository(archivePath, len(datasets))
	if err := repo.LoadDatasets(datasets); err != nil {
		return nil, fmt.Errorf("failed to load datasets into repository: %w", err)
	}
	return repo, nil
}

func (l *Loader) loadMember(member *zip.File) (*entities.Table, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return l.csv.LoadTable(rc)
}

func baseName(name string) string {
	return path.Base(strings.ReplaceAll(name, "\\", "/"))
}
