// Package testutil builds tables and zip archive fixtures for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/vsinha/inventory/pkg/domain/entities"
	csvrepo "github.com/vsinha/inventory/pkg/infrastructure/repositories/csv"
)

// MustTable builds a table or fails the test
func MustTable(tb testing.TB, columns []string, rows ...[]string) *entities.Table {
	tb.Helper()
	table, err := entities.NewTable(columns, rows)
	if err != nil {
		tb.Fatalf("failed to build table: %v", err)
	}
	return table
}

// WriteArchive writes a zip archive named name under dir. members maps the
// member path inside the archive to its raw content. Returns the archive path.
func WriteArchive(tb testing.TB, dir, name string, members map[string]string) string {
	tb.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	names := make([]string, 0, len(members))
	for member := range members {
		names = append(names, member)
	}
	sort.Strings(names)

	for _, member := range names {
		w, err := zw.Create(member)
		if err != nil {
			tb.Fatalf("failed to create archive member %s: %v", member, err)
		}
		if _, err := w.Write([]byte(members[member])); err != nil {
			tb.Fatalf("failed to write archive member %s: %v", member, err)
		}
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("failed to finish archive: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		tb.Fatalf("failed to write archive %s: %v", path, err)
	}
	return path
}

// WriteTableArchive writes each table as "<stem>.csv" into a new zip archive
func WriteTableArchive(tb testing.TB, dir, name string, tables map[string]*entities.Table) string {
	tb.Helper()

	members := make(map[string]string, len(tables))
	for stem, table := range tables {
		var buf bytes.Buffer
		if err := csvrepo.WriteTable(&buf, table); err != nil {
			tb.Fatalf("failed to encode table %s: %v", stem, err)
		}
		members[stem+".csv"] = buf.String()
	}
	return WriteArchive(tb, dir, name, members)
}
