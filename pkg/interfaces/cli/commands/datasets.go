package commands

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
)

func newDatasetsCommand(app *App) *cobra.Command {
	var archivePath string

	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the CSV datasets in an archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()

			repo, err := app.service.OpenArchive(archivePath)
			if err != nil {
				return err
			}

			report := &dto.Report{Title: "Datasets in " + archivePath, Columns: []string{"dataset", "rows", "columns"}}
			for _, name := range repo.Names() {
				table, err := repo.GetDataset(name)
				if err != nil {
					return err
				}
				report.Rows = append(report.Rows, []string{name, strconv.Itoa(table.Len()), strconv.Itoa(len(table.Columns()))})
			}
			return app.render(report, started)
		},
	}

	cmd.Flags().StringVarP(&archivePath, "archive", "a", "", "Path to zip archive")
	markRequired(cmd, "archive")
	return cmd
}
