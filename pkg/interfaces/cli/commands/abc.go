package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/domain/services"
)

func newABCCommand(app *App) *cobra.Command {
	var (
		archivePath string
		fileName    string
		valueColumn string
		aThreshold  float64
		bThreshold  float64
	)
	defaults := services.DefaultABCThresholds()

	cmd := &cobra.Command{
		Use:   "abc",
		Short: "Classify items into A, B and C categories by cumulative value share",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()

			thresholds := app.settings.Analysis.Thresholds()
			if cmd.Flags().Changed("a-threshold") {
				thresholds.A = aThreshold
			}
			if cmd.Flags().Changed("b-threshold") {
				thresholds.B = bThreshold
			}

			classified, err := app.service.ClassifyInventoryFromArchive(archivePath, fileName, valueColumn, thresholds)
			if err != nil {
				return err
			}
			summaries, err := services.SummarizeCategories(classified, valueColumn)
			if err != nil {
				return err
			}

			report := dto.FromTable("ABC classification of "+fileName, classified)
			report.Notes = dto.CategoryNotes(summaries)
			return app.render(report, started)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&archivePath, "archive", "a", "", "Path to zip archive")
	flags.StringVar(&fileName, "file", "", "Inventory CSV member of the archive")
	flags.StringVar(&valueColumn, "value-column", "", "Column holding each item's value")
	flags.Float64Var(&aThreshold, "a-threshold", defaults.A, "Cumulative share up to which items are class A")
	flags.Float64Var(&bThreshold, "b-threshold", defaults.B, "Cumulative share up to which items are class B")
	markRequired(cmd, "archive", "file", "value-column")
	return cmd
}
