package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/domain/services"
)

func newReorderPointCommand(app *App) *cobra.Command {
	var (
		dailyDemand, leadTime, safetyStock              float64
		archivePath, fileName                           string
		dailyDemandColumn, leadTimeColumn, safetyColumn string
	)

	cmd := &cobra.Command{
		Use:   "reorder-point",
		Short: "Compute the stock level at which to reorder",
		Long: `Compute daily_demand * lead_time_days + safety_stock from flags, or for
every row of an archive member when --archive is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()

			if archivePath == "" {
				rop, err := services.CalculateReorderPoint(dailyDemand, leadTime, safetyStock)
				if err != nil {
					return err
				}
				return app.render(dto.FromScalar("Reorder point", "reorder_point", rop), started)
			}

			table, values, err := app.service.CalculateReorderPointsFromArchive(archivePath, fileName, dailyDemandColumn, leadTimeColumn, safetyColumn)
			if err != nil {
				return err
			}
			report, err := dto.FromTableWithValues("Reorder points for "+fileName, table, "reorder_point", values)
			if err != nil {
				return err
			}
			return app.render(report, started)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&dailyDemand, "daily-demand", 0, "Average units sold per day")
	flags.Float64Var(&leadTime, "lead-time", 0, "Supplier lead time in days")
	flags.Float64Var(&safetyStock, "safety-stock", 0, "Safety stock in units")
	flags.StringVarP(&archivePath, "archive", "a", "", "Path to zip archive; computes one reorder point per row")
	flags.StringVar(&fileName, "file", "", "CSV member of the archive")
	flags.StringVar(&dailyDemandColumn, "daily-demand-column", "daily_demand", "Daily demand column")
	flags.StringVar(&leadTimeColumn, "lead-time-column", "lead_time_days", "Lead time column")
	flags.StringVar(&safetyColumn, "safety-stock-column", "", "Safety stock column; omitted means no safety stock")
	cmd.MarkFlagsRequiredTogether("archive", "file")
	return cmd
}
