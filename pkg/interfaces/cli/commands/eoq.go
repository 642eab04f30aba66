package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/domain/services"
)

func newEOQCommand(app *App) *cobra.Command {
	var (
		demand, orderCost, holdingCost                   float64
		archivePath, fileName                            string
		demandColumn, orderCostColumn, holdingCostColumn string
	)

	cmd := &cobra.Command{
		Use:   "eoq",
		Short: "Compute the economic order quantity",
		Long: `Compute sqrt(2 * demand * order_cost / holding_cost) from flags, or for
every row of an archive member when --archive is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()

			if archivePath == "" {
				eoq, err := services.CalculateEOQ(demand, orderCost, holdingCost)
				if err != nil {
					return err
				}
				return app.render(dto.FromScalar("Economic order quantity", "eoq", eoq), started)
			}

			table, values, err := app.service.CalculateEOQFromArchive(archivePath, fileName, demandColumn, orderCostColumn, holdingCostColumn)
			if err != nil {
				return err
			}
			report, err := dto.FromTableWithValues("Economic order quantity for "+fileName, table, "eoq", values)
			if err != nil {
				return err
			}
			return app.render(report, started)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&demand, "demand", 0, "Annual demand in units")
	flags.Float64Var(&orderCost, "order-cost", 0, "Cost of placing one order")
	flags.Float64Var(&holdingCost, "holding-cost", 0, "Cost of holding one unit for a year")
	flags.StringVarP(&archivePath, "archive", "a", "", "Path to zip archive; computes one EOQ per row")
	flags.StringVar(&fileName, "file", "", "CSV member of the archive")
	flags.StringVar(&demandColumn, "demand-column", "demand", "Demand column")
	flags.StringVar(&orderCostColumn, "order-cost-column", "order_cost", "Order cost column")
	flags.StringVar(&holdingCostColumn, "holding-cost-column", "holding_cost", "Holding cost column")
	cmd.MarkFlagsRequiredTogether("archive", "file")
	return cmd
}
