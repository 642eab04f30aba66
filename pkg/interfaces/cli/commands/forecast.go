package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/application/services/analysis"
)

func newForecastCommand(app *App) *cobra.Command {
	var (
		req             analysis.ForecastRequest
		periods         int
		seasonalPeriods int
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast daily demand from sales transactions",
		Long: `Sum the quantity column per day, fill days without sales with zero and
project the following days with Holt-Winters exponential smoothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()

			req.Periods = app.settings.Analysis.Periods
			if cmd.Flags().Changed("periods") {
				req.Periods = periods
			}
			req.SeasonalPeriods = app.settings.Analysis.SeasonalPeriods
			if cmd.Flags().Changed("seasonal-periods") {
				req.SeasonalPeriods = seasonalPeriods
			}

			forecast, err := app.service.ForecastFromArchive(req)
			if err != nil {
				return err
			}
			return app.render(dto.FromSeries("Demand forecast for "+req.FileName, forecast), started)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&req.ArchivePath, "archive", "a", "", "Path to zip archive")
	flags.StringVar(&req.FileName, "file", "", "Sales CSV member of the archive")
	flags.StringVar(&req.DateColumn, "date-column", "date", "Transaction date column")
	flags.StringVar(&req.QuantityColumn, "quantity-column", "quantity", "Quantity column")
	flags.IntVarP(&periods, "periods", "p", 30, "Number of days to forecast")
	flags.IntVar(&seasonalPeriods, "seasonal-periods", 0, "Seasonal cycle length in days; 0 fits no seasonality")
	markRequired(cmd, "archive", "file")
	return cmd
}
