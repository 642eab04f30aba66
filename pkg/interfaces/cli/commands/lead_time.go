package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/domain/services"
)

func newLeadTimeCommand(app *App) *cobra.Command {
	var (
		archivePath, fileName string
		params                services.LeadTimeParams
	)

	cmd := &cobra.Command{
		Use:   "lead-time",
		Short: "Compute supplier lead times in days, optionally averaged per group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()

			result, err := app.service.ComputeLeadTimesFromArchive(archivePath, fileName, params)
			if err != nil {
				return err
			}
			return app.render(dto.FromLeadTimes("Lead times for "+fileName, result, params.GroupColumn), started)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&archivePath, "archive", "a", "", "Path to zip archive")
	flags.StringVar(&fileName, "file", "", "Purchase orders CSV member of the archive")
	flags.StringVar(&params.OrderDateColumn, "order-date-column", "order_date", "Order date column")
	flags.StringVar(&params.ReceiptDateColumn, "receipt-date-column", "receipt_date", "Receipt date column")
	flags.StringVar(&params.GroupColumn, "group-by", "", "Average lead times per value of this column")
	markRequired(cmd, "archive", "file")
	return cmd
}
