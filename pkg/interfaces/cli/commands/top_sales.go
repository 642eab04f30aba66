package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/domain/services"
)

func newTopSalesCommand(app *App) *cobra.Command {
	var (
		archivePath, fileName         string
		productColumn, quantityColumn string
		topN                          int
	)

	cmd := &cobra.Command{
		Use:   "top-sales",
		Short: "Rank products by total quantity sold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()

			n := app.settings.Analysis.TopN
			if cmd.Flags().Changed("top") {
				n = topN
			}

			sales, err := app.service.TopSellingFromArchive(archivePath, fileName, productColumn, quantityColumn, n)
			if err != nil {
				return err
			}
			return app.render(dto.FromProductSales("Top selling products in "+fileName, productColumn, sales), started)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&archivePath, "archive", "a", "", "Path to zip archive")
	flags.StringVar(&fileName, "file", "", "Sales CSV member of the archive")
	flags.StringVar(&productColumn, "product-column", "product", "Product identifier column")
	flags.StringVar(&quantityColumn, "quantity-column", "quantity", "Quantity column")
	flags.IntVarP(&topN, "top", "n", services.DefaultTopN, "Number of products to return")
	markRequired(cmd, "archive", "file")
	return cmd
}
