package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/infrastructure/testutil"
)

func newPurchasesTable(t *testing.T) *entities.Table {
	t.Helper()
	return testutil.MustTable(t, []string{"order", "receive", "supplier"},
		[]string{"2024-01-01", "2024-01-11", "X"},
		[]string{"2024-01-05", "2024-01-10", "X"},
	)
}

func TestComputeLeadTimes_PerRow(t *testing.T) {
	result, err := ComputeLeadTimes(newPurchasesTable(t), LeadTimeParams{
		OrderDateColumn:   "order",
		ReceiptDateColumn: "receive",
	})
	require.NoError(t, err)

	assert.False(t, result.Grouped())
	assert.Equal(t, []int{10, 5}, result.Days)
}

func TestComputeLeadTimes_Grouped(t *testing.T) {
	result, err := ComputeLeadTimes(newPurchasesTable(t), LeadTimeParams{
		OrderDateColumn:   "order",
		ReceiptDateColumn: "receive",
		GroupColumn:       "supplier",
	})
	require.NoError(t, err)

	require.True(t, result.Grouped())
	require.Len(t, result.Groups, 1)
	assert.Equal(t, "X", result.Groups[0].Group)
	assert.InDelta(t, 7.5, result.Groups[0].AverageDays, 1e-9)
	assert.Equal(t, 2, result.Groups[0].Orders)
	assert.Nil(t, result.Days)
}

func TestComputeLeadTimes_GroupsSortedAndBlankSkipped(t *testing.T) {
	table := testutil.MustTable(t, []string{"order", "receive", "supplier"},
		[]string{"2024-02-01", "2024-02-04", "ZENITH"},
		[]string{"2024-02-01", "2024-02-02", "ACME"},
		[]string{"2024-02-01", "2024-02-06", "ACME"},
		[]string{"2024-02-01", "2024-03-01", ""},
	)

	result, err := ComputeLeadTimes(table, LeadTimeParams{
		OrderDateColumn:   "order",
		ReceiptDateColumn: "receive",
		GroupColumn:       "supplier",
	})
	require.NoError(t, err)

	require.Len(t, result.Groups, 2)
	assert.Equal(t, "ACME", result.Groups[0].Group)
	assert.InDelta(t, 3.0, result.Groups[0].AverageDays, 1e-9)
	assert.Equal(t, "ZENITH", result.Groups[1].Group)
	assert.Equal(t, "ACME: 3.00 days over 2 orders", result.Groups[0].String())
}

func TestComputeLeadTimes_NegativeAndCrossMonth(t *testing.T) {
	table := testutil.MustTable(t, []string{"order", "receive"},
		[]string{"2024-01-10", "2024-01-07"},
		[]string{"2024-02-27", "2024-03-02"},
		[]string{"2024-01-01 08:30:00", "2024-01-02 07:00:00"},
	)

	result, err := ComputeLeadTimes(table, LeadTimeParams{OrderDateColumn: "order", ReceiptDateColumn: "receive"})
	require.NoError(t, err)
	assert.Equal(t, []int{-3, 4, 1}, result.Days)
}

func TestComputeLeadTimes_Errors(t *testing.T) {
	table := newPurchasesTable(t)

	testCases := []struct {
		name      string
		params    LeadTimeParams
		expectErr error
	}{
		{"missing order column", LeadTimeParams{OrderDateColumn: "ordered", ReceiptDateColumn: "receive"}, entities.ErrMissingColumn},
		{"missing receipt column", LeadTimeParams{OrderDateColumn: "order", ReceiptDateColumn: "received"}, entities.ErrMissingColumn},
		{"missing group column", LeadTimeParams{OrderDateColumn: "order", ReceiptDateColumn: "receive", GroupColumn: "vendor"}, entities.ErrMissingColumn},
		{"dates in wrong column", LeadTimeParams{OrderDateColumn: "supplier", ReceiptDateColumn: "receive"}, entities.ErrType},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeLeadTimes(table, tc.params)
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}
