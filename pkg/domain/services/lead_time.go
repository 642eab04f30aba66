package services

import (
	"fmt"
	"sort"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// LeadTimeParams names the columns used by ComputeLeadTimes.
// GroupColumn is optional.
type LeadTimeParams struct {
	OrderDateColumn   string
	ReceiptDateColumn string
	GroupColumn       string
}

// GroupLeadTime is the average lead time of one group, e.g. one supplier
type GroupLeadTime struct {
	Group       string
	AverageDays float64
	Orders      int
}

// LeadTimeResult holds either per-row lead times or per-group averages
type LeadTimeResult struct {
	// Days has one entry per input row, in input order, when no group column is set
	Days []int
	// Groups is sorted by group value when a group column is set
	Groups []GroupLeadTime
}

// Grouped reports whether the result holds per-group averages
func (r *LeadTimeResult) Grouped() bool {
	return r.Groups != nil
}

// ComputeLeadTimes returns receipt minus order date in whole days for every row,
// or the mean of those values per distinct group when params.GroupColumn is set.
// Receipts that precede their order yield negative lead times.
func ComputeLeadTimes(table *entities.Table, params LeadTimeParams) (*LeadTimeResult, error) {
	required := []string{params.OrderDateColumn, params.ReceiptDateColumn}
	if params.GroupColumn != "" {
		required = append(required, params.GroupColumn)
	}
	if err := table.RequireColumns(required...); err != nil {
		return nil, err
	}

	orderDates, err := table.DateColumn(params.OrderDateColumn)
	if err != nil {
		return nil, err
	}
	receiptDates, err := table.DateColumn(params.ReceiptDateColumn)
	if err != nil {
		return nil, err
	}

	days := make([]int, table.Len())
	for i := range days {
		days[i] = int(receiptDates[i].Sub(orderDates[i]).Hours() / 24)
	}

	if params.GroupColumn == "" {
		return &LeadTimeResult{Days: days}, nil
	}

	groups, err := table.Column(params.GroupColumn)
	if err != nil {
		return nil, err
	}
	return &LeadTimeResult{Groups: averageByGroup(groups, days)}, nil
}

func averageByGroup(groups []string, days []int) []GroupLeadTime {
	totals := make(map[string]int)
	counts := make(map[string]int)
	for i, group := range groups {
		if group == "" {
			continue
		}
		totals[group] += days[i]
		counts[group]++
	}

	result := make([]GroupLeadTime, 0, len(counts))
	for group, count := range counts {
		result = append(result, GroupLeadTime{
			Group:       group,
			AverageDays: float64(totals[group]) / float64(count),
			Orders:      count,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Group < result[j].Group
	})
	return result
}

// String returns a short description of the group's lead time
func (g GroupLeadTime) String() string {
	return fmt.Sprintf("%s: %.2f days over %d orders", g.Group, g.AverageDays, g.Orders)
}
