package ticket

import (
	"sort"
	"strings"
	"time"

	"github.com/izanamador/mercadata/internal/parsing"
	"github.com/shopspring/decimal"
)

// MonthTotal is the spend total for one calendar month.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// TopItem is the single item description with the largest summed spend.
type TopItem struct {
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
}

// Report holds the derived statistics over the full record set. It is
// recomputed fresh on every request, never updated incrementally.
type Report struct {
	MonthlySpend     []MonthTotal    `json:"monthly_spend"`
	ItemsPerCategory map[string]int  `json:"items_per_category"`
	SalesPerLocation map[string]int  `json:"sales_per_location"`
	TopItem          TopItem         `json:"top_item"`
	MeanTicketValue  decimal.Decimal `json:"mean_ticket_value"`
	MaxTicketValue   decimal.Decimal `json:"max_ticket_value"`
}

// EmptyReport returns a zero-valued report.
func EmptyReport() *Report {
	return &Report{
		MonthlySpend:     []MonthTotal{},
		ItemsPerCategory: map[string]int{},
		SalesPerLocation: map[string]int{},
		MeanTicketValue:  decimal.Zero,
		MaxTicketValue:   decimal.Zero,
	}
}

// Merge appends to existing every batch row not already present, comparing
// full-row equality over all columns. It returns the merged set and the
// number of rows actually added.
func Merge(existing, batch []Item) ([]Item, int) {
	seen := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		seen[rowKey(item)] = struct{}{}
	}

	merged := make([]Item, len(existing), len(existing)+len(batch))
	copy(merged, existing)

	added := 0
	for _, item := range batch {
		key := rowKey(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, item)
		added++
	}
	return merged, added
}

func rowKey(item Item) string {
	return strings.Join([]string{
		item.Timestamp,
		item.TicketID,
		item.Location,
		item.Description,
		item.Category,
		item.Price.StringFixed(2),
	}, "\x1f")
}

// BuildReport computes the aggregate statistics over a record set.
func BuildReport(items []Item) *Report {
	report := EmptyReport()
	if len(items) == 0 {
		return report
	}

	report.MonthlySpend = monthlySpend(items)
	report.TopItem = topItem(items)

	for _, item := range items {
		report.ItemsPerCategory[item.Category]++
		report.SalesPerLocation[item.Location]++
	}

	report.MeanTicketValue, report.MaxTicketValue = ticketValues(items)
	return report
}

// monthlySpend groups records by calendar month of their timestamp, ordered
// ascending. Records with an unparseable timestamp are excluded from this
// aggregate only.
func monthlySpend(items []Item) []MonthTotal {
	totals := make(map[string]decimal.Decimal)
	for _, item := range items {
		ts, err := time.Parse(parsing.TimestampLayout, item.Timestamp)
		if err != nil {
			continue
		}
		month := ts.Format("2006-01")
		totals[month] = totals[month].Add(item.Price)
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	spend := make([]MonthTotal, 0, len(months))
	for _, month := range months {
		spend = append(spend, MonthTotal{Month: month, Total: totals[month]})
	}
	return spend
}

// topItem groups by description and returns the largest summed spend, ties
// broken by first-encountered order.
func topItem(items []Item) TopItem {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, item := range items {
		if _, ok := totals[item.Description]; !ok {
			order = append(order, item.Description)
		}
		totals[item.Description] = totals[item.Description].Add(item.Price)
	}

	var top TopItem
	for i, description := range order {
		total := totals[description]
		if i == 0 || total.GreaterThan(top.Total) {
			top = TopItem{Description: description, Total: total}
		}
	}
	return top
}

// ticketValues sums prices per ticket identifier and returns the mean and
// maximum of the per-ticket totals.
func ticketValues(items []Item) (mean, max decimal.Decimal) {
	totals := make(map[string]decimal.Decimal)
	for _, item := range items {
		totals[item.TicketID] = totals[item.TicketID].Add(item.Price)
	}
	if len(totals) == 0 {
		return decimal.Zero, decimal.Zero
	}

	sum := decimal.Zero
	for _, total := range totals {
		sum = sum.Add(total)
		if total.GreaterThan(max) {
			max = total
		}
	}
	mean = sum.Div(decimal.NewFromInt(int64(len(totals)))).RoundBank(2)
	return mean, max
}
