package ticket

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/izanamador/mercadata/internal/parsing"
)

// WriteCSV writes items in the persisted tabular schema. Column order is the
// downstream contract and must not change.
func WriteCSV(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, item := range items {
		record := []string{
			item.Timestamp,
			item.TicketID,
			item.Location,
			item.Description,
			item.Category,
			parsing.FormatPrice(item.Price),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
