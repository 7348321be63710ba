package ticket

import "github.com/shopspring/decimal"

// Item is one classified spending record: a single purchased product carrying
// its parent ticket's header fields. Immutable once constructed. The JSON
// keys double as the persisted column names.
type Item struct {
	Timestamp   string          `json:"fecha"`
	TicketID    string          `json:"identificativo de ticket"`
	Location    string          `json:"ubicación"`
	Description string          `json:"item"`
	Category    string          `json:"categoría"`
	Price       decimal.Decimal `json:"precio"`
}

// Columns is the persisted schema, in contract order. Downstream consumers
// rely on this ordering.
var Columns = []string{
	"fecha",
	"identificativo de ticket",
	"ubicación",
	"item",
	"categoría",
	"precio",
}
