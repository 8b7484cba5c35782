package models

// Table lifecycle statuses. SetStatus accepts free text as well; only these
// two drive the active flag.
const (
	StatusEmpty    = "empty"
	StatusOrdering = "ordering"
	StatusServed   = "served"
	StatusClosed   = "closed"
)

// LineStatusOrdered marks a line that is still part of the open tab.
const LineStatusOrdered = "ordered"

// OrderLine is one menu item on a table's tab. Name and price are a snapshot
// taken at order time; later menu edits do not touch open orders.
type OrderLine struct {
	MenuItemID int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Status     string  `json:"status"`
}

// TableOrder is the mutable in-progress tab for one physical table, reset to
// the empty default when a bill is generated.
type TableOrder struct {
	Table  int         `json:"table"`
	Status string      `json:"status"`
	Items  []OrderLine `json:"items"`
	Total  float64     `json:"total"`
	Active bool        `json:"active"`
}

// EmptyTableOrder is the default a table with no file on disk resolves to.
func EmptyTableOrder(table int) TableOrder {
	return TableOrder{
		Table:  table,
		Status: StatusEmpty,
		Items:  []OrderLine{},
		Total:  0,
		Active: false,
	}
}

// RecalcTotal recomputes Total as the sum of price*quantity over all lines.
// Total is derived state, never edited directly.
func (t *TableOrder) RecalcTotal() {
	total := 0.0
	for _, line := range t.Items {
		total += line.Price * float64(line.Quantity)
	}
	t.Total = total
}

// ActiveForStatus derives the active flag for a status value.
func ActiveForStatus(status string) bool {
	return status != StatusEmpty && status != StatusClosed
}
