package models

import (
	"fmt"
	"time"
)

// Discount types recognized by bill generation. Anything else means no
// discount.
const (
	DiscountFlat       = "flat"
	DiscountPercentage = "percentage"
)

// Bill is an immutable finalized snapshot of a table order plus discount and
// totals. Never mutated or deleted once written.
type Bill struct {
	ID            string      `json:"id"`
	Table         int         `json:"table"`
	Date          time.Time   `json:"date"`
	Items         []OrderLine `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount"`
	Total         float64     `json:"total"`
	DiscountType  string      `json:"discountType"`
	DiscountValue float64     `json:"discountValue"`
}

// BillID formats a bill identifier: HTL-<2-digit table>-<YYYYMMDD>-<4-digit
// suffix>.
func BillID(table int, date time.Time, suffix int) string {
	return fmt.Sprintf("HTL-%02d-%s-%04d", table, date.Format("20060102"), suffix)
}

// BillTablePrefix is the id prefix shared by every bill for one table, used
// to scan the bill store per table.
func BillTablePrefix(table int) string {
	return fmt.Sprintf("HTL-%02d-", table)
}
