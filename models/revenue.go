package models

import "time"

// RevenueDateFormat is the calendar-date key for revenue records.
const RevenueDateFormat = "2006-01-02"

// BillRef is one closed bill inside a day's revenue record.
type BillRef struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

// RevenueRecord is the per-day append-only log of bill totals, created
// lazily on the first bill of the day.
type RevenueRecord struct {
	Date  string    `json:"date"`
	Bills []BillRef `json:"bills"`
	Total float64   `json:"total"`
}

// EmptyRevenueRecord is the default a date with no file resolves to.
func EmptyRevenueRecord(date string) RevenueRecord {
	return RevenueRecord{
		Date:  date,
		Bills: []BillRef{},
		Total: 0,
	}
}

// Contains reports whether a bill id was already appended. The billing
// close-out uses this as its idempotency check so a replay cannot
// double-count a day's total.
func (r *RevenueRecord) Contains(billID string) bool {
	for _, ref := range r.Bills {
		if ref.ID == billID {
			return true
		}
	}
	return false
}

// RecalcTotal recomputes Total as the sum over the day's bills.
func (r *RevenueRecord) RecalcTotal() {
	total := 0.0
	for _, ref := range r.Bills {
		total += ref.Amount
	}
	r.Total = total
}

// RevenueDate formats a timestamp as a revenue record key.
func RevenueDate(t time.Time) string {
	return t.Format(RevenueDateFormat)
}
