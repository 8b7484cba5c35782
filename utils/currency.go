package utils

import "fmt"

// FormatCurrency renders an amount for the printable bill, e.g. "₹450.00".
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}
