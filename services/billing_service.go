package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/grandhotel/restaurant-pos/models"
	"github.com/grandhotel/restaurant-pos/storage"
	"github.com/grandhotel/restaurant-pos/utils"
)

// ErrNoActiveOrder is returned when billing is attempted on a table whose
// status is "empty" or whose active flag is off.
var ErrNoActiveOrder = errors.New("no active order for this table")

const billIDAttempts = 10

// BillingService closes a table's order out into an immutable bill, updates
// the revenue ledger and resets the table.
type BillingService struct {
	Store *storage.Store
}

func NewBillingService(store *storage.Store) *BillingService {
	return &BillingService{Store: store}
}

// GenerateBill runs the close-out sequence: persist the bill, archive the
// pre-close order, append to the day's revenue, reset the table.
//
// The four writes are independent; there is no rollback. A crash partway
// through leaves a partially closed table and surfaces as an internal error
// to the caller, with manual reconciliation of the files implied. The
// revenue append is keyed by bill id, so replaying a close-out cannot
// double-count a day's total.
func (bs *BillingService) GenerateBill(table int, discountType string, discountValue float64) (models.Bill, error) {
	order, found, err := bs.Store.TableOrder(table)
	if err != nil {
		return models.Bill{}, err
	}
	if !found {
		return models.Bill{}, fmt.Errorf("table %d: %w", table, storage.ErrNotFound)
	}
	if order.Status == models.StatusEmpty || !order.Active {
		return models.Bill{}, ErrNoActiveOrder
	}

	subtotal := order.Total
	discount := computeDiscount(subtotal, discountType, discountValue)
	now := time.Now()

	bill := models.Bill{
		ID:            bs.newBillID(table, now),
		Table:         table,
		Date:          now,
		Items:         order.Items,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         subtotal - discount,
		DiscountType:  discountType,
		DiscountValue: discountValue,
	}

	if err := bs.Store.SaveBill(bill); err != nil {
		return models.Bill{}, err
	}
	if err := bs.Store.ArchiveOrder(order, now); err != nil {
		return models.Bill{}, err
	}
	if err := bs.appendRevenue(bill, now); err != nil {
		return models.Bill{}, err
	}
	if err := bs.Store.SaveTableOrder(models.EmptyTableOrder(table)); err != nil {
		return models.Bill{}, err
	}

	utils.InfoLogger.Printf("Bill %s generated for table %d (total %.2f)", bill.ID, table, bill.Total)
	return bill, nil
}

// LatestBillForTable scans the persisted bills for the table and returns the
// one with the newest date.
func (bs *BillingService) LatestBillForTable(table int) (models.Bill, error) {
	bills, err := bs.Store.BillsForTable(table)
	if err != nil {
		return models.Bill{}, err
	}
	if len(bills) == 0 {
		return models.Bill{}, fmt.Errorf("no bill for table %d: %w", table, storage.ErrNotFound)
	}

	latest := bills[0]
	for _, bill := range bills[1:] {
		if bill.Date.After(latest.Date) {
			latest = bill
		}
	}
	return latest, nil
}

// GetBill looks a bill up by id.
func (bs *BillingService) GetBill(id string) (models.Bill, error) {
	return bs.Store.Bill(id)
}

// computeDiscount applies the requested discount, clamped to [0, subtotal].
// An absent or unrecognized type means no discount.
func computeDiscount(subtotal float64, discountType string, discountValue float64) float64 {
	var discount float64
	switch discountType {
	case models.DiscountFlat:
		discount = discountValue
	case models.DiscountPercentage:
		discount = subtotal * discountValue / 100
	default:
		return 0
	}

	if discount < 0 {
		return 0
	}
	if discount > subtotal {
		return subtotal
	}
	return discount
}

// newBillID draws a 4-digit random suffix and retries while the id is
// already taken.
func (bs *BillingService) newBillID(table int, now time.Time) string {
	id := models.BillID(table, now, rand.IntN(10000))
	for i := 0; i < billIDAttempts && bs.Store.BillExists(id); i++ {
		id = models.BillID(table, now, rand.IntN(10000))
	}
	return id
}

// appendRevenue records the bill in the day's ledger, skipping ids already
// present.
func (bs *BillingService) appendRevenue(bill models.Bill, now time.Time) error {
	date := models.RevenueDate(now)
	record, found, err := bs.Store.Revenue(date)
	if err != nil {
		return err
	}
	if !found {
		record = models.EmptyRevenueRecord(date)
	}

	if !record.Contains(bill.ID) {
		record.Bills = append(record.Bills, models.BillRef{ID: bill.ID, Amount: bill.Total})
	}
	record.RecalcTotal()
	return bs.Store.SaveRevenue(record)
}
