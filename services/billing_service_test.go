package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/grandhotel/restaurant-pos/models"
	"github.com/grandhotel/restaurant-pos/storage"
)

func seedActiveOrder(t *testing.T, store *storage.Store, table int) models.TableOrder {
	t.Helper()
	svc := NewOrderService(store)
	order, err := svc.PlaceOrder(table, []ItemRequest{{ID: 3, Quantity: 2}}) // 2 x 250
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     float64
		discountType string
		value        float64
		want         float64
	}{
		{"no type means none", 200, "", 50, 0},
		{"unrecognized type means none", 200, "loyalty", 50, 0},
		{"flat", 200, models.DiscountFlat, 30, 30},
		{"flat clamped to subtotal", 200, models.DiscountFlat, 400, 200},
		{"flat negative clamped to zero", 200, models.DiscountFlat, -10, 0},
		{"percentage", 200, models.DiscountPercentage, 50, 100},
		{"percentage clamped", 200, models.DiscountPercentage, 150, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeDiscount(tt.subtotal, tt.discountType, tt.value)
			if got != tt.want {
				t.Errorf("computeDiscount(%v, %q, %v) = %v, want %v",
					tt.subtotal, tt.discountType, tt.value, got, tt.want)
			}
		})
	}
}

func TestGenerateBillClosesOutTable(t *testing.T) {
	store := newTestStore(t)
	seedActiveOrder(t, store, 7)
	svc := NewBillingService(store)

	bill, err := svc.GenerateBill(7, models.DiscountPercentage, 10)
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}

	if bill.Subtotal != 500 || bill.Discount != 50 || bill.Total != 450 {
		t.Errorf("bill totals wrong: %+v", bill)
	}
	wantPrefix := fmt.Sprintf("HTL-07-%s-", time.Now().Format("20060102"))
	if !strings.HasPrefix(bill.ID, wantPrefix) || len(bill.ID) != len(wantPrefix)+4 {
		t.Errorf("bill id %q does not match HTL-07-YYYYMMDD-NNNN", bill.ID)
	}

	// The bill is retrievable by id.
	stored, err := svc.GetBill(bill.ID)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if stored.Total != 450 || len(stored.Items) != 1 {
		t.Errorf("stored bill wrong: %+v", stored)
	}

	// The day's revenue grew by the bill total.
	record, err := NewRevenueService(store).Today()
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if record.Total != 450 || !record.Contains(bill.ID) {
		t.Errorf("revenue record wrong: %+v", record)
	}

	// The table is reset to the empty default.
	order, _, err := store.TableOrder(7)
	if err != nil {
		t.Fatalf("TableOrder: %v", err)
	}
	if order.Status != models.StatusEmpty || order.Active || len(order.Items) != 0 || order.Total != 0 {
		t.Errorf("table not reset: %+v", order)
	}
}

func TestGenerateBillWithoutTableFile(t *testing.T) {
	svc := NewBillingService(newTestStore(t))

	_, err := svc.GenerateBill(15, "", 0)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerateBillOnInactiveTableHasNoSideEffects(t *testing.T) {
	store := newTestStore(t)
	// A closed-out table has a file, but no active order.
	if err := store.SaveTableOrder(models.EmptyTableOrder(8)); err != nil {
		t.Fatalf("SaveTableOrder: %v", err)
	}
	svc := NewBillingService(store)

	_, err := svc.GenerateBill(8, models.DiscountFlat, 100)
	if !errors.Is(err, ErrNoActiveOrder) {
		t.Fatalf("expected ErrNoActiveOrder, got %v", err)
	}

	if bills, _ := store.BillsForTable(8); len(bills) != 0 {
		t.Errorf("bill created for inactive table")
	}
	record, found, err := store.Revenue(models.RevenueDate(time.Now()))
	if err != nil {
		t.Fatalf("Revenue: %v", err)
	}
	if found {
		t.Errorf("revenue mutated for failed close-out: %+v", record)
	}
}

func TestGenerateBillFlatDiscountNeverGoesNegative(t *testing.T) {
	store := newTestStore(t)
	seedActiveOrder(t, store, 2) // subtotal 500
	svc := NewBillingService(store)

	bill, err := svc.GenerateBill(2, models.DiscountFlat, 1000)
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}
	if bill.Discount != 500 || bill.Total != 0 {
		t.Errorf("expected discount 500 and total 0, got %+v", bill)
	}
}

func TestRevenueAppendIsIdempotentPerBill(t *testing.T) {
	store := newTestStore(t)
	seedActiveOrder(t, store, 4)
	svc := NewBillingService(store)

	bill, err := svc.GenerateBill(4, "", 0)
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}

	// Replaying the ledger append for the same bill must not double-count.
	if err := svc.appendRevenue(bill, bill.Date); err != nil {
		t.Fatalf("appendRevenue replay: %v", err)
	}

	record, _, err := store.Revenue(models.RevenueDate(bill.Date))
	if err != nil {
		t.Fatalf("Revenue: %v", err)
	}
	if len(record.Bills) != 1 || record.Total != bill.Total {
		t.Errorf("replay double-counted: %+v", record)
	}
}

func TestLatestBillForTable(t *testing.T) {
	store := newTestStore(t)
	svc := NewBillingService(store)

	_, err := svc.LatestBillForTable(5)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound with no bills, got %v", err)
	}

	older := models.Bill{ID: models.BillID(5, time.Now().Add(-time.Hour), 1111), Table: 5, Date: time.Now().Add(-time.Hour), Total: 100}
	newer := models.Bill{ID: models.BillID(5, time.Now(), 2222), Table: 5, Date: time.Now(), Total: 200}
	for _, bill := range []models.Bill{older, newer} {
		if err := store.SaveBill(bill); err != nil {
			t.Fatalf("SaveBill: %v", err)
		}
	}
	// Another table's bill must not be picked up.
	other := models.Bill{ID: models.BillID(6, time.Now(), 3333), Table: 6, Date: time.Now(), Total: 999}
	if err := store.SaveBill(other); err != nil {
		t.Fatalf("SaveBill: %v", err)
	}

	latest, err := svc.LatestBillForTable(5)
	if err != nil {
		t.Fatalf("LatestBillForTable: %v", err)
	}
	if latest.ID != newer.ID {
		t.Errorf("got bill %s, want %s", latest.ID, newer.ID)
	}
}

func TestSecondSittingAfterCloseOut(t *testing.T) {
	store := newTestStore(t)
	orders := NewOrderService(store)
	billing := NewBillingService(store)

	seedActiveOrder(t, store, 10)
	first, err := billing.GenerateBill(10, "", 0)
	if err != nil {
		t.Fatalf("first GenerateBill: %v", err)
	}

	// The same table starts a fresh tab and closes again on the same day.
	if _, err := orders.PlaceOrder(10, []ItemRequest{{ID: 1, Quantity: 1}}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	second, err := billing.GenerateBill(10, "", 0)
	if err != nil {
		t.Fatalf("second GenerateBill: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("bill ids must differ: %s", second.ID)
	}

	record, err := NewRevenueService(store).Today()
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if len(record.Bills) != 2 || record.Total != first.Total+second.Total {
		t.Errorf("ledger should carry both sittings: %+v", record)
	}
}
