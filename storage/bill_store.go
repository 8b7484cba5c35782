package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grandhotel/restaurant-pos/models"
)

func (s *Store) billPath(id string) string {
	return filepath.Join(s.root, "bills", id+".json")
}

// Bill looks a bill up by id. Absence here is ErrNotFound, not a default:
// a bill id either refers to a finalized bill or to nothing.
func (s *Store) Bill(id string) (models.Bill, error) {
	var bill models.Bill
	if err := s.readJSON(s.billPath(id), &bill); err != nil {
		return models.Bill{}, err
	}
	return bill, nil
}

// BillExists reports whether an id is already taken, for the uniqueness
// check during id generation.
func (s *Store) BillExists(id string) bool {
	_, err := os.Stat(s.billPath(id))
	return err == nil
}

// SaveBill persists a finalized bill. Bills are immutable; nothing ever
// rewrites one.
func (s *Store) SaveBill(bill models.Bill) error {
	return s.writeJSON(s.billPath(bill.ID), bill)
}

// BillsForTable loads every bill whose id carries the table's prefix. A
// missing bills directory resolves to no bills.
func (s *Store) BillsForTable(table int) ([]models.Bill, error) {
	dir := filepath.Join(s.root, "bills")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	prefix := models.BillTablePrefix(table)
	var bills []models.Bill
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		var bill models.Bill
		if err := s.readJSON(filepath.Join(dir, name), &bill); err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, nil
}
