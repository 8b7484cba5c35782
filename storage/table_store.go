package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grandhotel/restaurant-pos/models"
)

func (s *Store) tablePath(table int) string {
	return filepath.Join(s.root, "tables", fmt.Sprintf("table-%d.json", table))
}

// TableOrder loads one table's file. found is false when no file exists;
// callers decide whether that means "empty table" (order and status reads)
// or "not found" (bill generation).
func (s *Store) TableOrder(table int) (models.TableOrder, bool, error) {
	var order models.TableOrder
	err := s.readJSON(s.tablePath(table), &order)
	if err == ErrNotFound {
		return models.TableOrder{}, false, nil
	}
	if err != nil {
		return models.TableOrder{}, false, err
	}
	return order, true, nil
}

// SaveTableOrder persists the full table record. Last write wins; there is
// no versioning.
func (s *Store) SaveTableOrder(order models.TableOrder) error {
	return s.writeJSON(s.tablePath(order.Table), order)
}

// TableOrders loads every table file on disk. A missing tables directory
// resolves to no records.
func (s *Store) TableOrders() ([]models.TableOrder, error) {
	dir := filepath.Join(s.root, "tables")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var orders []models.TableOrder
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "table-") || !strings.HasSuffix(name, ".json") {
			continue
		}
		var order models.TableOrder
		if err := s.readJSON(filepath.Join(dir, name), &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
