package services

import (
	"sort"

	"github.com/grandhotel/restaurant-pos/models"
	"github.com/grandhotel/restaurant-pos/storage"
)

// DiningTableCount is how many physical tables the floor has; ListAll
// synthesizes an empty record for each of 1..DiningTableCount that has no
// file.
const DiningTableCount = 20

// TableService exposes and updates table lifecycle status.
type TableService struct {
	Store *storage.Store
}

func NewTableService(store *storage.Store) *TableService {
	return &TableService{Store: store}
}

// GetStatus returns the table's record, or the empty default when no file
// exists.
func (ts *TableService) GetStatus(table int) (models.TableOrder, error) {
	order, found, err := ts.Store.TableOrder(table)
	if err != nil {
		return models.TableOrder{}, err
	}
	if !found {
		return models.EmptyTableOrder(table), nil
	}
	return order, nil
}

// SetStatus overwrites the table's status and derives the active flag.
// Status is free text at this layer; only "empty" and "closed" deactivate
// the table.
func (ts *TableService) SetStatus(table int, status string) (models.TableOrder, error) {
	order, found, err := ts.Store.TableOrder(table)
	if err != nil {
		return models.TableOrder{}, err
	}
	if !found {
		order = models.EmptyTableOrder(table)
	}

	order.Status = status
	order.Active = models.ActiveForStatus(status)

	if err := ts.Store.SaveTableOrder(order); err != nil {
		return models.TableOrder{}, err
	}
	return order, nil
}

// ListAll returns one record per table, ascending. Every table 1..20 appears
// exactly once; tables without a file get the empty default, tables with a
// file appear as stored.
func (ts *TableService) ListAll() ([]models.TableOrder, error) {
	stored, err := ts.Store.TableOrders()
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(stored))
	tables := make([]models.TableOrder, 0, DiningTableCount)
	for _, order := range stored {
		seen[order.Table] = true
		tables = append(tables, order)
	}
	for i := 1; i <= DiningTableCount; i++ {
		if !seen[i] {
			tables = append(tables, models.EmptyTableOrder(i))
		}
	}

	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Table < tables[j].Table
	})
	return tables, nil
}
