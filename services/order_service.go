package services

import (
	"github.com/grandhotel/restaurant-pos/models"
	"github.com/grandhotel/restaurant-pos/storage"
	"github.com/grandhotel/restaurant-pos/utils"
)

// ItemRequest is one requested line in a place-order call.
type ItemRequest struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// OrderService builds and updates a table's pending order against the menu.
type OrderService struct {
	Store *storage.Store
}

func NewOrderService(store *storage.Store) *OrderService {
	return &OrderService{Store: store}
}

// GetOrder returns the table's current order. A table with no file is an
// empty table, not an error.
func (os *OrderService) GetOrder(table int) (models.TableOrder, error) {
	order, found, err := os.Store.TableOrder(table)
	if err != nil {
		return models.TableOrder{}, err
	}
	if !found {
		return models.EmptyTableOrder(table), nil
	}
	return order, nil
}

// PlaceOrder merges the requested items into the table's pending order,
// snapshotting name and price from the menu, and persists the result.
//
// Lines referencing an unknown or unavailable menu item are dropped without
// an error; the remaining valid lines still apply. Concurrent calls for the
// same table are not serialized: both read the old state and the later
// write wins.
func (os *OrderService) PlaceOrder(table int, items []ItemRequest) (models.TableOrder, error) {
	order, found, err := os.Store.TableOrder(table)
	if err != nil {
		return models.TableOrder{}, err
	}
	if !found {
		order = models.EmptyTableOrder(table)
	}

	menu, err := os.Store.Menu()
	if err != nil {
		return models.TableOrder{}, err
	}

	for _, req := range items {
		menuItem, ok := menu.Find(req.ID)
		if !ok || !menuItem.Available || req.Quantity < 1 {
			utils.InfoLogger.Printf("Dropping order line for table %d: item %d (qty %d)", table, req.ID, req.Quantity)
			continue
		}

		merged := false
		for i := range order.Items {
			if order.Items[i].MenuItemID == req.ID && order.Items[i].Status == models.LineStatusOrdered {
				order.Items[i].Quantity += req.Quantity
				merged = true
				break
			}
		}
		if !merged {
			order.Items = append(order.Items, models.OrderLine{
				MenuItemID: menuItem.ID,
				Name:       menuItem.Name,
				Price:      menuItem.Price,
				Quantity:   req.Quantity,
				Status:     models.LineStatusOrdered,
			})
		}
	}

	order.RecalcTotal()

	if order.Status == models.StatusEmpty {
		order.Status = models.StatusOrdering
		order.Active = true
	}

	if err := os.Store.SaveTableOrder(order); err != nil {
		return models.TableOrder{}, err
	}
	return order, nil
}
