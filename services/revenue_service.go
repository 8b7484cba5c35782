package services

import (
	"time"

	"github.com/grandhotel/restaurant-pos/models"
	"github.com/grandhotel/restaurant-pos/storage"
)

// RevenueService reads the per-day revenue ledger.
type RevenueService struct {
	Store *storage.Store
}

func NewRevenueService(store *storage.Store) *RevenueService {
	return &RevenueService{Store: store}
}

// ForDate returns the day's record, or the empty record when the day has no
// bills. Absence is a valid zero-revenue day, never an error.
func (rs *RevenueService) ForDate(date string) (models.RevenueRecord, error) {
	record, found, err := rs.Store.Revenue(date)
	if err != nil {
		return models.RevenueRecord{}, err
	}
	if !found {
		return models.EmptyRevenueRecord(date), nil
	}
	return record, nil
}

// Today returns the record for the current calendar date.
func (rs *RevenueService) Today() (models.RevenueRecord, error) {
	return rs.ForDate(models.RevenueDate(time.Now()))
}
