package storage

import (
	"path/filepath"

	"github.com/grandhotel/restaurant-pos/models"
)

func (s *Store) revenuePath(date string) string {
	return filepath.Join(s.root, "revenue", date+".json")
}

// Revenue loads one day's record. found is false when the day has no bills
// yet; callers synthesize the empty record.
func (s *Store) Revenue(date string) (models.RevenueRecord, bool, error) {
	var record models.RevenueRecord
	err := s.readJSON(s.revenuePath(date), &record)
	if err == ErrNotFound {
		return models.RevenueRecord{}, false, nil
	}
	if err != nil {
		return models.RevenueRecord{}, false, err
	}
	return record, true, nil
}

// SaveRevenue persists one day's record.
func (s *Store) SaveRevenue(record models.RevenueRecord) error {
	return s.writeJSON(s.revenuePath(record.Date), record)
}
