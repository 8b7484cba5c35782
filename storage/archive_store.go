package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/grandhotel/restaurant-pos/models"
)

// ArchiveOrder writes a retained copy of a table order at the moment of
// closure, keyed by (table, close timestamp). The key never repeats for a
// table within a millisecond, so the archive is an append-only log.
func (s *Store) ArchiveOrder(order models.TableOrder, closedAt time.Time) error {
	name := fmt.Sprintf("table-%d-%d.json", order.Table, closedAt.UnixMilli())
	return s.writeJSON(filepath.Join(s.root, "archive", "orders", name), order)
}
