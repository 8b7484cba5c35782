package storage

import (
	"os"
	"path/filepath"

	"github.com/grandhotel/restaurant-pos/models"
)

func (s *Store) menuPath() string {
	return filepath.Join(s.root, "menu.json")
}

// Menu loads the whole menu file. A missing file resolves to an empty menu;
// SeedDefaultMenu normally runs at startup so this only happens when the
// seed was skipped.
func (s *Store) Menu() (models.Menu, error) {
	var menu models.Menu
	err := s.readJSON(s.menuPath(), &menu)
	if err == ErrNotFound {
		return models.Menu{Items: []models.MenuItem{}}, nil
	}
	if err != nil {
		return models.Menu{}, err
	}
	return menu, nil
}

// SaveMenu persists the whole menu file.
func (s *Store) SaveMenu(menu models.Menu) error {
	return s.writeJSON(s.menuPath(), menu)
}

// SeedDefaultMenu writes the default menu if no menu file exists yet.
func (s *Store) SeedDefaultMenu() error {
	if _, err := os.Stat(s.menuPath()); err == nil {
		return nil
	}
	return s.SaveMenu(models.Menu{Items: []models.MenuItem{
		{ID: 1, Name: "Butter Chicken", Price: 320, Category: "Main Course", Available: true},
		{ID: 2, Name: "Paneer Butter Masala", Price: 280, Category: "Main Course", Available: true},
		{ID: 3, Name: "Chicken Biryani", Price: 250, Category: "Rice", Available: true},
		{ID: 4, Name: "Veg Biryani", Price: 180, Category: "Rice", Available: true},
		{ID: 5, Name: "Garlic Naan", Price: 60, Category: "Bread", Available: true},
		{ID: 6, Name: "Butter Naan", Price: 50, Category: "Bread", Available: true},
		{ID: 7, Name: "Coke", Price: 40, Category: "Beverages", Available: true},
		{ID: 8, Name: "Lassi", Price: 80, Category: "Beverages", Available: true},
	}})
}
