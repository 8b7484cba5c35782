package services

import (
	"os"
	"testing"

	"github.com/grandhotel/restaurant-pos/models"
	"github.com/grandhotel/restaurant-pos/storage"
	"github.com/grandhotel/restaurant-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// newTestStore gives every test its own data directory with the standard
// layout and a small fixed menu.
func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.New(t.TempDir())
	if err := store.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout: %v", err)
	}
	menu := models.Menu{Items: []models.MenuItem{
		{ID: 1, Name: "Butter Chicken", Price: 320, Category: "Main Course", Available: true},
		{ID: 3, Name: "Chicken Biryani", Price: 250, Category: "Rice", Available: true},
		{ID: 5, Name: "Garlic Naan", Price: 60, Category: "Bread", Available: false},
	}}
	if err := store.SaveMenu(menu); err != nil {
		t.Fatalf("SaveMenu: %v", err)
	}
	return store
}
