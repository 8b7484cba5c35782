package models

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}

// Menu is the whole menu file. Item ids are assigned max+1 and never reused,
// so a deleted id stays retired.
type Menu struct {
	Items []MenuItem `json:"items"`
}

// NextID returns the id for a newly added item: max existing id + 1, or 1
// for an empty menu.
func (m *Menu) NextID() int {
	next := 1
	for _, item := range m.Items {
		if item.ID >= next {
			next = item.ID + 1
		}
	}
	return next
}

// Find returns a pointer into Items so callers can edit in place.
func (m *Menu) Find(id int) (*MenuItem, bool) {
	for i := range m.Items {
		if m.Items[i].ID == id {
			return &m.Items[i], true
		}
	}
	return nil, false
}

// Remove deletes the item with the given id, reporting whether it existed.
func (m *Menu) Remove(id int) bool {
	for i := range m.Items {
		if m.Items[i].ID == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return true
		}
	}
	return false
}
