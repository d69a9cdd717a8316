package model

// Reserved category IDs
const (
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryTasks    = "tasks"    // every task lands here
	CategoryHolidays = "holidays" // holiday entries only
)

// Category groups calendar items and controls their visibility
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"` // hex color token for rendering
	Visible bool   `json:"visible"`
}

// DefaultCategories returns the built-in category set
func DefaultCategories() []Category {
	return []Category{
		{ID: CategoryWork, Name: "Work", Color: "#4ECDC4", Visible: true},
		{ID: CategoryPersonal, Name: "Personal", Color: "#FFB347", Visible: true},
		{ID: CategoryTasks, Name: "Tasks", Color: "#95E1A3", Visible: true},
		{ID: CategoryHolidays, Name: "Holidays", Color: "#FF6B6B", Visible: true},
	}
}
