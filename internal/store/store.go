package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("item not found")
	ErrAmbiguous  = errors.New("id prefix matches multiple items")
	ErrEmptyTitle = errors.New("title is required")
	ErrBadRange   = errors.New("end is before start")
	ErrNotTask    = errors.New("item is not a task")
	ErrReadOnly   = errors.New("holidays are read-only")
)

// Store is the single owner of calendar items and categories. The view
// layer only ever sees copies; every change goes through a method here,
// after which callers recompute their cells.
type Store struct {
	mu         sync.RWMutex
	items      []model.CalendarItem
	categories []model.Category
}

// New creates an empty store with the default category set
func New() *Store {
	return &Store{categories: model.DefaultCategories()}
}

// Items returns a snapshot of all items in insertion order
func (s *Store) Items() []model.CalendarItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CalendarItem, len(s.items))
	copy(out, s.items)
	return out
}

// Categories returns a snapshot of all categories
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// GetItem returns the item with the exact ID
func (s *Store) GetItem(id string) (model.CalendarItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return model.CalendarItem{}, ErrNotFound
}

// FindByPrefix resolves a short ID prefix to a single item
func (s *Store) FindByPrefix(prefix string) (model.CalendarItem, error) {
	if prefix == "" {
		return model.CalendarItem{}, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *model.CalendarItem
	for i := range s.items {
		if strings.HasPrefix(s.items[i].ID, prefix) {
			if found != nil {
				return model.CalendarItem{}, ErrAmbiguous
			}
			found = &s.items[i]
		}
	}
	if found == nil {
		return model.CalendarItem{}, ErrNotFound
	}
	return *found, nil
}

// CreateItem validates and stores a new item, assigning an ID when the
// caller left it empty. Invariants the core assumes (non-empty title,
// End >= Start, interval >= 1) are enforced here, at the editor boundary.
func (s *Store) CreateItem(item model.CalendarItem) (model.CalendarItem, error) {
	if err := validate(item); err != nil {
		return model.CalendarItem{}, err
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return item, nil
}

// UpdateItem replaces a stored item by ID. Holidays cannot be edited.
func (s *Store) UpdateItem(item model.CalendarItem) error {
	if err := validate(item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != item.ID {
			continue
		}
		if s.items[i].Type == model.TypeHoliday {
			return ErrReadOnly
		}
		item.CreatedAt = s.items[i].CreatedAt
		item.UpdatedAt = time.Now()
		s.items[i] = item
		return nil
	}
	return ErrNotFound
}

// DeleteItem removes an item by ID. Holidays cannot be deleted.
func (s *Store) DeleteItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].Type == model.TypeHoliday {
			return ErrReadOnly
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// ToggleTask flips a task's completed flag and returns the new state.
// Toggling twice restores the prior state; Start/End are untouched.
func (s *Store) ToggleTask(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if !s.items[i].IsTask() {
			return false, ErrNotTask
		}
		s.items[i].Completed = !s.items[i].Completed
		s.items[i].UpdatedAt = time.Now()
		return s.items[i].Completed, nil
	}
	return false, ErrNotFound
}

// Category returns a category by ID
func (s *Store) Category(id string) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cat := range s.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return model.Category{}, fmt.Errorf("category %q: %w", id, ErrNotFound)
}

// ToggleCategory flips a category's visibility and returns the new state
func (s *Store) ToggleCategory(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Visible = !s.categories[i].Visible
			return s.categories[i].Visible, nil
		}
	}
	return false, fmt.Errorf("category %q: %w", id, ErrNotFound)
}

func validate(item model.CalendarItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return ErrEmptyTitle
	}
	if item.End.Before(item.Start) {
		return ErrBadRange
	}
	if item.IsRecurring && item.Recurrence.Interval < 1 {
		return fmt.Errorf("recurrence interval must be >= 1, got %d", item.Recurrence.Interval)
	}
	return nil
}
