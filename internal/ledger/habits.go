package ledger

import (
	"context"
	"time"

	"github.com/Veraticus/money-mastery/internal/model"
)

// HabitUpdate carries the fields an update may change.
type HabitUpdate struct {
	Name        *string
	Description *string
	Category    *model.HabitCategory
	Frequency   *model.HabitFrequency
	TargetDays  *int
	Color       *string
}

// AddHabit appends a new habit and returns it with its generated id.
func (s *Service) AddHabit(ctx context.Context, h model.Habit) model.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	h.ID = s.nextID()
	if h.CompletedDates == nil {
		h.CompletedDates = []string{}
	}
	if h.CreatedDate == "" {
		h.CreatedDate = s.now().Format(time.RFC3339)
	}
	doc.Habits = append(doc.Habits, h)
	s.store.SaveDocument(ctx, doc)
	return h
}

// UpdateHabit shallow-merges the given fields over the habit with the
// given id. Unknown ids are a silent no-op. Completion dates are managed
// exclusively through ToggleHabitCompletion.
func (s *Service) UpdateHabit(ctx context.Context, id string, update HabitUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Habits, id, func(h *model.Habit) {
		merge(&h.Name, update.Name)
		merge(&h.Description, update.Description)
		merge(&h.Category, update.Category)
		merge(&h.Frequency, update.Frequency)
		merge(&h.TargetDays, update.TargetDays)
		merge(&h.Color, update.Color)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteHabit removes the habit with the given id, if present.
func (s *Service) DeleteHabit(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.Habits = removeByID(doc.Habits, id)
	s.store.SaveDocument(ctx, doc)
}

// ToggleHabitCompletion flips membership of the ISO date in the habit's
// completion set: present becomes absent, absent becomes present. Unknown
// habit ids are a silent no-op.
func (s *Service) ToggleHabitCompletion(ctx context.Context, id, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Habits, id, func(h *model.Habit) {
		for i, d := range h.CompletedDates {
			if d == date {
				h.CompletedDates = append(h.CompletedDates[:i], h.CompletedDates[i+1:]...)
				return
			}
		}
		h.CompletedDates = append(h.CompletedDates, date)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}
