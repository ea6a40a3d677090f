package store

import "tableflip.dev/eventdash/pkg/event"

// seedEvents builds the deterministic sample collection written by the first
// Initialize. Ids are fixed 1..5 so the records read the same everywhere.
func seedEvents() []event.Event {
	now := event.Now()
	return []event.Event{
		{
			ID:        1,
			Name:      "Convocation Ceremony",
			Date:      "2026-01-31",
			Location:  "DATC UiTM,Shah Alam",
			Status:    event.Upcoming,
			CreatedAt: now,
		},
		{
			ID:        2,
			Name:      "Final Test",
			Date:      "2025-12-31",
			Location:  "Dewan Seminar",
			Status:    event.Completed,
			CreatedAt: now,
		},
		{
			ID:        3,
			Name:      "Family Dinner",
			Date:      "2026-02-01",
			Location:  "UiTM Hotel",
			Status:    event.Upcoming,
			CreatedAt: now,
		},
		{
			ID:        4,
			Name:      "Charity Run",
			Date:      "2025-11-20",
			Location:  "Eco Grandeur",
			Status:    event.Completed,
			CreatedAt: now,
		},
		{
			ID:        5,
			Name:      "Gym Session",
			Date:      "2026-02-25",
			Location:  "Training Hall",
			Status:    event.Upcoming,
			CreatedAt: now,
		},
	}
}
