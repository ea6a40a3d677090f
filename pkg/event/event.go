// Package event defines the canonical shape of a stored event and its
// field rules.
package event

import (
	"fmt"
	"strings"
)

// Event is the sole persisted entity. The store assigns ID and CreatedAt;
// UpdatedAt is absent until the first update.
type Event struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Date      string     `json:"date"`
	Location  string     `json:"location"`
	Status    Status     `json:"status"`
	CreatedAt Timestamp  `json:"createdAt"`
	UpdatedAt *Timestamp `json:"updatedAt,omitempty"`
}

// Draft carries caller-supplied fields for create and update operations.
// Name, Date and Location are required; Status defaults to Upcoming.
type Draft struct {
	Name     string
	Date     string
	Location string
	Status   Status
}

// MissingFields returns the required field names the draft leaves blank
// after trimming.
func (d Draft) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(d.Location) == "" {
		missing = append(missing, "location")
	}
	return missing
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s %s %s", e.Name, e.Date, e.Location, e.Status)
}
