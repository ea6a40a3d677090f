package event

import (
	"encoding/json"
	"time"
)

// Timestamp wraps time.Time so createdAt/updatedAt round-trip through JSON
// as RFC3339 strings, matching the stored record layout.
type Timestamp struct {
	time.Time
}

// Now returns the current moment as a Timestamp, truncated to the second in
// UTC so a stamped record compares equal to its JSON round trip.
func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC().Truncate(time.Second)}
}

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(raw)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
