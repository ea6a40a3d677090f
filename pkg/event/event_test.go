package event

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "Upcoming", want: Upcoming},
		{in: "completed", want: Completed},
		{in: "CANCELLED", want: Cancelled},
		{in: "  postponed  ", want: Postponed},
		{in: "", want: Upcoming},
		{in: "done", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q) returned %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStatusKnown(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.Known() {
			t.Errorf("%v.Known() = false", s)
		}
	}
	if Status("Mystery").Known() {
		t.Error(`Status("Mystery").Known() = true`)
	}
}

func TestStatusColorIsTotal(t *testing.T) {
	for _, s := range append(AllStatuses(), Status("Mystery"), Status("")) {
		if s.Color() == nil {
			t.Errorf("%q.Color() = nil", s)
		}
	}
}

func TestParseDate(t *testing.T) {
	if got, ok := ParseDate("2026-01-31"); !ok || got != time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC) {
		t.Errorf("ParseDate(day form) = %v, %v", got, ok)
	}
	if got, ok := ParseDate("2026-01-31T19:30"); !ok || got != time.Date(2026, time.January, 31, 19, 30, 0, 0, time.UTC) {
		t.Errorf("ParseDate(time form) = %v, %v", got, ok)
	}
	for _, bad := range []string{"", "soon", "31-01-2026", "2026-01-31T25:00"} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("ParseDate(%q) parsed, want failure", bad)
		}
	}
}

func TestHasTime(t *testing.T) {
	if (Event{Date: "2026-01-31"}).HasTime() {
		t.Error("date-only event reports a time component")
	}
	if !(Event{Date: "2026-01-31T08:00"}).HasTime() {
		t.Error("timed event reports no time component")
	}
}

func TestDay(t *testing.T) {
	in := time.Date(2026, time.January, 31, 19, 30, 45, 12, time.UTC)
	want := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	if got := Day(in); got != want {
		t.Errorf("Day() = %v, want %v", got, want)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := Now()
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(ts.Time) {
		t.Errorf("round trip changed the moment: %v != %v", back, ts)
	}
}

func TestTimestampZero(t *testing.T) {
	b, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `""` {
		t.Errorf("zero timestamp marshals to %s, want \"\"", b)
	}
	var back Timestamp
	if err := json.Unmarshal([]byte(`""`), &back); err != nil {
		t.Fatal(err)
	}
	if !back.IsZero() {
		t.Errorf("empty string unmarshals to %v, want zero", back)
	}
}

func TestEventJSONOmitsUnsetUpdatedAt(t *testing.T) {
	e := Event{
		ID:        1,
		Name:      "Convocation Ceremony",
		Date:      "2026-01-31",
		Location:  "DATC UiTM,Shah Alam",
		Status:    Upcoming,
		CreatedAt: Now(),
	}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "updatedAt") {
		t.Errorf("unset updatedAt serialized: %s", b)
	}

	stamp := Now()
	e.UpdatedAt = &stamp
	b, err = json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "updatedAt") {
		t.Errorf("set updatedAt missing: %s", b)
	}
}

func TestDraftMissingFields(t *testing.T) {
	tests := []struct {
		draft Draft
		want  []string
	}{
		{draft: Draft{Name: "a", Date: "b", Location: "c"}, want: nil},
		{draft: Draft{Name: "  ", Date: "b", Location: "c"}, want: []string{"name"}},
		{draft: Draft{}, want: []string{"name", "date", "location"}},
		{draft: Draft{Date: "2026-01-01"}, want: []string{"name", "location"}},
	}
	for _, tt := range tests {
		if got := tt.draft.MissingFields(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("MissingFields(%+v) = %v, want %v", tt.draft, got, tt.want)
		}
	}
}
