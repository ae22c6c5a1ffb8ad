package task

import (
	"encoding/json"
	"testing"
)

func TestNewAssignsID(t *testing.T) {
	due, _ := ParseDate("2026-03-01")
	a := New("write report", "", due, Low, "")
	b := New("write report", "", due, Low, "")
	if a.ID == "" || b.ID == "" {
		t.Fatalf("expected ids to be assigned")
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids for identical tasks")
	}
}

func TestNormalizeRepairsLegacyRecords(t *testing.T) {
	legacy := &Task{Title: "old record"}
	legacy.Normalize()
	if legacy.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
	if legacy.Priority != Low {
		t.Fatalf("expected blank priority to default to Low, got %q", legacy.Priority)
	}
	if legacy.Completed {
		t.Fatalf("expected missing completed to stay false")
	}
}

func TestMatchesTuple(t *testing.T) {
	due, _ := ParseDate("2026-03-01")
	a := New("water plants", "the ferns", due, Low, "")
	if !a.Matches("water plants", "the ferns", "2026-03-01") {
		t.Fatalf("expected tuple to match")
	}
	if a.Matches("water plants", "the ferns", "2026-03-02") {
		t.Fatalf("expected different due date not to match")
	}
	if a.Matches("water plants", "", "2026-03-01") {
		t.Fatalf("expected different description not to match")
	}
}

func TestCompletedUnmarshalDefault(t *testing.T) {
	var got Task
	doc := `{"title":"pay rent","dueDate":"2026-03-01"}`
	if err := json.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Completed {
		t.Fatalf("expected completed to default to false")
	}
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := json.Marshal(&d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2026-03-01"` {
		t.Fatalf("unexpected marshal form: %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.String() != "2026-03-01" {
		t.Fatalf("round trip changed the date: %s", back.String())
	}
}

func TestDateUnmarshalTolerant(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not a date"`), &d); err != nil {
		t.Fatalf("expected unparsable date to load as zero, got error: %v", err)
	}
	if d.Valid() {
		t.Fatalf("expected zero date")
	}
	if d.String() != "" {
		t.Fatalf("expected empty string form, got %q", d.String())
	}
}

func TestParsePriority(t *testing.T) {
	cases := map[string]Priority{
		"high":     High,
		"H":        High,
		"Medium":   Medium,
		"med":      Medium,
		"low":      Low,
		"":         Low,
		"whatever": Low,
	}
	for in, want := range cases {
		if got := ParsePriority(in); got != want {
			t.Fatalf("ParsePriority(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStatus(t *testing.T) {
	due, _ := ParseDate("2026-03-01")
	a := New("call dentist", "", due, Low, "")
	if a.Status().String() != "○" {
		t.Fatalf("expected open mark, got %q", a.Status().String())
	}
	a.Complete()
	if a.Status().String() != "✘" {
		t.Fatalf("expected completed mark, got %q", a.Status().String())
	}
}
