package timeutil

import (
	"testing"
	"time"
)

func TestParseOffsetSimple(t *testing.T) {
	dur, label, err := ParseOffset("3d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 3 * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "3d" {
		t.Fatalf("expected label 3d, got %s", label)
	}
}

func TestParseOffsetComposite(t *testing.T) {
	dur, label, err := ParseOffset("1w2d6h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24 + 2*24 + 6) * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d6h" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseOffsetNormalizesUnits(t *testing.T) {
	dur, label, err := ParseOffset("2 weeks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 14 * 24 * time.Hour; dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "2w" {
		t.Fatalf("expected label 2w, got %s", label)
	}
}

func TestParseOffsetInvalid(t *testing.T) {
	for _, input := range []string{"", "noop", "3x", "-1d"} {
		if _, _, err := ParseOffset(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
