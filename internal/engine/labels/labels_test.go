package labels

import (
	"errors"
	"testing"
)

func TestResolveBoundaries(t *testing.T) {
	first, err := Resolve(0)
	if err != nil {
		t.Fatalf("Resolve(0) error: %v", err)
	}
	if first != "admiration" {
		t.Errorf("Resolve(0) = %q, want %q", first, "admiration")
	}

	last, err := Resolve(27)
	if err != nil {
		t.Fatalf("Resolve(27) error: %v", err)
	}
	if last != "surprise" {
		t.Errorf("Resolve(27) = %q, want %q", last, "surprise")
	}
}

func TestResolveTotalOverDomain(t *testing.T) {
	seen := make(map[string]bool, Count())
	for i := 0; i < Count(); i++ {
		name, err := Resolve(i)
		if err != nil {
			t.Fatalf("Resolve(%d) error: %v", i, err)
		}
		if name == "" {
			t.Errorf("Resolve(%d) returned empty name", i)
		}
		if seen[name] {
			t.Errorf("duplicate label %q at index %d", name, i)
		}
		seen[name] = true
	}
	if len(seen) != 28 {
		t.Errorf("expected 28 distinct labels, got %d", len(seen))
	}
}

func TestResolveOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 28, 100} {
		_, err := Resolve(idx)
		if err == nil {
			t.Errorf("Resolve(%d) succeeded, want error", idx)
			continue
		}
		if !errors.Is(err, ErrUnknownLabel) {
			t.Errorf("Resolve(%d) error = %v, want ErrUnknownLabel", idx, err)
		}
	}
}

func TestContains(t *testing.T) {
	for _, name := range []string{"joy", "sadness", "neutral"} {
		if !Contains(name) {
			t.Errorf("Contains(%q) = false, want true", name)
		}
	}
	if Contains("despair") {
		t.Error("Contains(\"despair\") = true, want false")
	}
}

func TestColor(t *testing.T) {
	if c := Color("joy"); c != "#FFD166" {
		t.Errorf("Color(joy) = %q, want #FFD166", c)
	}
	// Emotions without a dedicated color fall back to the default.
	if c := Color("remorse"); c != "#073B4C" {
		t.Errorf("Color(remorse) = %q, want default #073B4C", c)
	}
}

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != Count() {
		t.Fatalf("All() length = %d, want %d", len(all), Count())
	}
	if all[17] != "joy" {
		t.Errorf("All()[17] = %q, want joy", all[17])
	}
}
