package staff

import (
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"09:00", 540, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"06:00 AM", 360, true},
		{"12:00 AM", 0, true},
		{"12:00 PM", 720, true},
		{"09:00 PM", 1260, true},
		{"01:30 pm", 810, true},
		{"24:00", 0, false},
		{"13:00 PM", 0, false},
		{"09:60", 0, false},
		{"whenever", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.ok && err != nil {
			t.Errorf("ParseClock(%q) error = %v, want %d", c.input, err, c.want)
			continue
		}
		if !c.ok && err == nil {
			t.Errorf("ParseClock(%q) = %d, want error", c.input, got)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{810, "13:30"},
		{1439, "23:59"},
	}
	for _, c := range cases {
		if got := FormatClock(c.minutes); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestShiftContains(t *testing.T) {
	s := Shift{Start: 540, End: 780} // 09:00-13:00

	cases := []struct {
		t    int
		want bool
	}{
		{539, false},
		{540, true},
		{720, true},
		{779, true},
		{780, false}, // end is exclusive for slot candidacy
	}
	for _, c := range cases {
		if got := s.Contains(c.t); got != c.want {
			t.Errorf("Contains(%d) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestShiftMatches_GraceWindow(t *testing.T) {
	s := Shift{Start: 540, End: 1020} // 09:00-17:00

	cases := []struct {
		t    int
		want bool
	}{
		{509, false}, // 08:29, one minute before the grace window opens
		{510, true},  // 08:30, exactly 30 minutes early
		{525, true},  // 08:45
		{540, true},
		{1020, true},  // matchable through the nominal end
		{1021, false}, // after end
	}
	for _, c := range cases {
		if got := s.Matches(c.t); got != c.want {
			t.Errorf("Matches(%d) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestMatchShift_FirstInListOrderWins(t *testing.T) {
	shifts := []Shift{
		{Start: 540, End: 780},  // 09:00-13:00
		{Start: 720, End: 1080}, // 12:00-18:00, overlaps the first
	}

	matched, idx, ok := MatchShift(shifts, 750) // 12:30 fits both
	if !ok {
		t.Fatal("expected a match at 12:30")
	}
	if idx != 0 || matched != shifts[0] {
		t.Errorf("MatchShift picked shift %d (%v), want declaration-order first", idx, matched)
	}
}

func TestMatchShift_NoMatch(t *testing.T) {
	shifts := []Shift{{Start: 540, End: 780}}

	if _, _, ok := MatchShift(shifts, 300); ok {
		t.Error("05:00 should not match a 09:00-13:00 shift")
	}
	if _, _, ok := MatchShift(nil, 600); ok {
		t.Error("no shifts should never match")
	}
}
