package booking

import "testing"

func TestSlots_GridShape(t *testing.T) {
	slots := Slots()

	if len(slots) != SlotCount {
		t.Fatalf("grid has %d slots, want %d", len(slots), SlotCount)
	}
	if slots[0].Label != "06:00 AM" || slots[0].StartMinutes != 360 {
		t.Errorf("first slot = %q at %d, want 06:00 AM at 360", slots[0].Label, slots[0].StartMinutes)
	}
	if slots[len(slots)-1].Label != "09:00 PM" || slots[len(slots)-1].StartMinutes != 1260 {
		t.Errorf("last slot = %q at %d, want 09:00 PM at 1260", slots[len(slots)-1].Label, slots[len(slots)-1].StartMinutes)
	}

	// Chronological, one per hour
	for i := 1; i < len(slots); i++ {
		if slots[i].StartMinutes-slots[i-1].StartMinutes != 60 {
			t.Errorf("slot %d is not one hour after slot %d", i, i-1)
		}
	}
}

func TestSlotLabels(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{360, "06:00 AM"},
		{660, "11:00 AM"},
		{720, "12:00 PM"},
		{780, "01:00 PM"},
		{1260, "09:00 PM"},
	}
	for _, c := range cases {
		if got := slotLabel(c.minutes); got != c.want {
			t.Errorf("slotLabel(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestSlotByLabel(t *testing.T) {
	s, ok := SlotByLabel("12:00 PM")
	if !ok {
		t.Fatal("12:00 PM should resolve")
	}
	if s.StartMinutes != 720 {
		t.Errorf("12:00 PM starts at %d, want 720", s.StartMinutes)
	}

	if _, ok := SlotByLabel("05:00 AM"); ok {
		t.Error("05:00 AM is outside the grid and should not resolve")
	}
	if _, ok := SlotByLabel("12:00"); ok {
		t.Error("24-hour labels should not resolve")
	}
}
