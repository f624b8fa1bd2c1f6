package booking

import "fmt"

// The booking grid is 16 fixed hourly slots from 06:00 through 21:00,
// labeled on a 12-hour clock and always presented in chronological order.
const (
	SlotCount        = 16
	firstSlotMinutes = 6 * 60
)

// Slot is one cell of the fixed daily booking grid.
type Slot struct {
	Index        int
	StartMinutes int
	Label        string
}

func slotLabel(startMinutes int) string {
	hour := startMinutes / 60
	meridiem := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		display = hour - 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%02d:00 %s", display, meridiem)
}

// Slots returns the full daily grid in chronological order.
func Slots() []Slot {
	slots := make([]Slot, SlotCount)
	for i := range slots {
		start := firstSlotMinutes + i*60
		slots[i] = Slot{Index: i, StartMinutes: start, Label: slotLabel(start)}
	}
	return slots
}

// SlotByLabel resolves a grid label like "06:00 AM" back to its slot.
func SlotByLabel(label string) (Slot, bool) {
	for _, s := range Slots() {
		if s.Label == label {
			return s, true
		}
	}
	return Slot{}, false
}
