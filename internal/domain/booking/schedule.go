package booking

import "time"

// Bookable hours of a calendar day. Slots start on the hour between
// FirstSlotHour and the last start that still ends by LastSlotHour.
const (
	FirstSlotHour = 6
	LastSlotHour  = 22
)

type HourSlot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// DayHourSlots enumerates every on-the-hour start between 06:00 and 21:00 of
// the given day and marks each as available when a booking of durationHours
// would fit inside the bookable window without overlapping a taken slot.
// Unavailable slots are reported, not omitted, so a calendar can disable them.
func DayHourSlots(day time.Time, durationHours int, taken []TimeSlot) []HourSlot {
	year, month, dom := day.Date()
	loc := day.Location()

	slots := make([]HourSlot, 0, LastSlotHour-FirstSlotHour)
	for hour := FirstSlotHour; hour < LastSlotHour; hour++ {
		start := time.Date(year, month, dom, hour, 0, 0, 0, loc)
		end := start.Add(time.Duration(durationHours) * time.Hour)

		candidate := TimeSlot{start: start, end: end}
		available := hour+durationHours <= LastSlotHour
		if available {
			for _, t := range taken {
				if candidate.Overlaps(t) {
					available = false
					break
				}
			}
		}

		slots = append(slots, HourSlot{Start: start, End: end, Available: available})
	}
	return slots
}
