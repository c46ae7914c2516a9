package domain

import "time"

// Schedule describes the fixed daily operating window of the shop
// The closing hour itself is NOT bookable: with the defaults 09:00-19:00 and a
// 30-minute step a day yields exactly 20 slots, 09:00 through 18:30
type Schedule struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
	Location    *time.Location
}

// DefaultSchedule returns the schedule used when no configuration overrides it
func DefaultSchedule(loc *time.Location) Schedule {
	return Schedule{
		OpenHour:    DefaultOpenHour,
		CloseHour:   DefaultCloseHour,
		SlotMinutes: DefaultSlotMinutes,
		Location:    loc,
	}
}

// SlotsForDay generates the canonical ordered slot grid for a calendar day
// Pure function of (date, schedule); slots are absolute instants in the
// schedule's time zone
func (s Schedule) SlotsForDay(date time.Time) []time.Time {
	open := time.Date(date.Year(), date.Month(), date.Day(), s.OpenHour, 0, 0, 0, s.Location)
	close := time.Date(date.Year(), date.Month(), date.Day(), s.CloseHour, 0, 0, 0, s.Location)
	step := time.Duration(s.SlotMinutes) * time.Minute

	slots := make([]time.Time, 0, int(close.Sub(open)/step))
	for cur := open; cur.Before(close); cur = cur.Add(step) {
		slots = append(slots, cur)
	}
	return slots
}

// ContainsSlot returns true if the instant lies exactly on the day grid:
// inside the operating window and aligned to the slot step
func (s Schedule) ContainsSlot(t time.Time) bool {
	local := t.In(s.Location)
	for _, slot := range s.SlotsForDay(local) {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}

// DayBounds returns the [00:00, 24:00) bounds of the instant's calendar day
// in the schedule's time zone
// Used instead of string-prefix date comparison, which breaks across zones
func (s Schedule) DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(s.Location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.Location)
	return start, start.AddDate(0, 0, 1)
}

// DayBoundsForDate returns the [00:00, 24:00) bounds of a calendar date
// The date's year/month/day components are taken as-is: a parsed "2026-03-14"
// carries UTC midnight, and converting that instant to the schedule's zone
// would shift it to the previous day
func (s Schedule) DayBoundsForDate(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.Location)
	return start, start.AddDate(0, 0, 1)
}
