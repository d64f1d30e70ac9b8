package domain

import "time"

// RegionOffset is the fixed UTC offset all promotion and reporting boundaries
// are computed in. It does not follow the host's local zone.
const RegionOffset = 7 * time.Hour

// RegionZone is the reference zone (UTC+7) for calendar days and weeks.
var RegionZone = time.FixedZone("UTC+7", int(RegionOffset.Seconds()))

// DayStart returns 00:00 of the regional calendar day containing t.
func DayStart(t time.Time) time.Time {
	r := t.In(RegionZone)
	return time.Date(r.Year(), r.Month(), r.Day(), 0, 0, 0, 0, RegionZone)
}

// NextDayStart returns 00:00 of the regional day after the one containing t.
func NextDayStart(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same regional calendar day.
func SameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}

// WeekStart returns Monday 00:00 of the regional week containing t.
func WeekStart(t time.Time) time.Time {
	day := DayStart(t)
	// Weekday is 0 for Sunday; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// NextWeekStart returns Monday 00:00 of the week after the one containing t.
func NextWeekStart(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7)
}

// SameWeek reports whether a and b fall in the same regional Monday-based week.
func SameWeek(a, b time.Time) bool {
	return WeekStart(a).Equal(WeekStart(b))
}

// MonthStart returns 00:00 on the first day of the regional month containing t.
func MonthStart(t time.Time) time.Time {
	r := t.In(RegionZone)
	return time.Date(r.Year(), r.Month(), 1, 0, 0, 0, 0, RegionZone)
}
