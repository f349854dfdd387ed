package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
)

// Workday boundaries, minutes since midnight.
const (
	checkInOpensAt  = attendance.TimeOfDay(8 * 60)
	checkInClosesAt = attendance.TimeOfDay(9 * 60)
	lateAfter       = attendance.TimeOfDay(8*60 + 30)
	workdayEndsAt   = attendance.TimeOfDay(17 * 60)
)

var sixty = decimal.NewFromInt(60)

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// dateOnly drops the time portion so a date compares cleanly against
// date-typed columns.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// checkInWindowOpen reports whether t falls inside the inclusive
// [08:00, 09:00] check-in window.
func checkInWindowOpen(t attendance.TimeOfDay) bool {
	return t >= checkInOpensAt && t <= checkInClosesAt
}

// classifyCheckIn marks any arrival after 08:30 as late.
func classifyCheckIn(t attendance.TimeOfDay) attendance.Status {
	if t > lateAfter {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// canCheckOut reports whether t has reached the 17:00 end of the workday.
func canCheckOut(t attendance.TimeOfDay) bool {
	return t >= workdayEndsAt
}

// overtimeHoursAt converts time worked past 17:00 into fractional hours, so
// an 18:15 check-out yields 1.25.
func overtimeHoursAt(checkOut attendance.TimeOfDay) decimal.Decimal {
	if checkOut <= workdayEndsAt {
		return decimal.Zero
	}
	minutes := int64(checkOut - workdayEndsAt)
	return decimal.NewFromInt(minutes).Div(sixty)
}
