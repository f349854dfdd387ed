package attendance

import (
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestCheckInWindowOpen(t *testing.T) {
	tests := []struct {
		name string
		at   attendance.TimeOfDay
		want bool
	}{
		{"before opening", attendance.NewTimeOfDay(7, 59), false},
		{"at opening", attendance.NewTimeOfDay(8, 0), true},
		{"mid window", attendance.NewTimeOfDay(8, 30), true},
		{"at closing", attendance.NewTimeOfDay(9, 0), true},
		{"after closing", attendance.NewTimeOfDay(9, 1), false},
		{"afternoon", attendance.NewTimeOfDay(14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkInWindowOpen(tt.at))
		})
	}
}

func TestClassifyCheckIn(t *testing.T) {
	assert.Equal(t, attendance.StatusPresent, classifyCheckIn(attendance.NewTimeOfDay(8, 0)))
	assert.Equal(t, attendance.StatusPresent, classifyCheckIn(attendance.NewTimeOfDay(8, 30)))
	assert.Equal(t, attendance.StatusLate, classifyCheckIn(attendance.NewTimeOfDay(8, 31)))
	assert.Equal(t, attendance.StatusLate, classifyCheckIn(attendance.NewTimeOfDay(9, 0)))
}

func TestCanCheckOut(t *testing.T) {
	assert.False(t, canCheckOut(attendance.NewTimeOfDay(16, 59)))
	assert.True(t, canCheckOut(attendance.NewTimeOfDay(17, 0)))
	assert.True(t, canCheckOut(attendance.NewTimeOfDay(21, 30)))
}

func TestOvertimeHoursAt(t *testing.T) {
	tests := []struct {
		name     string
		checkOut attendance.TimeOfDay
		want     string
	}{
		{"on the hour", attendance.NewTimeOfDay(17, 0), "0"},
		{"quarter past six", attendance.NewTimeOfDay(18, 15), "1.25"},
		{"half past seven", attendance.NewTimeOfDay(19, 30), "2.5"},
		{"one minute", attendance.NewTimeOfDay(17, 1), "0.0166666666666667"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overtimeHoursAt(tt.checkOut)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 14, 8, 15, 0, 0, time.UTC)
	b := time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, sameDay(a, b))
	assert.False(t, sameDay(a, c))
}

func TestDateOnly(t *testing.T) {
	d := dateOnly(time.Date(2025, 3, 14, 17, 45, 12, 99, time.Local))
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)
}
