package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWindow    = errors.New("end time must be after start time")
	ErrInvalidDuration  = errors.New("slot duration must be positive")
	ErrInvalidClockTime = errors.New("clock time must be HH:MM")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrTooManySlots     = errors.New("plan produces too many slots")
)

const dateLayout = "2006-01-02"

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, ErrInvalidWindow
	}
	return TimeRange{Start: start, End: end}, nil
}

func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

func (r TimeRange) Equal(other TimeRange) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

func (r TimeRange) String() string {
	return r.Start.Format(time.RFC3339) + "/" + r.End.Format(time.RFC3339)
}

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	hour   int
	minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil || len(s) != len("15:04") {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime{hour: t.Hour(), minute: t.Minute()}, nil
}

func (c ClockTime) Hour() int   { return c.hour }
func (c ClockTime) Minute() int { return c.minute }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// On returns the instant this clock time denotes on the given calendar day in loc.
func (c ClockTime) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.hour, c.minute, 0, 0, loc)
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}
