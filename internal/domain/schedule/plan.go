package schedule

import (
	"iter"
	"slices"
	"time"
)

// Plan describes one day of availability cut into fixed-length slots.
type Plan struct {
	window   TimeRange
	duration time.Duration
}

type PlanInput struct {
	Date        string
	StartTime   string
	EndTime     string
	DurationMin int
	Location    *time.Location
}

// NewPlan validates the input and rejects plans that would yield more than maxSlots
// slots. maxSlots <= 0 disables the cap.
func NewPlan(in PlanInput, maxSlots int) (*Plan, error) {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	day, err := ParseDate(in.Date, loc)
	if err != nil {
		return nil, err
	}
	startClock, err := ParseClockTime(in.StartTime)
	if err != nil {
		return nil, err
	}
	endClock, err := ParseClockTime(in.EndTime)
	if err != nil {
		return nil, err
	}
	if in.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	window, err := NewTimeRange(startClock.On(day, loc), endClock.On(day, loc))
	if err != nil {
		return nil, err
	}

	p := &Plan{
		window:   window,
		duration: time.Duration(in.DurationMin) * time.Minute,
	}
	if maxSlots > 0 && p.Count() > maxSlots {
		return nil, ErrTooManySlots
	}
	return p, nil
}

func (p *Plan) Window() TimeRange       { return p.window }
func (p *Plan) Duration() time.Duration { return p.duration }

// Count is the number of whole slots that fit in the window.
func (p *Plan) Count() int {
	return int(p.window.Duration() / p.duration)
}

// Slots yields each slot in order. A trailing remainder shorter than the
// duration is dropped. The sequence can be ranged over any number of times.
func (p *Plan) Slots() iter.Seq[TimeRange] {
	return Generate(p.window, p.duration)
}

func (p *Plan) Collect() []TimeRange {
	return slices.Collect(p.Slots())
}

// Generate cuts window into consecutive [start, start+step) ranges.
// A non-positive step yields nothing.
func Generate(window TimeRange, step time.Duration) iter.Seq[TimeRange] {
	return func(yield func(TimeRange) bool) {
		if step <= 0 {
			return
		}
		for cursor := window.Start; !cursor.Add(step).After(window.End); cursor = cursor.Add(step) {
			if !yield(TimeRange{Start: cursor, End: cursor.Add(step)}) {
				return
			}
		}
	}
}
