package domain

import (
	"errors"
	"fmt"
)

// Weekday names in display order. The backend keys schedules by name, not index.
var WeekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// TimeSlot is a single bookable window inside one day.
type TimeSlot struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// DaySchedule holds the ordered slots for one named weekday.
type DaySchedule struct {
	Day   string     `json:"day"`
	Slots []TimeSlot `json:"slots"`
}

// WeeklySchedule is a listener's availability: exactly one entry per weekday.
type WeeklySchedule []DaySchedule

var (
	ErrDayNotFound    = errors.New("day not in schedule")
	ErrSlotOutOfRange = errors.New("slot index out of range")
	ErrLastSlot       = errors.New("day must retain at least one slot")
	ErrIncompleteSlot = errors.New("time slot missing start or end time")
	ErrMalformedWeek  = errors.New("schedule must contain each weekday exactly once")
)

// DefaultWeeklySchedule builds the schedule preloaded into the creation form:
// weekdays get a morning and an afternoon block, weekends a single midday block.
func DefaultWeeklySchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, 0, len(WeekdayNames))
	for _, day := range WeekdayNames {
		var slots []TimeSlot
		if day == "Saturday" || day == "Sunday" {
			slots = []TimeSlot{{StartTime: "10:00", EndTime: "14:00", IsAvailable: true}}
		} else {
			slots = []TimeSlot{
				{StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
				{StartTime: "13:00", EndTime: "17:00", IsAvailable: true},
			}
		}
		schedule = append(schedule, DaySchedule{Day: day, Slots: slots})
	}
	return schedule
}

// Validate enforces the schedule invariants: every weekday appears exactly
// once and every slot carries both a start and an end time.
func (s WeeklySchedule) Validate() error {
	if len(s) != len(WeekdayNames) {
		return ErrMalformedWeek
	}
	seen := make(map[string]bool, len(WeekdayNames))
	for _, day := range s {
		if seen[day.Day] {
			return ErrMalformedWeek
		}
		seen[day.Day] = true
		if len(day.Slots) == 0 {
			return fmt.Errorf("%s: %w", day.Day, ErrLastSlot)
		}
		for _, slot := range day.Slots {
			if slot.StartTime == "" || slot.EndTime == "" {
				return fmt.Errorf("%s: %w", day.Day, ErrIncompleteSlot)
			}
		}
	}
	for _, name := range WeekdayNames {
		if !seen[name] {
			return ErrMalformedWeek
		}
	}
	return nil
}

// SetSlotStart updates a slot's start time. Editing a slot always marks it
// available again; the form has no way to un-mark it afterwards.
func (s WeeklySchedule) SetSlotStart(day string, index int, start string) error {
	slot, err := s.slot(day, index)
	if err != nil {
		return err
	}
	slot.StartTime = start
	slot.IsAvailable = true
	return nil
}

// SetSlotEnd updates a slot's end time, forcing availability like SetSlotStart.
func (s WeeklySchedule) SetSlotEnd(day string, index int, end string) error {
	slot, err := s.slot(day, index)
	if err != nil {
		return err
	}
	slot.EndTime = end
	slot.IsAvailable = true
	return nil
}

// AddSlot appends a default full-day slot to the named day.
func (s WeeklySchedule) AddSlot(day string) error {
	for i := range s {
		if s[i].Day == day {
			s[i].Slots = append(s[i].Slots, TimeSlot{StartTime: "09:00", EndTime: "17:00", IsAvailable: true})
			return nil
		}
	}
	return ErrDayNotFound
}

// RemoveSlot deletes a slot but refuses to leave the day empty.
func (s WeeklySchedule) RemoveSlot(day string, index int) error {
	for i := range s {
		if s[i].Day != day {
			continue
		}
		if index < 0 || index >= len(s[i].Slots) {
			return ErrSlotOutOfRange
		}
		if len(s[i].Slots) <= 1 {
			return ErrLastSlot
		}
		s[i].Slots = append(s[i].Slots[:index], s[i].Slots[index+1:]...)
		return nil
	}
	return ErrDayNotFound
}

func (s WeeklySchedule) slot(day string, index int) (*TimeSlot, error) {
	for i := range s {
		if s[i].Day != day {
			continue
		}
		if index < 0 || index >= len(s[i].Slots) {
			return nil, ErrSlotOutOfRange
		}
		return &s[i].Slots[index], nil
	}
	return nil, ErrDayNotFound
}
