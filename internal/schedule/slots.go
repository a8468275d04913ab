package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/skymentor/skymentor-client/pkg/errors"
)

// Availability slots are free-form labels like "Monday 09:00-12:00": a
// weekday name followed by an hour range. Mentors pick individual hours in
// the scheduler UI; consecutive picks collapse into one range label, and
// saving a day replaces that day's previous labels.

var weekdays = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

// Slot is a parsed availability label
type Slot struct {
	Day       string
	StartHour int
	EndHour   int // exclusive
}

// Label renders the slot back into its wire form
func (s Slot) Label() string {
	return fmt.Sprintf("%s %02d:00-%02d:00", s.Day, s.StartHour, s.EndHour)
}

// HourFrom12 parses a 12-hour clock label like "9:00 AM" or "12:00 PM"
// into a 0-23 hour.
func HourFrom12(label string) (int, error) {
	parts := strings.Fields(strings.TrimSpace(label))
	if len(parts) != 2 {
		return 0, errors.InvalidInputError("time", fmt.Sprintf("expected \"H:MM AM/PM\", got %q", label))
	}

	clock := strings.SplitN(parts[0], ":", 2)
	hour, err := strconv.Atoi(clock[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, errors.InvalidInputError("time", fmt.Sprintf("bad hour in %q", label))
	}

	switch strings.ToUpper(parts[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, errors.InvalidInputError("time", fmt.Sprintf("bad meridiem in %q", label))
	}
	return hour, nil
}

// BuildDayLabels turns a set of selected whole hours for one weekday into
// range labels, merging consecutive hours into a single range. Hours are
// deduplicated and sorted first.
func BuildDayLabels(day string, hours []int) ([]string, error) {
	if !weekdays[day] {
		return nil, errors.InvalidInputError("day", fmt.Sprintf("unknown weekday %q", day))
	}
	if len(hours) == 0 {
		return []string{}, nil
	}

	seen := make(map[int]bool, len(hours))
	sorted := make([]int, 0, len(hours))
	for _, h := range hours {
		if h < 0 || h > 23 {
			return nil, errors.InvalidInputError("hour", fmt.Sprintf("hour %d out of range", h))
		}
		if !seen[h] {
			seen[h] = true
			sorted = append(sorted, h)
		}
	}
	sort.Ints(sorted)

	labels := []string{}
	rangeStart := sorted[0]
	prev := sorted[0]
	for _, h := range sorted[1:] {
		if h == prev+1 {
			prev = h
			continue
		}
		labels = append(labels, Slot{Day: day, StartHour: rangeStart, EndHour: prev + 1}.Label())
		rangeStart = h
		prev = h
	}
	labels = append(labels, Slot{Day: day, StartHour: rangeStart, EndHour: prev + 1}.Label())

	return labels, nil
}

// ReplaceDay removes any existing labels for the given weekday and appends
// the new ones, preserving other days untouched.
func ReplaceDay(existing []string, day string, labels []string) []string {
	merged := make([]string, 0, len(existing)+len(labels))
	for _, slot := range existing {
		if !strings.HasPrefix(slot, day) {
			merged = append(merged, slot)
		}
	}
	return append(merged, labels...)
}

// ParseLabel parses a "Monday 09:00-12:00" label. Slots also appear as ISO
// datetimes in the booking flow; those are not range labels and fail here.
func ParseLabel(label string) (Slot, error) {
	parts := strings.Fields(strings.TrimSpace(label))
	if len(parts) != 2 || !weekdays[parts[0]] {
		return Slot{}, errors.InvalidInputError("slot", fmt.Sprintf("not a weekday range label: %q", label))
	}

	bounds := strings.SplitN(parts[1], "-", 2)
	if len(bounds) != 2 {
		return Slot{}, errors.InvalidInputError("slot", fmt.Sprintf("missing hour range in %q", label))
	}

	start, err := parseHourMinute(bounds[0])
	if err != nil {
		return Slot{}, errors.InvalidInputError("slot", fmt.Sprintf("bad start time in %q", label))
	}
	end, err := parseHourMinute(bounds[1])
	if err != nil {
		return Slot{}, errors.InvalidInputError("slot", fmt.Sprintf("bad end time in %q", label))
	}
	if end <= start {
		return Slot{}, errors.InvalidInputError("slot", fmt.Sprintf("empty range in %q", label))
	}

	return Slot{Day: parts[0], StartHour: start, EndHour: end}, nil
}

func parseHourMinute(s string) (int, error) {
	clock := strings.SplitN(s, ":", 2)
	if len(clock) != 2 {
		return 0, fmt.Errorf("missing minutes in %q", s)
	}
	hour, err := strconv.Atoi(clock[0])
	if err != nil || hour < 0 || hour > 24 {
		return 0, fmt.Errorf("bad hour in %q", s)
	}
	// Labels only ever carry whole hours; anything else is not one of ours
	if clock[1] != "00" {
		return 0, fmt.Errorf("non-zero minutes in %q", s)
	}
	return hour, nil
}
