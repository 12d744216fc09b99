package slots

import (
	"fmt"
	"sort"
	"time"
)

// Granularity is the fixed step size used for all slot arithmetic.
const Granularity = 30 * time.Minute

const layout = "15:04"

// TimeSlot is the start of a bookable interval, formatted "HH:MM" and
// aligned to the granularity.
type TimeSlot string

// Parse validates s as an "HH:MM" slot aligned to the granularity.
func Parse(s string) (TimeSlot, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time slot %q: %w", s, err)
	}

	offset := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	if offset%Granularity != 0 {
		return "", fmt.Errorf("time slot %q is not aligned to %s", s, Granularity)
	}

	return TimeSlot(t.Format(layout)), nil
}

// At composes the slot with a calendar date ("2006-01-02") into a wall-clock
// time in the given location.
func At(date string, slot TimeSlot, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation("2006-01-02 15:04", date+" "+string(slot), loc)
}

// ExpandRange enumerates every slot boundary in [start, end) stepping by
// granularity. Returns nil when end <= start.
func ExpandRange(start, end time.Time, granularity time.Duration) []TimeSlot {
	if granularity <= 0 {
		granularity = Granularity
	}
	if !end.After(start) {
		return nil
	}

	var out []TimeSlot
	for cur := start; cur.Before(end); cur = cur.Add(granularity) {
		out = append(out, TimeSlot(cur.Format(layout)))
	}
	return out
}

// SetEquals reports whether a and b contain exactly the same slots,
// independent of order and multiplicity. Used to detect a drag that
// re-selects an existing schedule block.
func SetEquals(a, b []TimeSlot) bool {
	return ContainsAll(a, b) && ContainsAll(b, a)
}

// ContainsAll reports whether every slot in needle appears in haystack.
func ContainsAll(haystack, needle []TimeSlot) bool {
	set := make(map[TimeSlot]struct{}, len(haystack))
	for _, s := range haystack {
		set[s] = struct{}{}
	}
	for _, s := range needle {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns a new ascending, duplicate-free copy of in. "HH:MM" slots
// order correctly as strings.
func Sorted(in []TimeSlot) []TimeSlot {
	seen := make(map[TimeSlot]struct{}, len(in))
	out := make([]TimeSlot, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Index returns the position of slot in list, or -1.
func Index(list []TimeSlot, slot TimeSlot) int {
	for i, s := range list {
		if s == slot {
			return i
		}
	}
	return -1
}
