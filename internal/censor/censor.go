package censor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Range is a half-open span [Start, End) of rune offsets.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of runes covered by r.
func (r Range) Len() int {
	if !r.Valid() {
		return 0
	}
	return r.End - r.Start
}

// Valid reports whether r covers at least one rune.
func (r Range) Valid() bool {
	return r.Start >= 0 && r.End > r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// Set is an ordered set of disjoint ranges. The zero value is empty and ready
// to use.
type Set struct {
	ranges []Range
}

// NewSet builds a set from arbitrary ranges.
func NewSet(ranges ...Range) Set {
	var s Set
	for _, r := range ranges {
		s.Add(r)
	}
	return s
}

// Add inserts r, merging it with any range it overlaps or touches.
func (s *Set) Add(r Range) {
	if !r.Valid() {
		return
	}
	merged := make([]Range, 0, len(s.ranges)+1)
	for _, cur := range s.ranges {
		if cur.End < r.Start || cur.Start > r.End {
			merged = append(merged, cur)
			continue
		}
		r.Start = min(r.Start, cur.Start)
		r.End = max(r.End, cur.End)
	}
	merged = append(merged, r)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Start < merged[j].Start })
	s.ranges = merged
}

// Ranges returns a copy of the ranges in ascending start order.
func (s Set) Ranges() []Range {
	if len(s.ranges) == 0 {
		return nil
	}
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Len returns the number of ranges in the set.
func (s Set) Len() int {
	return len(s.ranges)
}

// Empty reports whether the set holds no ranges.
func (s Set) Empty() bool {
	return len(s.ranges) == 0
}

// Clear removes every range.
func (s *Set) Clear() {
	s.ranges = nil
}

// Contains reports whether the rune at offset is censored.
func (s Set) Contains(offset int) bool {
	i := sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].End > offset })
	return i < len(s.ranges) && s.ranges[i].Start <= offset
}

// Apply replaces every censored rune of text with mask. Ranges past the end
// of text are clamped. The result has the same rune count as text.
func (s Set) Apply(text string, mask rune) string {
	if len(s.ranges) == 0 {
		return text
	}
	runes := []rune(text)
	for _, r := range s.ranges {
		end := min(r.End, len(runes))
		for i := r.Start; i < end; i++ {
			runes[i] = mask
		}
	}
	return string(runes)
}

// Shift keeps the set aligned with a document edit at offset at. A positive
// delta is an insertion of delta runes; a negative delta deletes -delta runes
// starting at at. Ranges collapsed by a deletion are dropped.
func (s *Set) Shift(at, delta int) {
	if delta == 0 || len(s.ranges) == 0 {
		return
	}
	old := s.ranges
	s.ranges = nil
	for _, r := range old {
		if delta > 0 {
			switch {
			case r.Start >= at:
				r.Start += delta
				r.End += delta
			case r.End > at:
				r.End += delta
			}
			s.Add(r)
			continue
		}
		end := at - delta
		r.Start = shiftDeleted(r.Start, at, end)
		r.End = shiftDeleted(r.End, at, end)
		s.Add(r)
	}
}

func shiftDeleted(off, start, end int) int {
	switch {
	case off <= start:
		return off
	case off >= end:
		return off - (end - start)
	default:
		return start
	}
}

// ParseRanges parses a comma-separated list of start:end pairs.
func ParseRanges(list string) (Set, error) {
	var s Set
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, ok := strings.Cut(part, ":")
		if !ok {
			return Set{}, fmt.Errorf("invalid censor range %q: want start:end", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return Set{}, fmt.Errorf("invalid censor range start %q: %w", lo, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return Set{}, fmt.Errorf("invalid censor range end %q: %w", hi, err)
		}
		r := Range{Start: start, End: end}
		if !r.Valid() {
			return Set{}, fmt.Errorf("invalid censor range %q: start must be >= 0 and below end", part)
		}
		s.Add(r)
	}
	return s, nil
}
