package load

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexiusacademia/girderloads/internal/timeline"
)

// SortColumn selects the key used to order a load list.
type SortColumn int

const (
	ByType SortColumn = iota
	ByEvent
	ByCase
	BySpan
	ByGirder
	ByLocation
	ByMagnitude
	ByDescription
)

var sortColumnNames = []string{"type", "event", "case", "span", "girder", "location", "magnitude", "description"}

func (c SortColumn) String() string {
	if int(c) < len(sortColumnNames) {
		return sortColumnNames[c]
	}
	return fmt.Sprintf("column(%d)", int(c))
}

// ParseSortColumn converts a column name such as "magnitude" to a SortColumn.
func ParseSortColumn(s string) (SortColumn, error) {
	for i, name := range sortColumnNames {
		if strings.EqualFold(s, name) {
			return SortColumn(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sort column %q (want one of %s)", s, strings.Join(sortColumnNames, ", "))
}

// Sort orders records in place by one column. Records with equal keys keep
// ID order. eventIndex resolves an event to its position in the timeline.
func Sort(records []Record, col SortColumn, ascending bool, eventIndex func(timeline.EventID) int) {
	order := func(a, b Record) int {
		switch col {
		case ByType:
			return compare(int(a.Kind()), int(b.Kind()))
		case ByEvent:
			return compare(eventIndex(a.Base().EventID), eventIndex(b.Base().EventID))
		case ByCase:
			return compare(int(a.Base().Case), int(b.Base().Case))
		case BySpan:
			return compare(a.Base().Key.Span, b.Base().Key.Span)
		case ByGirder:
			return compare(a.Base().Key.Girder, b.Base().Key.Girder)
		case ByLocation:
			return compare(locationKey(a), locationKey(b))
		case ByMagnitude:
			return compare(Magnitude(a), Magnitude(b))
		case ByDescription:
			return compare(strings.ToLower(a.Base().Description), strings.ToLower(b.Base().Description))
		}
		return 0
	}

	sort.SliceStable(records, func(i, j int) bool {
		c := order(records[i], records[j])
		if c == 0 {
			return records[i].Base().ID < records[j].Base().ID
		}
		if ascending {
			return c < 0
		}
		return c > 0
	})
}

// locationKey orders fractional locations before absolute ones by negating
// them. A uniform distributed load sorts as zero.
func locationKey(r Record) float64 {
	sign := func(fractional bool) float64 {
		if fractional {
			return -1
		}
		return 1
	}
	switch v := r.(type) {
	case PointLoad:
		return sign(v.Fractional) * v.Location
	case DistributedLoad:
		if v.Type == Uniform {
			return 0
		}
		return sign(v.Fractional) * v.StartLocation
	case MomentLoad:
		return sign(v.Fractional) * v.Location
	}
	return 0
}

func compare[T int | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
