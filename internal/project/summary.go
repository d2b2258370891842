package project

import (
	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/lrfd"
)

// FactoredTotal is the factored total of one load combination.
type FactoredTotal struct {
	Combination lrfd.LoadCombination
	Force       float64
	Moment      float64
}

// Summary totals the user loads of a project by load case.
type Summary struct {
	Counts   map[load.Kind]int
	Force    lrfd.LoadEffects // total applied force, all girders
	Moment   lrfd.LoadEffects // total applied concentrated moment, all girders
	Factored []FactoredTotal

	GoverningForce float64
	GoverningCombo lrfd.LoadCombination
}

// Summary computes the resultant user load per load case and the factored
// totals for every LRFD combination.
func (d *Document) Summary() Summary {
	s := Summary{Counts: make(map[load.Kind]int)}
	for _, r := range d.Ledger.All() {
		s.Counts[r.Kind()]++
		force, moment := resultant(r, d.Bridge)
		s.Force = s.Force.Add(byCase(r.Base().Case, force))
		s.Moment = s.Moment.Add(byCase(r.Base().Case, moment))
	}
	for _, combo := range lrfd.LoadCombinations {
		s.Factored = append(s.Factored, FactoredTotal{
			Combination: combo,
			Force:       combo.CalculateFactored(s.Force),
			Moment:      combo.CalculateFactored(s.Moment),
		})
	}
	s.GoverningForce, s.GoverningCombo = lrfd.CalculateGoverning(s.Force, lrfd.StrengthCombinations)
	return s
}

func byCase(c load.Case, v float64) lrfd.LoadEffects {
	switch c {
	case load.DC:
		return lrfd.LoadEffects{DC: v}
	case load.DW:
		return lrfd.LoadEffects{DW: v}
	default:
		return lrfd.LoadEffects{LLIM: v}
	}
}

// resultant returns the total force and moment a record applies, summed over
// every span and girder its key expands to.
func resultant(r load.Record, b *bridge.Bridge) (force, moment float64) {
	key := r.Base().Key
	spans := []int{key.Span}
	if key.Span == load.AllSpans {
		spans = spans[:0]
		for i := range b.Spans {
			spans = append(spans, i)
		}
	}

	for _, span := range spans {
		girders := 1
		if key.Girder == load.AllGirders {
			girders = b.GirderCount(span)
		}
		n := float64(girders)

		switch v := r.(type) {
		case load.PointLoad:
			force += n * v.Magnitude
		case load.DistributedLoad:
			length := v.EndLocation - v.StartLocation
			if v.Fractional {
				length *= b.SpanLength(span)
			}
			force += n * 0.5 * (v.WStart + v.WEnd) * length
		case load.MomentLoad:
			moment += n * v.Magnitude
		}
	}
	return force, moment
}
