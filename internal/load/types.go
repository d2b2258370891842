// Package load holds the user defined loads of a bridge project: the load
// records, the ledger that owns them, the rules a record must satisfy before
// it is accepted, and the reversible transactions that change the ledger.
package load

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"gopkg.in/yaml.v3"
)

// ID is the stable identifier of a load. IDs are unique across all kinds
// and never reused within a ledger.
type ID uint64

// Sentinels for a SpanGirderKey component.
const (
	AllSpans   = bridge.AllSpans
	AllGirders = bridge.AllGirders
)

// Kind is the variant of a load record.
type Kind int

const (
	Point Kind = iota
	Distributed
	Moment
)

// Kinds lists every kind in ledger order.
var Kinds = []Kind{Point, Distributed, Moment}

func (k Kind) String() string {
	switch k {
	case Point:
		return "Point"
	case Distributed:
		return "Distributed"
	case Moment:
		return "Moment"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a name such as "point" to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown load kind %q", s)
}

func (k Kind) MarshalYAML() (interface{}, error) {
	return strings.ToLower(k.String()), nil
}

func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseKind(value.Value)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Case is the load case a user load contributes to.
type Case int

const (
	DC Case = iota
	DW
	LLIM
)

// Cases lists every load case.
var Cases = []Case{DC, DW, LLIM}

func (c Case) String() string {
	switch c {
	case DC:
		return "DC"
	case DW:
		return "DW"
	case LLIM:
		return "LL+IM"
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

// ParseCase accepts "DC", "DW", "LL+IM" or "LLIM", in any letter case.
func ParseCase(s string) (Case, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DC":
		return DC, nil
	case "DW":
		return DW, nil
	case "LL+IM", "LLIM", "LL_IM":
		return LLIM, nil
	}
	return 0, fmt.Errorf("unknown load case %q (want DC, DW or LLIM)", s)
}

func (c Case) MarshalYAML() (interface{}, error) {
	if c == LLIM {
		return "LLIM", nil
	}
	return c.String(), nil
}

func (c *Case) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseCase(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText and UnmarshalText let the journal store a case by name.
func (c Case) MarshalText() ([]byte, error) {
	if c == LLIM {
		return []byte("LLIM"), nil
	}
	return []byte(c.String()), nil
}

func (c *Case) UnmarshalText(text []byte) error {
	parsed, err := ParseCase(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// SpanGirderKey targets a span and girder. Either component may be the
// AllSpans / AllGirders sentinel.
type SpanGirderKey struct {
	Span   int `yaml:"span" json:"span"`
	Girder int `yaml:"girder" json:"girder"`
}

func (k SpanGirderKey) String() string {
	return fmt.Sprintf("Span %s, Girder %s", bridge.SpanLabel(k.Span), bridge.GirderLabel(k.Girder))
}

// DistributionType tells a uniform distributed load from a trapezoidal one.
// The zero value is Trapezoidal so a record only spans the full girder when
// it asks to.
type DistributionType int

const (
	Trapezoidal DistributionType = iota
	Uniform
)

func (d DistributionType) String() string {
	if d == Uniform {
		return "Uniform"
	}
	return "Trapezoidal"
}

func (d DistributionType) MarshalYAML() (interface{}, error) {
	return strings.ToLower(d.String()), nil
}

func (d *DistributionType) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "uniform":
		*d = Uniform
	case "trapezoidal":
		*d = Trapezoidal
	default:
		return fmt.Errorf("unknown distribution %q", value.Value)
	}
	return nil
}
