package load

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/timeline"
)

// Common is the part shared by every load variant.
type Common struct {
	ID          ID               `yaml:"id" json:"id"`
	Key         SpanGirderKey    `yaml:"key" json:"key"`
	Case        Case             `yaml:"load_case" json:"load_case"`
	EventID     timeline.EventID `yaml:"event" json:"event"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
}

// Record is a load of any kind. Records are values: changing one never
// changes the copy held by a ledger or transaction.
type Record interface {
	Kind() Kind
	Base() Common
	withBase(c Common) Record
}

// PointLoad is a concentrated force on a girder.
type PointLoad struct {
	Common          `yaml:",inline"`
	Magnitude       float64 `yaml:"magnitude" json:"magnitude"`
	Location        float64 `yaml:"location" json:"location"`
	Fractional      bool    `yaml:"fractional" json:"fractional"`
	StartCantilever bool    `yaml:"start_cantilever,omitempty" json:"start_cantilever,omitempty"`
	EndCantilever   bool    `yaml:"end_cantilever,omitempty" json:"end_cantilever,omitempty"`
}

func (p PointLoad) Kind() Kind   { return Point }
func (p PointLoad) Base() Common { return p.Common }

func (p PointLoad) withBase(c Common) Record {
	p.Common = c
	return p
}

// DistributedLoad is a uniform or trapezoidal line load.
type DistributedLoad struct {
	Common        `yaml:",inline"`
	Type          DistributionType `yaml:"type" json:"type"`
	WStart        float64          `yaml:"w_start" json:"w_start"`
	WEnd          float64          `yaml:"w_end" json:"w_end"`
	StartLocation float64          `yaml:"start_location" json:"start_location"`
	EndLocation   float64          `yaml:"end_location" json:"end_location"`
	Fractional    bool             `yaml:"fractional" json:"fractional"`
}

func (d DistributedLoad) Kind() Kind   { return Distributed }
func (d DistributedLoad) Base() Common { return d.Common }

func (d DistributedLoad) withBase(c Common) Record {
	d.Common = c
	return d
}

// IsUniform reports whether the load has the same intensity along its length.
func (d DistributedLoad) IsUniform() bool {
	return d.Type == Uniform || d.WStart == d.WEnd
}

// MomentLoad is a concentrated moment applied at one end of a girder.
type MomentLoad struct {
	Common     `yaml:",inline"`
	Magnitude  float64 `yaml:"magnitude" json:"magnitude"`
	Location   float64 `yaml:"location" json:"location"`
	Fractional bool    `yaml:"fractional" json:"fractional"`
}

func (m MomentLoad) Kind() Kind   { return Moment }
func (m MomentLoad) Base() Common { return m.Common }

func (m MomentLoad) withBase(c Common) Record {
	m.Common = c
	return m
}

// WithID returns a copy of r carrying the given ID.
func WithID(r Record, id ID) Record {
	c := r.Base()
	c.ID = id
	return r.withBase(c)
}

// WithEvent returns a copy of r assigned to the given event.
func WithEvent(r Record, event timeline.EventID) Record {
	c := r.Base()
	c.EventID = event
	return r.withBase(c)
}

// WithKey returns a copy of r targeting the given span and girder.
func WithKey(r Record, key SpanGirderKey) Record {
	c := r.Base()
	c.Key = key
	return r.withBase(c)
}

// Name returns the display name of a kind, "Point Load" for example.
func Name(k Kind) string {
	return fmt.Sprintf("%s Load", k)
}

// Magnitude returns the value shown in the magnitude column. For a
// distributed load this is its start intensity.
func Magnitude(r Record) float64 {
	switch v := r.(type) {
	case PointLoad:
		return v.Magnitude
	case DistributedLoad:
		return v.WStart
	case MomentLoad:
		return v.Magnitude
	}
	return 0
}

// Describe formats a record as "Point Load: Span 1, Girder A, <description>".
func Describe(r Record) string {
	c := r.Base()
	return fmt.Sprintf("%s: %s, %s", Name(r.Kind()), c.Key, c.Description)
}
