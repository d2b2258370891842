// Package bridge describes the girder line geometry that user loads are
// placed on: spans, girders per span and optional end cantilevers.
package bridge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinels for a SpanGirderKey component that applies to every span or girder.
const (
	AllSpans   = -1
	AllGirders = -1
)

// End identifies one end of the bridge.
type End int

const (
	Start End = iota
	Finish
)

func (e End) String() string {
	if e == Start {
		return "start"
	}
	return "end"
}

// Span is one span of the bridge. All girders in a span share its length.
type Span struct {
	Length  float64 `yaml:"length" validate:"gt=0"`
	Girders int     `yaml:"girders" validate:"gte=1,lte=26"`
}

// Bridge is the read-only geometry consulted by load validation.
type Bridge struct {
	Name            string  `yaml:"name,omitempty"`
	Spans           []Span  `yaml:"spans" validate:"required,min=1,dive"`
	StartCantilever float64 `yaml:"start_cantilever,omitempty" validate:"gte=0"`
	EndCantilever   float64 `yaml:"end_cantilever,omitempty" validate:"gte=0"`
}

// ValidationError is returned when the bridge description is inconsistent.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags on the bridge description.
func (b *Bridge) Validate() error {
	if err := validate.Struct(b); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return &ValidationError{fmt.Sprintf("bridge field %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())}
		}
		return fmt.Errorf("validate bridge: %w", err)
	}
	return nil
}

// Default returns a three-span bridge with five girders per span.
func Default() *Bridge {
	return &Bridge{
		Name: "Three Span Bridge",
		Spans: []Span{
			{Length: 30, Girders: 5},
			{Length: 36, Girders: 5},
			{Length: 30, Girders: 5},
		},
	}
}

// SpanCount returns the number of spans.
func (b *Bridge) SpanCount() int {
	return len(b.Spans)
}

// GirderCount returns the number of girders in a span. For AllSpans it
// returns the girder count of the narrowest span.
func (b *Bridge) GirderCount(span int) int {
	if span == AllSpans {
		return b.MinGirderCount()
	}
	if span < 0 || span >= len(b.Spans) {
		return 0
	}
	return b.Spans[span].Girders
}

// MinGirderCount returns the smallest girder count over all spans.
func (b *Bridge) MinGirderCount() int {
	min := 0
	for i, s := range b.Spans {
		if i == 0 || s.Girders < min {
			min = s.Girders
		}
	}
	return min
}

// HasCantilever reports whether the girders cantilever past the given end.
func (b *Bridge) HasCantilever(end End) bool {
	if end == Start {
		return b.StartCantilever > 0
	}
	return b.EndCantilever > 0
}

// CantileverLength returns the cantilever length at an end, zero if none.
func (b *Bridge) CantileverLength(end End) float64 {
	if end == Start {
		return b.StartCantilever
	}
	return b.EndCantilever
}

// SpanLength returns the length of a span. It returns zero for an index
// outside the bridge.
func (b *Bridge) SpanLength(span int) float64 {
	if span < 0 || span >= len(b.Spans) {
		return 0
	}
	return b.Spans[span].Length
}

// Length returns the overall length including cantilevers.
func (b *Bridge) Length() float64 {
	total := b.StartCantilever + b.EndCantilever
	for _, s := range b.Spans {
		total += s.Length
	}
	return total
}

// GirderLabel converts a girder index to its letter designation (0 -> A).
func GirderLabel(girder int) string {
	if girder == AllGirders {
		return "All Girders"
	}
	if girder < 0 {
		return "?"
	}
	label := ""
	for n := girder; ; n = n/26 - 1 {
		label = string(rune('A'+n%26)) + label
		if n < 26 {
			break
		}
	}
	return label
}

// SpanLabel converts a span index to its one-based label.
func SpanLabel(span int) string {
	if span == AllSpans {
		return "All Spans"
	}
	return fmt.Sprintf("%d", span+1)
}

// ParseGirderLabel is the inverse of GirderLabel. "all" selects every girder.
func ParseGirderLabel(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "ALL" {
		return AllGirders, nil
	}
	if s == "" {
		return 0, fmt.Errorf("empty girder label")
	}
	n := 0
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid girder label %q", s)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, nil
}

// ParseSpanLabel is the inverse of SpanLabel. "all" selects every span.
func ParseSpanLabel(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return AllSpans, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid span %q (want a number from 1 or \"all\")", s)
	}
	return n - 1, nil
}
