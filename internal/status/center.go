// Package status collects problems found in a project after the fact, such
// as a load left on an event that no longer carries live load. Items that
// concern a load are keyed by the load's stable ID.
package status

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/numeric"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/google/uuid"
)

// Severity ranks status items.
type Severity int

const (
	Information Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Information:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Categories of items produced by Refresh.
const (
	CategoryLoad     = "load"
	CategoryTimeline = "timeline"
)

// Item is one entry in the status center. LoadID is zero for items that do
// not concern a single load.
type Item struct {
	ID       string
	LoadID   load.ID
	Severity Severity
	Category string
	Message  string
}

// Center holds the current status items of a project.
type Center struct {
	mu     sync.Mutex
	items  []Item
	logger *slog.Logger
}

// NewCenter returns an empty status center.
func NewCenter() *Center {
	return &Center{logger: slog.Default().With("component", "status")}
}

// Add stores an item and returns its ID, generating one when empty.
func (c *Center) Add(item Item) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	c.items = append(c.items, item)
	c.logger.Debug("status item added", "id", item.ID, "load", item.LoadID, "severity", item.Severity)
	return item.ID
}

// Remove deletes an item by ID.
func (c *Center) Remove(itemID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveByLoad deletes every item that refers to the load and returns how
// many were removed.
func (c *Center) RemoveByLoad(id load.ID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeWhere(func(it Item) bool { return it.LoadID == id })
}

func (c *Center) removeWhere(match func(Item) bool) int {
	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if match(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.items = kept
	return removed
}

// Items returns a copy of all items.
func (c *Center) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Item(nil), c.items...)
}

// ItemsForLoad returns the items that refer to the load.
func (c *Center) ItemsForLoad(id load.ID) []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Item
	for _, it := range c.items {
		if it.LoadID == id {
			out = append(out, it)
		}
	}
	return out
}

// Count returns the number of items.
func (c *Center) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// MaxSeverity returns the highest severity present, Information when empty.
func (c *Center) MaxSeverity() Severity {
	c.mu.Lock()
	defer c.mu.Unlock()
	max := Information
	for _, it := range c.items {
		if it.Severity > max {
			max = it.Severity
		}
	}
	return max
}

// Clear removes every item.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Refresh replaces the load and timeline items with the result of checking
// the current project state. Items in other categories are kept.
func (c *Center) Refresh(ledger *load.Ledger, tl *timeline.Registry, b *bridge.Bridge) {
	var fresh []Item
	if err := tl.Validate(); err != nil {
		fresh = append(fresh, Item{Severity: Warning, Category: CategoryTimeline, Message: err.Error()})
	}
	for _, r := range ledger.All() {
		fresh = append(fresh, Check(r, tl, b)...)
	}

	c.mu.Lock()
	removed := c.removeWhere(func(it Item) bool {
		return it.Category == CategoryLoad || it.Category == CategoryTimeline
	})
	c.mu.Unlock()

	for _, it := range fresh {
		c.Add(it)
	}
	c.logger.Debug("status refreshed", "removed", removed, "added", len(fresh))
}

// Check returns the status items for one load.
func Check(r load.Record, tl *timeline.Registry, b *bridge.Bridge) []Item {
	id := r.Base().ID
	item := func(sev Severity, msg string) Item {
		return Item{LoadID: id, Severity: sev, Category: CategoryLoad, Message: fmt.Sprintf("%s: %s", load.Describe(r), msg)}
	}

	res, err := load.Validate(r, tl, b)
	if err != nil {
		sev := Warning
		if load.IsViolation(err, load.UnknownEvent) || load.IsViolation(err, load.EventTooEarly) {
			sev = Error
		}
		return []Item{item(sev, err.Error())}
	}

	var items []Item
	for _, w := range res.Warnings {
		items = append(items, item(Warning, w.Message))
	}
	if msg := beyondSpan(res.Record, b); msg != "" {
		items = append(items, item(Warning, msg))
	}
	return items
}

// beyondSpan reports an absolute location past the end of its span.
func beyondSpan(r load.Record, b *bridge.Bridge) string {
	span := r.Base().Key.Span
	if span == load.AllSpans {
		return ""
	}
	length := b.SpanLength(span)
	var loc float64
	switch v := r.(type) {
	case load.PointLoad:
		if v.Fractional {
			return ""
		}
		switch {
		case v.StartCantilever:
			length = b.CantileverLength(bridge.Start)
		case v.EndCantilever:
			length = b.CantileverLength(bridge.Finish)
		}
		loc = v.Location
	case load.DistributedLoad:
		if v.Fractional {
			return ""
		}
		loc = v.EndLocation
	default:
		return ""
	}
	if numeric.IsLT(length, loc) {
		return fmt.Sprintf("Location %.3f is beyond the end of the span (length %.3f)", loc, length)
	}
	return ""
}
