package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Add, edit, delete and list user defined loads",
	Long: `Manage the user defined loads of the project.

Subcommands:
  add      - Add a point, distributed or moment load
  edit     - Change fields of a load
  delete   - Delete one or more loads
  list     - List loads
  fix      - Delete loads whose timeline event no longer exists

Loads are keyed by span (1, 2, ... or "all") and girder (A, B, ... or
"all"). Load cases are DC, DW and LL+IM; LL+IM loads can only be placed
on the event that opens the bridge to traffic.`,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

// The load flags are registered per command without shared variables, so
// each command keeps its own defaults. Values are read back by name.

func addCommonLoadFlags(f *pflag.FlagSet) {
	f.String("span", "1", "Span number, or \"all\"")
	f.String("girder", "A", "Girder letter, or \"all\"")
	f.String("case", "DC", "Load case: DC, DW or LL+IM")
	f.Int64("event", -1, "Timeline event ID (default: first event offered for the load case)")
	f.StringP("description", "d", "", "Description")

	f.String("new-event", "", "Create a timeline event with this description and place the load on it")
	f.Float64("new-event-day", 0, "Start day of the new event")
	f.Float64("new-event-duration", 1, "Duration of the new event in days")
	f.Bool("adjust", false, "Push later events back when the new event overlaps them")
}

func addPointFlags(f *pflag.FlagSet) {
	f.Float64P("magnitude", "m", 0, "Magnitude of the force")
	f.Float64P("location", "l", 0.5, "Location from the start of the span")
	f.Bool("fractional", true, "Location is a fraction of the span length")
	f.Bool("start-cantilever", false, "Apply on the start cantilever (span 1 only)")
	f.Bool("end-cantilever", false, "Apply on the end cantilever (last span only)")
}

func addDistributedFlags(f *pflag.FlagSet) {
	f.Float64("w-start", 0, "Intensity at the start location")
	f.Float64("w-end", 0, "Intensity at the end location (default: same as --w-start)")
	f.Float64("start", 0, "Start location")
	f.Float64("end", 1, "End location")
	f.Bool("uniform", false, "Uniform load over the full span")
	if f.Lookup("fractional") == nil {
		f.Bool("fractional", true, "Locations are fractions of the span length")
	}
}

func addMomentFlags(f *pflag.FlagSet) {
	if f.Lookup("magnitude") == nil {
		f.Float64P("magnitude", "m", 0, "Magnitude of the moment")
	}
	if f.Lookup("location") == nil {
		f.Float64P("location", "l", 0, "0 for the start of the span, 1 for the end")
	}
}

// flagValues reads registered flags by name. Lookups of flags that are not
// registered return zero values; they never happen for a well formed
// command.
type flagValues struct{ f *pflag.FlagSet }

func (v flagValues) str(name string) string {
	s, _ := v.f.GetString(name)
	return s
}

func (v flagValues) num(name string) float64 {
	n, _ := v.f.GetFloat64(name)
	return n
}

func (v flagValues) on(name string) bool {
	b, _ := v.f.GetBool(name)
	return b
}

// applyLoadFlags copies the flags that were set on the command line onto r.
// With all set, every flag is applied, using its default when not given.
func applyLoadFlags(f *pflag.FlagSet, r load.Record, all bool) (load.Record, error) {
	set := func(name string) bool {
		return f.Lookup(name) != nil && (all || f.Changed(name))
	}
	fv := flagValues{f}

	c := r.Base()
	if set("span") {
		span, err := bridge.ParseSpanLabel(fv.str("span"))
		if err != nil {
			return nil, err
		}
		c.Key.Span = span
	}
	if set("girder") {
		girder, err := bridge.ParseGirderLabel(fv.str("girder"))
		if err != nil {
			return nil, err
		}
		c.Key.Girder = girder
	}
	if set("case") {
		lc, err := load.ParseCase(fv.str("case"))
		if err != nil {
			return nil, err
		}
		c.Case = lc
	}
	if f.Changed("event") {
		id, _ := f.GetInt64("event")
		c.EventID = timeline.EventID(id)
	}
	if set("description") {
		c.Description = fv.str("description")
	}

	switch v := r.(type) {
	case load.PointLoad:
		v.Common = withBase(v.Common, c)
		if set("magnitude") {
			v.Magnitude = fv.num("magnitude")
		}
		if set("location") {
			v.Location = fv.num("location")
		}
		if set("fractional") {
			v.Fractional = fv.on("fractional")
		}
		if set("start-cantilever") {
			v.StartCantilever = fv.on("start-cantilever")
		}
		if set("end-cantilever") {
			v.EndCantilever = fv.on("end-cantilever")
		}
		return v, nil
	case load.DistributedLoad:
		v.Common = withBase(v.Common, c)
		if set("uniform") {
			v.Type = load.Trapezoidal
			if fv.on("uniform") {
				v.Type = load.Uniform
			}
		}
		if set("w-start") {
			v.WStart = fv.num("w-start")
		}
		switch {
		case f.Changed("w-end"):
			v.WEnd = fv.num("w-end")
		case all:
			v.WEnd = v.WStart
		}
		if set("start") {
			v.StartLocation = fv.num("start")
		}
		if set("end") {
			v.EndLocation = fv.num("end")
		}
		if set("fractional") {
			v.Fractional = fv.on("fractional")
		}
		return v, nil
	case load.MomentLoad:
		v.Common = withBase(v.Common, c)
		if set("magnitude") {
			v.Magnitude = fv.num("magnitude")
		}
		if set("location") {
			v.Location = fv.num("location")
		}
		v.Fractional = true
		return v, nil
	}
	return nil, fmt.Errorf("unsupported load %T", r)
}

func withBase(dst, src load.Common) load.Common {
	src.ID = dst.ID
	return src
}

// pendingEvent returns the event requested with --new-event, if any.
func pendingEvent(f *pflag.FlagSet) *timeline.Event {
	fv := flagValues{f}
	if fv.str("new-event") == "" {
		return nil
	}
	return &timeline.Event{
		ID:          timeline.InvalidEventID,
		Description: fv.str("new-event"),
		Day:         fv.num("new-event-day"),
		Duration:    fv.num("new-event-duration"),
	}
}

// explain turns document errors into a message with a hint where one helps.
func explain(err error) string {
	var conflict *timeline.ConflictError
	if errors.As(err, &conflict) && conflict.Adjustable() {
		return err.Error() + " (use --adjust to move the later events)"
	}
	var verr *load.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("%s [%s]", verr.Message, verr.Field)
	}
	if errors.Is(err, project.ErrEventNotOffered) {
		return err.Error() + " (see 'girderloads event list')"
	}
	return err.Error()
}

func reportOutcome(s *project.Session, verb string, out project.Outcome) {
	if out.Unchanged {
		warn("%s #%d unchanged", load.Name(out.Record.Kind()), out.ID)
		return
	}
	success("%s %s #%d on %s", verb, load.Name(out.Record.Kind()), out.ID, s.Timeline.Label(out.Record.Base().EventID))
	if out.NewEvent != timeline.InvalidEventID {
		success("Created %s", s.Timeline.Label(out.NewEvent))
	}
	for _, w := range out.Warnings {
		warn("%s", w.Message)
	}
	for _, item := range s.Status.ItemsForLoad(out.ID) {
		fmt.Printf("  %s %s\n", severityIcon(item.Severity), item.Message)
	}
}

func parseLoadIDs(args []string) ([]load.ID, error) {
	ids := make([]load.ID, 0, len(args))
	for _, a := range args {
		n, err := strconv.ParseUint(a, 10, 64)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("invalid load ID %q", a)
		}
		ids = append(ids, load.ID(n))
	}
	return ids, nil
}
