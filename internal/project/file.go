package project

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk layout of a project.
type fileFormat struct {
	Name     string            `yaml:"name"`
	Mode     Mode              `yaml:"mode"`
	Bridge   bridge.Bridge     `yaml:"bridge"`
	Timeline timeline.Snapshot `yaml:"timeline"`
	Loads    loadsSection      `yaml:"loads"`
}

type loadsSection struct {
	NextID      load.ID                `yaml:"next_id"`
	Point       []load.PointLoad       `yaml:"point,omitempty"`
	Distributed []load.DistributedLoad `yaml:"distributed,omitempty"`
	Moment      []load.MomentLoad      `yaml:"moment,omitempty"`
}

// Marshal encodes the document in the project file format.
func (d *Document) Marshal() ([]byte, error) {
	f := fileFormat{
		Name:     d.Name,
		Mode:     d.Mode,
		Bridge:   *d.Bridge,
		Timeline: d.Timeline.Snapshot(),
		Loads:    loadsSection{NextID: d.Ledger.NextID()},
	}
	for _, r := range d.Ledger.All() {
		switch v := r.(type) {
		case load.PointLoad:
			f.Loads.Point = append(f.Loads.Point, v)
		case load.DistributedLoad:
			f.Loads.Distributed = append(f.Loads.Distributed, v)
		case load.MomentLoad:
			f.Loads.Moment = append(f.Loads.Moment, v)
		}
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encode project: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a project file. Each load is run through the validation
// rules: corrections are applied and logged, and loads that break a hard
// rule are kept as written so the status center can report them.
func Unmarshal(data []byte) (*Document, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse project: %w", err)
	}
	b := f.Bridge
	if err := b.Validate(); err != nil {
		return nil, err
	}
	tl, err := timeline.FromSnapshot(f.Timeline)
	if err != nil {
		return nil, fmt.Errorf("project timeline: %w", err)
	}

	d := assemble(f.Name, f.Mode, &b, tl, load.NewLedger())
	var records []load.Record
	for _, p := range f.Loads.Point {
		records = append(records, p)
	}
	for _, dl := range f.Loads.Distributed {
		records = append(records, dl)
	}
	for _, m := range f.Loads.Moment {
		records = append(records, m)
	}

	for _, r := range records {
		if r.Base().ID == 0 {
			return nil, fmt.Errorf("%s %q has no id", load.Name(r.Kind()), r.Base().Description)
		}
		res, err := load.Validate(r, tl, &b)
		if err != nil {
			d.logger.Warn("load kept with problem", "id", r.Base().ID, "problem", err)
		} else {
			for _, w := range res.Warnings {
				d.logger.Warn("load corrected", "id", r.Base().ID, "field", w.Field, "warning", w.Message)
			}
			r = res.Record
		}
		if err := d.Ledger.Restore(r); err != nil {
			return nil, err
		}
	}
	d.Ledger.Reserve(f.Loads.NextID)
	d.refresh()
	return d, nil
}

// Load reads a project file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	d, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Save writes the project file through a temporary file and returns the
// bytes written.
func (d *Document) Save(path string) ([]byte, error) {
	data, err := d.Marshal()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".girderloads-*.yaml")
	if err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("save project: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return data, nil
}

// Checksum identifies the content of a saved project file.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
