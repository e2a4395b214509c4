// Package cutlist reads and writes the YAML cut-list files segcut edits.
// A cut list is the host-side source of truth for a session: the ordered
// segment records plus any previously placed markers.
package cutlist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avkit/segcut/internal/errors"
	"github.com/avkit/segcut/internal/marker"
	"github.com/avkit/segcut/internal/segment"
)

// Record is one segment entry in a cut-list file.
type Record struct {
	ID     string  `yaml:"av_segment_id"`
	StartS float64 `yaml:"start_s"`
	EndS   float64 `yaml:"end_s"`
}

// File is a parsed cut list.
type File struct {
	Name     string                     `yaml:"name,omitempty"`
	Segments []Record                   `yaml:"segments"`
	Markers  map[string][]marker.Marker `yaml:"markers,omitempty"`
}

// Load reads and validates a cut-list file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cut list")
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse cut list")
	}
	if err := f.validate(); err != nil {
		var cle *errors.CutListError
		if errors.As(err, &cle) {
			cle.WithPath(path)
		}
		return nil, err
	}
	return &f, nil
}

// Save writes the cut list to path.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "failed to encode cut list")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write cut list")
	}
	return nil
}

func (f *File) validate() error {
	if len(f.Segments) == 0 {
		return errors.NewCutListError("cut list is empty", errors.ErrEmptyCutList)
	}
	seen := make(map[string]bool, len(f.Segments))
	for i, r := range f.Segments {
		if r.ID == "" {
			return errors.NewCutListError(
				fmt.Sprintf("segment %d has no av_segment_id", i), errors.ErrInvalidInput)
		}
		if seen[r.ID] {
			return errors.NewCutListError("duplicate segment id", errors.ErrDuplicateSegment).
				WithSegmentID(r.ID)
		}
		seen[r.ID] = true
		if r.EndS < r.StartS {
			return errors.NewCutListError(
				fmt.Sprintf("segment ends before it starts (%.3f < %.3f)", r.EndS, r.StartS),
				errors.ErrInvalidTimeRange).WithSegmentID(r.ID)
		}
	}
	for id := range f.Markers {
		if !seen[id] {
			return errors.NewCutListError("markers reference unknown segment", errors.ErrOrphanMarkers).
				WithSegmentID(id)
		}
	}
	return nil
}

// SessionSegments converts the records into the session's segment
// entities, in file order.
func (f *File) SessionSegments() []*segment.Segment {
	segs := make([]*segment.Segment, len(f.Segments))
	for i, r := range f.Segments {
		segs[i] = &segment.Segment{ID: r.ID, StartS: r.StartS, EndS: r.EndS}
	}
	return segs
}

// MarkerMap returns the file's marker map, never nil.
func (f *File) MarkerMap() map[string][]marker.Marker {
	if f.Markers == nil {
		return map[string][]marker.Marker{}
	}
	return f.Markers
}
