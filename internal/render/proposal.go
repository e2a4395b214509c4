package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/avkit/segcut/internal/errors"
	"github.com/avkit/segcut/internal/marker"
	"github.com/avkit/segcut/internal/segment"
)

// ProposalSegment is one segment of the proposed edit, with its source
// time range.
type ProposalSegment struct {
	ID     string  `yaml:"av_segment_id"`
	StartS float64 `yaml:"start_s"`
	EndS   float64 `yaml:"end_s"`
}

// Proposal is the full edit handed to the backend combiner: the segment
// order with time ranges, collapsed sequential ranges, any markers still
// pending a split, and the render settings.
type Proposal struct {
	Name     string                     `yaml:"name,omitempty"`
	Settings Settings                   `yaml:"render_settings"`
	Segments []ProposalSegment          `yaml:"segments"`
	Ranges   []Range                    `yaml:"ranges"`
	Markers  map[string][]marker.Marker `yaml:"pending_markers,omitempty"`
}

// BuildProposal snapshots the session's order and markers into a
// proposal.
func BuildProposal(name string, order *segment.Order, markers map[string][]marker.Marker, settings Settings) (*Proposal, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if order.Len() == 0 {
		return nil, errors.NewRenderError("nothing to render", errors.ErrEmptyCutList)
	}

	segs := make([]ProposalSegment, order.Len())
	for i, s := range order.Segments() {
		segs[i] = ProposalSegment{ID: s.ID, StartS: s.StartS, EndS: s.EndS}
	}

	pending := make(map[string][]marker.Marker)
	for id, seq := range markers {
		if len(seq) > 0 {
			pending[id] = seq
		}
	}
	if len(pending) == 0 {
		pending = nil
	}

	return &Proposal{
		Name:     name,
		Settings: settings,
		Segments: segs,
		Ranges:   GroupSequential(order.IDs()),
		Markers:  pending,
	}, nil
}

// Encode writes the proposal as YAML.
func (p *Proposal) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode proposal: %w", err)
	}
	return nil
}
