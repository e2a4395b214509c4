package cutlist

import (
	"fmt"
	"sort"

	"github.com/avkit/segcut/internal/errors"
	"github.com/avkit/segcut/internal/segment"
)

// ApplySplit performs the authoritative split of a segment at the given
// cut times (seconds within the segment's own timeline). The record is
// replaced in place by its children, named with dotted ids ("4" splits
// into "4.1", "4.2", …). Cut times outside (0, duration) are dropped;
// with no usable cut left the file is unchanged and an error is returned.
// Markers on the split segment are discarded: they have been consumed.
func (f *File) ApplySplit(segmentID string, cutTimes []float64) error {
	idx := -1
	for i, r := range f.Segments {
		if r.ID == segmentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.NewNotFoundError("segment", segmentID)
	}
	rec := f.Segments[idx]
	duration := rec.EndS - rec.StartS

	cuts := make([]float64, 0, len(cutTimes))
	for _, t := range cutTimes {
		if t > 0 && t < duration {
			cuts = append(cuts, t)
		}
	}
	if len(cuts) == 0 {
		return errors.NewCutListError("no usable cut times", errors.ErrNoUsableCuts).
			WithSegmentID(segmentID)
	}
	sort.Float64s(cuts)

	ids := segment.SplitIDs(segmentID, len(cuts)+1)
	children := make([]Record, len(ids))
	prev := rec.StartS
	for i, id := range ids {
		end := rec.EndS
		if i < len(cuts) {
			end = rec.StartS + cuts[i]
		}
		children[i] = Record{ID: id, StartS: prev, EndS: end}
		prev = end
	}

	rest := append([]Record(nil), f.Segments[idx+1:]...)
	f.Segments = append(append(f.Segments[:idx], children...), rest...)
	delete(f.Markers, segmentID)
	return nil
}

// ApplyCombine performs the authoritative merge of each group into one
// segment. The merged record keeps the first member's id and start, and
// spans the members' combined duration. Members must exist; groups are
// applied in order.
func (f *File) ApplyCombine(groups [][]string) error {
	for _, group := range groups {
		if len(group) < 2 {
			return errors.NewCutListError(
				fmt.Sprintf("combine group %v has fewer than 2 members", group),
				errors.ErrGroupTooSmall)
		}
		if err := f.applyGroup(group); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) applyGroup(group []string) error {
	records := make(map[string]Record, len(group))
	member := make(map[string]bool, len(group))
	for _, id := range group {
		member[id] = true
	}

	total := 0.0
	for _, r := range f.Segments {
		if member[r.ID] {
			records[r.ID] = r
			total += r.EndS - r.StartS
		}
	}
	if len(records) != len(group) {
		return errors.NewCutListError(
			fmt.Sprintf("combine group %v references unknown segments", group),
			errors.ErrSegmentNotFound)
	}

	first := records[group[0]]
	merged := Record{ID: first.ID, StartS: first.StartS, EndS: first.StartS + total}

	out := f.Segments[:0]
	for _, r := range f.Segments {
		switch {
		case r.ID == first.ID:
			out = append(out, merged)
		case member[r.ID]:
			// dropped into the merge
		default:
			out = append(out, r)
		}
	}
	f.Segments = out

	for _, id := range group[1:] {
		delete(f.Markers, id)
	}
	return nil
}
