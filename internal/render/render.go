// Package render describes what the backend combiner service should do
// with an edited segment list: the render settings for the final video
// and the start/end ranges of sequential segments that can be rendered as
// single cuts.
package render

import (
	"fmt"

	"github.com/avkit/segcut/internal/errors"
	"github.com/avkit/segcut/internal/segment"
)

// Render formats.
const (
	FormatHorizontal = "horizontal"
	FormatSquare     = "square"
	FormatVertical   = "vertical"
)

// Overlay types for music and audio.
const (
	OverlayVideoStart   = "video_start"
	OverlayVideoEnd     = "video_end"
	OverlayVariantStart = "variant_start"
	OverlayVariantEnd   = "variant_end"
)

// Settings are the user's rendering preferences for an edit.
type Settings struct {
	Formats            []string `yaml:"formats"`
	UseMusicOverlay    bool     `yaml:"use_music_overlay"`
	UseContinuousAudio bool     `yaml:"use_continuous_audio"`
	FadeOut            bool     `yaml:"fade_out"`
	OverlayType        string   `yaml:"overlay_type,omitempty"`
}

// DefaultSettings renders a plain horizontal video.
func DefaultSettings() Settings {
	return Settings{Formats: []string{FormatHorizontal}}
}

// Validate checks the settings for unknown formats and overlay types.
func (s Settings) Validate() error {
	if len(s.Formats) == 0 {
		return errors.NewRenderError("no render formats selected", errors.ErrInvalidInput)
	}
	for _, f := range s.Formats {
		switch f {
		case FormatHorizontal, FormatSquare, FormatVertical:
		default:
			return errors.NewRenderError("unknown render format", errors.ErrInvalidInput).
				WithFormat(f)
		}
	}
	switch s.OverlayType {
	case "", OverlayVideoStart, OverlayVideoEnd, OverlayVariantStart, OverlayVariantEnd:
	default:
		return errors.NewRenderError(
			fmt.Sprintf("unknown overlay type %q", s.OverlayType), errors.ErrInvalidInput)
	}
	return nil
}

// Range is a run of sequential segment ids, reduced to its endpoints.
// A lone segment is a Range with Start == End.
type Range struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// GroupSequential reduces an ordered id list to start/end ranges of
// sequential runs. Sequentiality follows dotted-id rules (see
// segment.IsSequential): "1, 2, 3, 4.1, 4.2, 5" yields
// [(1, 4.2), (5, 5)], while an unordered "5, 1, 2" yields
// [(5, 5), (1, 2)].
func GroupSequential(ids []string) []Range {
	var result []Range
	i := 0
	for i < len(ids) {
		j := i
		for j < len(ids)-1 && segment.IsSequential(ids[j], ids[j+1]) {
			j++
		}
		result = append(result, Range{Start: ids[i], End: ids[j]})
		i = j + 1
	}
	return result
}
