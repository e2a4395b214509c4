package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avkit/segcut/internal/config"
	"github.com/avkit/segcut/internal/cutlist"
	"github.com/avkit/segcut/internal/render"
	"github.com/avkit/segcut/internal/segment"
)

var exportCmd = &cobra.Command{
	Use:   "export <cut-list.yaml>",
	Short: "Export a cut list as a render proposal",
	Long: `Export a cut list as a render proposal.

Builds a YAML proposal from the cut list's segment order and any pending
markers, attaching the configured render settings. The proposal is what
the backend combiner consumes.

Examples:
  # Write the proposal next to the cut list
  segcut export cuts.yaml -o proposal.yaml

  # Print it to stdout, rendering square and vertical variants
  segcut export cuts.yaml --format square --format vertical`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportOut     string
	exportName    string
	exportFormats []string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "proposal name (default the cut list's name)")
	exportCmd.Flags().StringArrayVarP(&exportFormats, "format", "f", nil, "render formats, overriding the configured ones")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	file, err := cutlist.Load(args[0])
	if err != nil {
		return err
	}

	settings := render.Settings{
		Formats:            cfg.Render.Formats,
		UseMusicOverlay:    cfg.Render.UseMusicOverlay,
		UseContinuousAudio: cfg.Render.UseContinuousAudio,
		FadeOut:            cfg.Render.FadeOut,
		OverlayType:        cfg.Render.OverlayType,
	}
	if len(exportFormats) > 0 {
		settings.Formats = exportFormats
	}

	name := exportName
	if name == "" {
		name = file.Name
	}

	order := segment.NewOrder(file.SessionSegments())
	proposal, err := render.BuildProposal(name, order, file.MarkerMap(), settings)
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return proposal.Encode(out)
}
