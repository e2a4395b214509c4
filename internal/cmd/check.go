package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avkit/segcut/internal/cutlist"
	"github.com/avkit/segcut/internal/render"
	"github.com/avkit/segcut/internal/segment"
)

var checkCmd = &cobra.Command{
	Use:   "check <cut-list.yaml>",
	Short: "Validate a cut list",
	Long: `Validate a cut list.

Parses the file, checks segment ids and time ranges, and reports the
sequential runs the current order would render as.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	file, err := cutlist.Load(args[0])
	if err != nil {
		return err
	}

	order := segment.NewOrder(file.SessionSegments())
	total := 0.0
	markers := 0
	for _, seg := range order.Segments() {
		total += seg.Duration()
	}
	for _, seq := range file.Markers {
		markers += len(seq)
	}

	fmt.Printf("%d segment(s), %.1fs total", order.Len(), total)
	if markers > 0 {
		fmt.Printf(", %d pending marker(s)", markers)
	}
	fmt.Println()

	for _, r := range render.GroupSequential(order.IDs()) {
		if r.Start == r.End {
			fmt.Printf("  %s\n", r.Start)
		} else {
			fmt.Printf("  %s-%s\n", r.Start, r.End)
		}
	}
	return nil
}
