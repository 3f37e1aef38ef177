package cmd

import (
	"fmt"

	"github.com/hwlight/lightsd/internal/hwlight"
	"github.com/hwlight/lightsd/internal/logging"
	"github.com/spf13/cobra"
)

// CreateListCmd creates the list command.
func CreateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported lights",
		Long:  `Prints the fixed set of supported lights in priority order. No hardware access is needed.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			logger := logging.GetLogger("cli")
			arbiter := hwlight.NewArbiter(hwlight.NewNoopSink(logger), nil, logger)

			fmt.Printf("%-3s %-15s %s\n", "ID", "LIGHT", "ORDINAL")
			for _, l := range arbiter.Lights() {
				fmt.Printf("%-3d %-15s %d\n", l.ID, l.Type, l.Ordinal)
			}
		},
	}
}
