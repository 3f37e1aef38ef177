package cmd

import (
	"fmt"

	"github.com/hwlight/lightsd/internal/api"
	"github.com/hwlight/lightsd/internal/hwlight"
	"github.com/hwlight/lightsd/internal/logging"
	"github.com/spf13/cobra"
)

// CreateSetCmd creates the set command.
func CreateSetCmd() *cobra.Command {
	var colorStr string
	var flashOn int
	var flashOff int
	var sysfsPath string
	var logJSON bool

	cmd := &cobra.Command{
		Use:   "set <light>",
		Short: "Set a light state directly",
		Long: `Sets the logical state of one light (attention, notifications, battery, ` +
			`backlight, buttons) and renders the LED hardware immediately, without ` +
			`running the API server. Useful for provisioning and bench debugging.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			loggingConfig := logging.Config{
				Level:  "info",
				Format: "text",
			}
			if logJSON {
				loggingConfig.Format = "json"
			}
			logging.Initialize(loggingConfig)
			logger := logging.GetLogger("cli")

			lightType, err := hwlight.ParseType(args[0])
			if err != nil {
				return err
			}

			color, err := api.ParseColor(colorStr)
			if err != nil {
				return err
			}

			state := hwlight.State{
				Color:      color,
				FlashOnMs:  int32(flashOn),
				FlashOffMs: int32(flashOff),
			}
			if flashOn > 0 {
				state.FlashMode = hwlight.FlashTimed
			}

			sink := hwlight.NewSysfsSink(sysfsPath, logger)
			arbiter := hwlight.NewArbiter(sink, nil, logger)

			if err := arbiter.SetState(lightType, state); err != nil {
				return err
			}

			fmt.Printf("%s set to %08X\n", lightType, color)
			return nil
		},
	}

	cmd.Flags().StringVar(&colorStr, "color", "FFFFFFFF", "Packed AARRGGBB color in hex (0 turns the light off)")
	cmd.Flags().IntVar(&flashOn, "flash-on", 0, "Blink on duration in milliseconds (enables timed mode)")
	cmd.Flags().IntVar(&flashOff, "flash-off", 0, "Blink off duration in milliseconds")
	cmd.Flags().StringVar(&sysfsPath, "sysfs-path", hwlight.DefaultSysfsPath, "LED class sysfs root")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")

	return cmd
}
