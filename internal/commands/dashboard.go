package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spacevenue/internal/logger"
	"spacevenue/internal/station"
	"spacevenue/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the live station board",
	Long: `Open the interactive station board: one timer per configured station,
with start/pause/stop/reset controls, live cost at the station's hourly
rate, and customer name entry. Stopping a station saves the session.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		manager := station.NewManager(cfg.Stations, nil, nil)

		if err := tui.RunDashboard(manager, arabic, logger.Named(log, "dashboard")); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}
