package main

import (
	"github.com/spf13/cobra"

	"github.com/user/wispmon/internal/source"
	"github.com/user/wispmon/internal/tui"
)

var (
	uiAPI     string
	uiFixture bool
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the terminal dashboard",
	Long: `Launch an interactive terminal dashboard showing the router fleet.

The dashboard shows:
- Fleet summary (total / online / offline)
- Router table with status, bandwidth, signal and uptime
- Filter by status, location and bandwidth usage band
- Sortable columns and paged output

Keys: 'r' refresh, '/' location search, 'f' status filter, 'b' band
filter, '1'-'5' sort, arrow keys to page and select, 'R' restart,
'x' disconnect, 'q' quit.

Examples:
  wispmon ui
  wispmon ui --api http://monitor.example.net:8080
  wispmon ui --fixture`,
	RunE: runUI,
}

func init() {
	uiCmd.Flags().StringVar(&uiAPI, "api", "", "ingestion API base URL (overrides config)")
	uiCmd.Flags().BoolVar(&uiFixture, "fixture", false, "use the built-in sample fleet instead of the API")
}

func runUI(cmd *cobra.Command, args []string) error {
	var src source.Source
	var actions source.ActionSender

	if uiFixture {
		fixture := &source.FixtureSource{}
		src = fixture
		actions = fixture
	} else {
		base := cfg.APIBaseURL
		if uiAPI != "" {
			base = uiAPI
		}
		client := source.NewAPISource(base, cfg.APIToken, cfg.RequestTimeout)
		src = client
		actions = client
	}

	app := tui.NewApp(src, actions, cfg)
	return app.Run()
}
