package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/user/wispmon/internal/model"
	"github.com/user/wispmon/internal/source"
	"github.com/user/wispmon/internal/view"
)

var (
	listAPI      string
	listFixture  bool
	listStatus   string
	listLocation string
	listBand     string
	listSort     string
	listDesc     bool
	listPage     int
	listPageSize int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the router fleet as a table",
	Long: `Print one page of the router fleet to stdout, after applying the
same filter, sort and paging pipeline the dashboard uses.

Examples:
  wispmon list
  wispmon list --status offline
  wispmon list --location downtown --band high
  wispmon list --sort bandwidth --desc --page 2`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listAPI, "api", "", "ingestion API base URL (overrides config)")
	listCmd.Flags().BoolVar(&listFixture, "fixture", false, "use the built-in sample fleet instead of the API")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (online, warning, offline)")
	listCmd.Flags().StringVar(&listLocation, "location", "", "filter by location substring")
	listCmd.Flags().StringVar(&listBand, "band", "", "filter by usage band (low, medium, high)")
	listCmd.Flags().StringVar(&listSort, "sort", "name", "sort field (name, status, bandwidth, uptime, location)")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "rows per page (overrides config)")
}

func runList(cmd *cobra.Command, args []string) error {
	field, err := parseSortField(listSort)
	if err != nil {
		return err
	}

	switch listStatus {
	case "", "online", "warning", "offline":
	default:
		return fmt.Errorf("unknown status %q", listStatus)
	}
	switch view.Band(listBand) {
	case view.BandAny, view.BandLow, view.BandMedium, view.BandHigh:
	default:
		return fmt.Errorf("unknown band %q", listBand)
	}

	var src source.Source
	if listFixture {
		src = &source.FixtureSource{}
	} else {
		base := cfg.APIBaseURL
		if listAPI != "" {
			base = listAPI
		}
		src = source.NewAPISource(base, cfg.APIToken, cfg.RequestTimeout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	records, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch router data: %w", err)
	}

	pageSize := cfg.PageSize
	if listPageSize > 0 {
		pageSize = listPageSize
	}

	vw := view.New(pageSize)
	vw.Replace(records)
	vw.SetCriteria(view.Criteria{
		Status:   model.Status(listStatus),
		Location: listLocation,
		Band:     view.Band(listBand),
	})
	dir := view.Ascending
	if listDesc {
		dir = view.Descending
	}
	vw.SetSortState(view.Sort{Field: field, Direction: dir})
	vw.GoToPage(listPage)

	summary := vw.Summary()
	fmt.Printf("Fleet: %d total, %d online, %d offline (%d matching)\n\n",
		summary.Total, summary.Online, summary.Offline, vw.FilteredLen())

	now := time.Now()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Router", "Status", "Location", "Uptime", "Bandwidth", "Signal", "Clients", "Last Seen"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, r := range vw.Rows() {
		table.Append([]string{
			r.Name,
			string(r.Status),
			r.Location,
			r.Uptime,
			fmt.Sprintf("%.0f%% %s", r.Bandwidth.UsagePercent(), r.Bandwidth.Unit),
			view.FormatSignal(r.Wireless.Signal),
			fmt.Sprintf("%d", r.Wireless.Clients),
			view.TimeAgo(r.LastSeen, now),
		})
	}
	table.Render()

	if p := vw.Pagination(); p.TotalPages > 1 {
		fmt.Printf("\nPage %d of %d\n", p.Current, p.TotalPages)
	}

	return nil
}

func parseSortField(name string) (view.Field, error) {
	switch name {
	case "name":
		return view.FieldName, nil
	case "status":
		return view.FieldStatus, nil
	case "bandwidth":
		return view.FieldBandwidth, nil
	case "uptime":
		return view.FieldUptime, nil
	case "location":
		return view.FieldLocation, nil
	}
	return view.FieldName, fmt.Errorf("unknown sort field %q", name)
}
