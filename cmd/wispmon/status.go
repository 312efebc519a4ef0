package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/user/wispmon/internal/source"
)

var statusAPI string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show ingestion API status",
	Long:  "Check the ingestion API health endpoint and print fleet counts.",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusAPI, "api", "", "ingestion API base URL (overrides config)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	upStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("46")).
		Bold(true)

	downStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	base := cfg.APIBaseURL
	if statusAPI != "" {
		base = statusAPI
	}
	client := source.NewAPISource(base, cfg.APIToken, cfg.RequestTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fmt.Println(titleStyle.Render("WispMon Status"))
	fmt.Println()

	fmt.Print(labelStyle.Render("API: "))
	fmt.Println(valueStyle.Render(base))

	// Health probe
	fmt.Print(labelStyle.Render("Server: "))
	ts, err := client.Health(ctx)
	if err != nil {
		fmt.Println(downStyle.Render("Unreachable"))
		fmt.Printf("  %s\n", labelStyle.Render(err.Error()))
		return nil
	}
	fmt.Println(upStyle.Render("OK"))

	fmt.Print(labelStyle.Render("Server time: "))
	fmt.Println(valueStyle.Render(ts))

	// Fleet counts
	summary, err := client.Summary(ctx)
	if err != nil {
		fmt.Printf("  %s\n", labelStyle.Render("fleet summary unavailable: "+err.Error()))
		return nil
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Fleet"))
	fmt.Printf("  %s %s\n",
		labelStyle.Render("Total routers:"),
		valueStyle.Render(fmt.Sprintf("%d", summary.Total)))
	fmt.Printf("  %s %s\n",
		labelStyle.Render("Online:"),
		upStyle.Render(fmt.Sprintf("%d", summary.Online)))
	fmt.Printf("  %s %s\n",
		labelStyle.Render("Offline:"),
		downStyle.Render(fmt.Sprintf("%d", summary.Offline)))

	return nil
}
