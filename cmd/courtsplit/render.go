package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/jteoh/courtsplit/internal/calculator"
	"github.com/jteoh/courtsplit/internal/models"
)

// newTable returns a borderless table writer for terminal output.
func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func (cfg Config) money(amount float64) string {
	return fmt.Sprintf("%s%.2f", cfg.Currency, amount)
}

func renderRoster(players []string) {
	if len(players) == 0 {
		fmt.Println("No players yet.")
		return
	}
	table := newTable([]string{"#", "Name"})
	for i, name := range players {
		table.Append([]string{fmt.Sprintf("%d", i), name})
	}
	table.Render()
}

func renderHistory(cfg Config, sessions []models.Session) {
	if len(sessions) == 0 {
		fmt.Println("No sessions yet.")
		return
	}
	table := newTable([]string{"ID", "Date", "Court", "Shuttles", "Total", "Per Player", "Players"})
	for _, s := range sessions {
		table.Append([]string{
			s.ID,
			s.Date,
			cfg.money(s.CourtCost),
			fmt.Sprintf("%g × %s", s.ShuttlesUsed, cfg.money(s.ShuttleCost)),
			cfg.money(s.Total),
			cfg.money(s.PerPlayer),
			strings.Join(s.Participants, ", "),
		})
	}
	table.Render()
}

func renderMonths(months []string) {
	if len(months) == 0 {
		fmt.Println("No sessions yet.")
		return
	}
	for _, m := range months {
		fmt.Println(m)
	}
}

func renderMonthly(cfg Config, monthKey string, totals []calculator.PlayerTotal) {
	if len(totals) == 0 {
		fmt.Println("No data for this month.")
		return
	}
	fmt.Printf("Totals for %s\n", monthKey)
	table := newTable([]string{"Player", "Owes"})
	for _, t := range totals {
		table.Append([]string{t.Name, cfg.money(t.Amount)})
	}
	table.Render()
}

func renderSummary(cfg Config, s *models.Session) {
	color.Green.Printf("Session %s recorded for %s\n", s.ID, s.Date)
	fmt.Printf("  Total:      %s\n", cfg.money(s.Total))
	fmt.Printf("  Per player: %s\n", cfg.money(s.PerPlayer))
	fmt.Printf("  Players:    %d\n", len(s.Participants))
}

func ok(format string, args ...any) {
	color.Green.Printf(format+"\n", args...)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.Red.Sprintf("✗ %v", err))
}
