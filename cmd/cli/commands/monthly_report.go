package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/core/services"
)

// MonthlyReportCmd creates the monthlyReport command
func MonthlyReportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monthlyReport <year> <month>",
		Short: "Aggregate assignments per reten for a calendar month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			monthNum, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month %q: %w", args[1], err)
			}
			month := time.Month(monthNum)

			export, _ := cmd.Flags().GetBool("export")
			emailTo, _ := cmd.Flags().GetString("email")

			app.Logger.Debug("monthlyReport command",
				zap.Int("year", year),
				zap.Int("month", monthNum))

			rows, err := services.MonthlyReport(app.Ctx, app.Database, app.Logger, year, month)
			if err != nil {
				return err
			}

			fmt.Printf("\nMonthly report %04d-%02d\n\n", year, monthNum)
			if len(rows) == 0 {
				fmt.Println("No assignments this month.")
			}
			for _, row := range rows {
				fmt.Printf("%s (DNI %s)\n", row.Name, row.DNI)
				fmt.Printf("  Assignments: %d  Hours: %.1f  Units: %d\n",
					row.TotalAssignments, row.TotalHours, row.UnitsCovered)
				for _, d := range row.Assignments {
					fmt.Printf("  - %s %s (%s-%s)\n", d.Date, d.UnitName, d.StartTime, d.EndTime)
				}
				fmt.Println()
			}

			if export {
				err := services.ExportMonthlyReport(app.Ctx, app.Database, app.SheetsClient,
					app.Logger, app.Cfg.ReportSheetID, year, month)
				if err != nil {
					return err
				}
				fmt.Println("✓ Report exported to the configured spreadsheet.")
			}

			if emailTo != "" {
				err := services.EmailMonthlyReport(app.Ctx, app.Database, app.GmailClient,
					app.Logger, emailTo, year, month)
				if err != nil {
					return err
				}
				fmt.Printf("✓ Report emailed to %s.\n", emailTo)
			}

			return nil
		},
	}

	cmd.Flags().Bool("export", false, "Publish the report to the configured spreadsheet")
	cmd.Flags().String("email", "", "Email the report summary to this address")

	return cmd
}
