package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/core/services"
	"github.com/opsdesk/reten-ops/pkg/core/week"
)

// WeekViewCmd creates the weekView command
func WeekViewCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weekView [date]",
		Short: "Show the Monday-aligned week of assignments containing a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference := time.Now()
			if len(args) == 1 {
				parsed, err := time.Parse(week.DateFormat, args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", args[0], err)
				}
				reference = parsed
			}

			prev, _ := cmd.Flags().GetInt("prev")
			next, _ := cmd.Flags().GetInt("next")
			copySummary, _ := cmd.Flags().GetBool("copy")

			weekStart := week.Shift(week.MondayOf(reference), next-prev)

			app.Logger.Debug("weekView command",
				zap.String("week_start", weekStart.Format(week.DateFormat)))

			result, err := services.WeekView(app.Ctx, app.Database, app.Logger, weekStart)
			if err != nil {
				return err
			}

			fmt.Printf("\nWeek %s to %s\n\n",
				result.WeekStart.Format(week.DateFormat),
				result.WeekEnd.Format(week.DateFormat))

			total := 0
			for _, day := range result.Days {
				fmt.Printf("%s %s\n", day.Date.Weekday(), day.Date.Format(week.DateFormat))
				if len(day.Entries) == 0 {
					fmt.Println("  (no assignments)")
				}
				for _, entry := range day.Entries {
					a := entry.Assignment
					fmt.Printf("  %s-%s  %s  %s  [%s]\n",
						a.StartTime, a.EndTime, entry.RetenName, a.UnitName, a.Type)
					total++
				}
				fmt.Println()
			}
			fmt.Printf("%d assignments this week\n\n", total)

			if copySummary {
				if err := clipboard.WriteAll(result.Summary); err != nil {
					return fmt.Errorf("failed to copy summary to clipboard: %w", err)
				}
				fmt.Println("✓ Week summary copied to clipboard.")
			}

			return nil
		},
	}

	cmd.Flags().Int("prev", 0, "Navigate N weeks back")
	cmd.Flags().Int("next", 0, "Navigate N weeks forward")
	cmd.Flags().Bool("copy", false, "Copy the week summary to the clipboard")

	return cmd
}
