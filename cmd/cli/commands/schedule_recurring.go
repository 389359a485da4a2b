package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/core/services"
)

// ScheduleRecurringCmd creates the scheduleRecurring command
func ScheduleRecurringCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduleRecurring <reten_id> <unit_id> <rrule> <start_time> <end_time>",
		Short: "Create planned assignments from a bounded recurrence rule",
		Long: `Create one planned assignment per occurrence of an RFC 5545 recurrence rule.

The rule must be bounded with COUNT or UNTIL, for example:
  DTSTART:20260601T000000Z
  RRULE:FREQ=WEEKLY;BYDAY=MO;COUNT=8`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			unitName, _ := cmd.Flags().GetString("unit-name")
			reason, _ := cmd.Flags().GetString("reason")
			preview, _ := cmd.Flags().GetBool("preview")

			if preview {
				occurrence, err := services.NextOccurrenceAfter(args[2], time.Now())
				if err != nil {
					return err
				}
				if occurrence.IsZero() {
					fmt.Println("\nNo upcoming occurrence for this rule.")
					return nil
				}
				fmt.Printf("\nNext occurrence: %s\n", occurrence.Format("2006-01-02"))
				fmt.Println("Run again without --preview to create the series.")
				return nil
			}

			series := services.RecurringSeries{
				RetenID:   args[0],
				UnitID:    args[1],
				UnitName:  unitName,
				RRule:     args[2],
				StartTime: args[3],
				EndTime:   args[4],
				Reason:    reason,
			}

			app.Logger.Debug("scheduleRecurring command",
				zap.String("reten_id", series.RetenID),
				zap.String("rrule", series.RRule))

			created, err := services.ScheduleRecurring(app.Ctx, app.Database, app.Logger, series)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Created %d assignments.\n\n", len(created))
			for _, a := range created {
				fmt.Printf("  %s  %s-%s  %s\n", a.Date, a.StartTime, a.EndTime, a.ConstancyCode)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("unit-name", "", "Unit display name (snapshotted on each assignment)")
	cmd.Flags().String("reason", "", "Reason recorded on each assignment")
	cmd.Flags().Bool("preview", false, "Show the next occurrence of the rule without creating anything")

	return cmd
}
