package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// UpdateAssignmentCmd creates the updateAssignment command
func UpdateAssignmentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateAssignment <assignment_id>",
		Short: "Update a shift assignment (only the flags passed are changed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignmentID := args[0]

			patch := db.AssignmentPatch{}
			strFlag := func(name string) *string {
				if !cmd.Flags().Changed(name) {
					return nil
				}
				v, _ := cmd.Flags().GetString(name)
				return &v
			}
			patch.UnitID = strFlag("unit-id")
			patch.UnitName = strFlag("unit-name")
			patch.Date = strFlag("date")
			patch.StartTime = strFlag("start-time")
			patch.EndTime = strFlag("end-time")
			patch.Type = strFlag("type")
			patch.Reason = strFlag("reason")
			patch.Notes = strFlag("notes")
			if cmd.Flags().Changed("notified") {
				v, _ := cmd.Flags().GetBool("notified")
				patch.Notified = &v
			}

			app.Logger.Debug("updateAssignment command", zap.String("assignment_id", assignmentID))

			assignment, err := app.Database.UpdateAssignment(app.Ctx, assignmentID, patch)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Assignment updated!\n\n")
			fmt.Printf("Constancy: %s\n", assignment.ConstancyCode)
			fmt.Printf("Unit:      %s\n", assignment.UnitName)
			fmt.Printf("Date:      %s  %s-%s\n", assignment.Date, assignment.StartTime, assignment.EndTime)
			fmt.Printf("Notified:  %t\n\n", assignment.Notified)

			return nil
		},
	}

	cmd.Flags().String("unit-id", "", "Unit identifier")
	cmd.Flags().String("unit-name", "", "Unit display name")
	cmd.Flags().String("date", "", "Assignment date (YYYY-MM-DD)")
	cmd.Flags().String("start-time", "", "Shift start (HH:MM)")
	cmd.Flags().String("end-time", "", "Shift end (HH:MM)")
	cmd.Flags().String("type", "", "Shift type: planned or immediate")
	cmd.Flags().String("reason", "", "Reason for the assignment")
	cmd.Flags().String("notes", "", "Free-text notes")
	cmd.Flags().Bool("notified", false, "Notified flag")

	return cmd
}
