package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// AddAssignmentCmd creates the addAssignment command
func AddAssignmentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addAssignment <reten_id> <unit_id> <date> <start_time> <end_time>",
		Short: "Assign a reten to a unit shift (date YYYY-MM-DD, times HH:MM)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			unitName, _ := cmd.Flags().GetString("unit-name")
			shiftType, _ := cmd.Flags().GetString("type")
			reason, _ := cmd.Flags().GetString("reason")
			notes, _ := cmd.Flags().GetString("notes")

			// The roster entry must exist before we hang a shift off it
			reten, err := app.Database.GetReten(app.Ctx, args[0])
			if err != nil {
				return err
			}

			assignment := &db.Assignment{
				ID:        uuid.New().String(),
				RetenID:   reten.ID,
				UnitID:    args[1],
				UnitName:  unitName,
				Date:      args[2],
				StartTime: args[3],
				EndTime:   args[4],
				Type:      shiftType,
				Reason:    reason,
				Notes:     notes,
			}

			app.Logger.Debug("addAssignment command",
				zap.String("reten_id", reten.ID),
				zap.String("date", assignment.Date),
			)

			if err := app.Database.InsertAssignment(app.Ctx, assignment); err != nil {
				return err
			}

			fmt.Printf("\n✓ Assignment created!\n\n")
			fmt.Printf("Constancy: %s\n", assignment.ConstancyCode)
			fmt.Printf("Reten:     %s\n", reten.Name)
			fmt.Printf("Unit:      %s\n", assignment.UnitName)
			fmt.Printf("Date:      %s  %s-%s\n\n", assignment.Date, assignment.StartTime, assignment.EndTime)

			return nil
		},
	}

	cmd.Flags().String("unit-name", "", "Unit display name (snapshotted on the assignment)")
	cmd.Flags().String("type", db.TypePlanned, "Shift type: planned or immediate")
	cmd.Flags().String("reason", "", "Reason for the assignment")
	cmd.Flags().String("notes", "", "Free-text notes")

	return cmd
}

// DeleteAssignmentCmd creates the deleteAssignment command
func DeleteAssignmentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteAssignment <assignment_id>",
		Short: "Remove a shift assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignmentID := args[0]

			app.Logger.Debug("deleteAssignment command", zap.String("assignment_id", assignmentID))

			if err := app.Database.DeleteAssignment(app.Ctx, assignmentID); err != nil {
				return err
			}

			fmt.Printf("\n✓ Assignment %s deleted.\n\n", assignmentID)
			return nil
		},
	}
}
