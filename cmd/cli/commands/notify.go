package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/core/services"
)

// NotifyCmd creates the notify command
func NotifyCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify <assignment_id>",
		Short: "Build the constancy message and messaging deep link for an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignmentID := args[0]
			mark, _ := cmd.Flags().GetBool("mark")
			copyMessage, _ := cmd.Flags().GetBool("copy")

			app.Logger.Debug("notify command", zap.String("assignment_id", assignmentID))

			handoff, err := services.PrepareNotification(
				app.Ctx, app.Database, app.Logger, app.Cfg.MessagingHost, assignmentID)
			if err != nil {
				return err
			}

			fmt.Printf("\nPhone: %s\n\n", handoff.Phone)
			fmt.Println(handoff.Message)
			fmt.Printf("\nOpen to send:\n%s\n\n", handoff.URL)

			if copyMessage {
				if err := clipboard.WriteAll(handoff.Message); err != nil {
					return fmt.Errorf("failed to copy message to clipboard: %w", err)
				}
				fmt.Println("✓ Message copied to clipboard.")
			}

			// Marking is best effort: the hand-off above already happened
			if mark {
				services.MarkNotified(app.Ctx, app.Database, app.Logger, assignmentID)
				fmt.Println("✓ Assignment marked as notified.")
			}

			return nil
		},
	}

	cmd.Flags().Bool("mark", false, "Mark the assignment as notified")
	cmd.Flags().Bool("copy", false, "Copy the message text to the clipboard")

	return cmd
}
