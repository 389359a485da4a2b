package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// UpdateRetenCmd creates the updateReten command
func UpdateRetenCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateReten <reten_id>",
		Short: "Update a roster entry (unset flags keep their current value)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			retenID := args[0]

			reten, err := app.Database.GetReten(app.Ctx, retenID)
			if err != nil {
				return err
			}

			// Overlay only the flags the caller set onto the full record
			if cmd.Flags().Changed("name") {
				reten.Name, _ = cmd.Flags().GetString("name")
			}
			if cmd.Flags().Changed("dni") {
				reten.DNI, _ = cmd.Flags().GetString("dni")
			}
			if cmd.Flags().Changed("phone") {
				reten.Phone, _ = cmd.Flags().GetString("phone")
			}
			if cmd.Flags().Changed("email") {
				reten.Email, _ = cmd.Flags().GetString("email")
			}
			if cmd.Flags().Changed("notes") {
				reten.Notes, _ = cmd.Flags().GetString("notes")
			}
			if cmd.Flags().Changed("status") {
				reten.Status, _ = cmd.Flags().GetString("status")
			}

			app.Logger.Debug("updateReten command", zap.String("reten_id", retenID))

			if err := app.Database.UpdateReten(app.Ctx, reten); err != nil {
				return err
			}

			fmt.Printf("\n✓ Reten updated!\n\n")
			fmt.Printf("Name:   %s\n", reten.Name)
			fmt.Printf("DNI:    %s\n", reten.DNI)
			fmt.Printf("Phone:  %s\n", reten.Phone)
			fmt.Printf("Status: %s\n\n", reten.Status)

			return nil
		},
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("dni", "", "National-ID number")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("notes", "", "Free-text notes")
	cmd.Flags().String("status", "", "Status: available, assigned or unavailable")

	return cmd
}

// DeleteRetenCmd creates the deleteReten command
func DeleteRetenCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteReten <reten_id>",
		Short: "Remove a person from the on-call roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			retenID := args[0]

			app.Logger.Debug("deleteReten command", zap.String("reten_id", retenID))

			if err := app.Database.DeleteReten(app.Ctx, retenID); err != nil {
				return err
			}

			fmt.Printf("\n✓ Reten %s deleted.\n\n", retenID)
			return nil
		},
	}
}
