package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// AddRetenCmd creates the addReten command
func AddRetenCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addReten <name> <dni> <phone>",
		Short: "Add a person to the on-call roster",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			notes, _ := cmd.Flags().GetString("notes")

			reten := &db.Reten{
				ID:     uuid.New().String(),
				Name:   args[0],
				DNI:    args[1],
				Phone:  args[2],
				Email:  email,
				Notes:  notes,
				Status: db.StatusAvailable,
			}

			app.Logger.Debug("addReten command", zap.String("name", reten.Name))

			if err := app.Database.InsertReten(app.Ctx, reten); err != nil {
				return err
			}

			fmt.Printf("\n✓ Reten added to the roster!\n\n")
			fmt.Printf("ID:     %s\n", reten.ID)
			fmt.Printf("Name:   %s\n", reten.Name)
			fmt.Printf("DNI:    %s\n", reten.DNI)
			fmt.Printf("Phone:  %s\n", reten.Phone)
			fmt.Printf("Status: %s\n\n", reten.Status)

			return nil
		},
	}

	cmd.Flags().String("email", "", "Contact email (optional)")
	cmd.Flags().String("notes", "", "Free-text notes (optional)")

	return cmd
}
