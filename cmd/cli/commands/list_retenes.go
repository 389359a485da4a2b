package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListRetenesCmd creates the listRetenes command
func ListRetenesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRetenes",
		Short: "List all on-call roster entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			retenes, err := app.Database.GetRetenes(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list retenes: %w", err)
			}

			app.Logger.Info("Retenes fetched successfully", zap.Int("count", len(retenes)))

			fmt.Printf("\nFound %d retenes:\n\n", len(retenes))
			for _, r := range retenes {
				contact := r.Phone
				if r.Email != "" {
					contact = fmt.Sprintf("%s / %s", r.Phone, r.Email)
				}
				fmt.Printf("- %s (%s) - DNI %s - %s - %s\n",
					r.Name, r.ID, r.DNI, r.Status, contact)
			}

			return nil
		},
	}
}
