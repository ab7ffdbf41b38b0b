package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewBranchCommand creates the branch command
func NewBranchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch [id]",
		Short: "Show or set the active branch",
		Long:  "Without arguments, lists the account's branches and marks the active one. With an ID, stores it as the default branch for branch-scoped commands.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				branchID, err := strconv.Atoi(args[0])
				if err != nil || branchID <= 0 {
					return ErrBranchIDRequired
				}

				viper.Set("branch", branchID)

				err = saveConfig()
				if err != nil {
					return err
				}

				fmt.Printf("Active branch set to %d\n", branchID)

				return nil
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			branches, err := client.Branches().List(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("listing branches: %w", err)
			}

			return renderList(branches)
		},
	}

	return cmd
}
