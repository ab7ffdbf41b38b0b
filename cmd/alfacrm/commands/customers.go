package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Work with customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersStudyingCommand())
	cmd.AddCommand(newCustomersLeadsCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [filter...]",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			filter, err := parseParams(args)
			if err != nil {
				return err
			}

			result, err := client.Customers().List(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("listing customers: %w", err)
			}

			return renderList(result)
		},
	}
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := strconv.Atoi(args[0])
			if err != nil {
				return ErrRecordIDRequired
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.Customers().List(cmd.Context(), map[string]interface{}{"id": customerID})
			if err != nil {
				return fmt.Errorf("fetching customer %d: %w", customerID, err)
			}
			if len(result.Items) == 0 {
				return fmt.Errorf("customer %d not found", customerID)
			}

			return renderRecord(result.Items[0])
		},
	}
}

func newCustomersStudyingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "studying [filter...]",
		Short: "List customers that are currently studying",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			filter, err := parseParams(args)
			if err != nil {
				return err
			}
			filter["is_study"] = 1

			result, err := client.Customers().List(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("listing customers: %w", err)
			}

			return renderList(result)
		},
	}
}

func newCustomersLeadsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leads [filter...]",
		Short: "List customers that are still leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			filter, err := parseParams(args)
			if err != nil {
				return err
			}
			filter["is_study"] = 0

			result, err := client.Customers().List(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("listing customers: %w", err)
			}

			return renderList(result)
		},
	}
}
