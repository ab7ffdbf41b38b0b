package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewResourcesCommand creates the resources command
func NewResourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List available resource names",
		Long:  "List the resource names accepted by the list, create, update, and delete commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			for _, name := range client.Resources() {
				fmt.Println(name)
			}

			return nil
		},
	}
}

// NewListCommand creates the generic list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <resource> [filter...]",
		Short: "List records of a resource",
		Long: `List records of a resource with optional key=value filters.

All pages are fetched and merged unless an explicit page=N filter is given.
Examples:

  alfacrm list customer is_study=1
  alfacrm list lesson date_from=2026-01-01 date_to=2026-01-31
  alfacrm list subject page=0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			resource, err := client.Resource(args[0])
			if err != nil {
				return err
			}

			filter, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			result, err := resource.List(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("listing %s: %w", args[0], err)
			}

			return renderList(result)
		},
	}

	return cmd
}

// NewCreateCommand creates the generic create command
func NewCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <resource> [field...]",
		Short: "Create a record",
		Long: `Create a record from key=value fields.

Examples:

  alfacrm create customer name="Ivanov Ivan" legal_type=1 is_study=0
  alfacrm create subject name=Mathematics`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			resource, err := client.Resource(args[0])
			if err != nil {
				return err
			}

			attributes, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			record, err := resource.Create(cmd.Context(), attributes)
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}

			return renderRecord(record)
		},
	}
}

// NewUpdateCommand creates the generic update command
func NewUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <resource> <id> [field...]",
		Short: "Update a record",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID, err := strconv.Atoi(args[1])
			if err != nil {
				return ErrRecordIDRequired
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			resource, err := client.Resource(args[0])
			if err != nil {
				return err
			}

			attributes, err := parseParams(args[2:])
			if err != nil {
				return err
			}

			record, err := resource.Update(cmd.Context(), recordID, attributes)
			if err != nil {
				return fmt.Errorf("updating %s %d: %w", args[0], recordID, err)
			}

			return renderRecord(record)
		},
	}
}

// NewDeleteCommand creates the generic delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <resource> <id> [param...]",
		Short: "Delete a record",
		Long: `Delete a record by ID. Some resources require extra parameters,
passed as key=value and sent in the query string.

Examples:

  alfacrm delete subject 15
  alfacrm delete customer-tariff 8 customer_id=42`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID, err := strconv.Atoi(args[1])
			if err != nil {
				return ErrRecordIDRequired
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			resource, err := client.Resource(args[0])
			if err != nil {
				return err
			}

			extra, err := parseParams(args[2:])
			if err != nil {
				return err
			}

			record, err := resource.Delete(cmd.Context(), recordID, extra)
			if err != nil {
				return fmt.Errorf("deleting %s %d: %w", args[0], recordID, err)
			}

			return renderRecord(record)
		},
	}
}
