package commands

import (
	"fmt"
	"strconv"

	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
	"github.com/spf13/cobra"
)

// NewBonusCommand creates the bonus command group
func NewBonusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bonus",
		Short: "Manage customer bonus points",
	}

	cmd.AddCommand(newBonusHistoryCommand())
	cmd.AddCommand(newBonusAddCommand())
	cmd.AddCommand(newBonusSpendCommand())

	return cmd
}

func newBonusHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <customer-id> [filter...]",
		Short: "Show bonus history for a customer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := strconv.Atoi(args[0])
			if err != nil {
				return ErrCustomerRequired
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			filter, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			filter["customer_id"] = customerID

			result, err := client.Bonuses().List(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("listing bonus history: %w", err)
			}

			return renderList(result)
		},
	}
}

func newBonusAddCommand() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "add <customer-id> <amount>",
		Short: "Add bonus points to a customer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBonusAction(cmd, args, "bonus-add", note)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Note attached to the operation")

	return cmd
}

func newBonusSpendCommand() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "spend <customer-id> <amount>",
		Short: "Spend bonus points of a customer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBonusAction(cmd, args, "bonus-spend", note)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Note attached to the operation")

	return cmd
}

func runBonusAction(cmd *cobra.Command, args []string, action, note string) error {
	customerID, err := strconv.Atoi(args[0])
	if err != nil {
		return ErrCustomerRequired
	}

	amount, err := strconv.Atoi(args[1])
	if err != nil || amount <= 0 {
		return ErrAmountRequired
	}

	client, err := createClient(cmd.Context())
	if err != nil {
		return err
	}

	body := alfacrm.Params{
		"customer_id": customerID,
		"amount":      amount,
	}
	if note != "" {
		body["note"] = note
	}

	record, err := client.Bonuses().Action(cmd.Context(), action, body)
	if err != nil {
		return fmt.Errorf("%s for customer %d: %w", action, customerID, err)
	}

	return renderRecord(record)
}
