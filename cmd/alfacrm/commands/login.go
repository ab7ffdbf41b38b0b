package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		hostname string
		email    string
		apiKey   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to ALFA CRM",
		Long:  "Verify account credentials against the API and store them in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if hostname == "" {
				hostname = viper.GetString("hostname")
			}

			if hostname == "" {
				fmt.Print("Hostname (e.g. demo.s20.online): ")
				hostname, _ = reader.ReadString('\n')
				hostname = strings.TrimSpace(hostname)
			}

			if hostname == "" {
				return ErrHostnameRequired
			}

			if email == "" {
				email = viper.GetString("email")
			}

			if email == "" {
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if email == "" {
				return ErrEmailRequired
			}

			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(byteKey)

				fmt.Println()
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			viper.Set("hostname", hostname)
			viper.Set("email", email)
			viper.Set("api_key", apiKey)

			// Verify the credentials with a cheap branch listing; the
			// branch resource is the only one that is not branch-scoped.
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			branches, err := client.Branches().List(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			err = saveConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Logged in to %s (%d branches visible)\n", hostname, branches.Total)

			return nil
		},
	}

	cmd.Flags().StringVar(&hostname, "hostname", "", "account hostname")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "v2api key")

	return cmd
}
