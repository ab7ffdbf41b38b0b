// Package commands implements the CLI subcommands.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/alfawave-io/alfacrm/internal/constants"
	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
	"github.com/alfawave-io/alfacrm/pkg/crmclient"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// Common static errors used throughout the commands package.
var (
	ErrHostnameRequired = errors.New("hostname is required (use --hostname, config, or ALFACRM_HOSTNAME)")
	ErrEmailRequired    = errors.New("email is required (use --email, config, or ALFACRM_EMAIL)")
	ErrAPIKeyRequired   = errors.New("api key is required (use --api-key, config, or ALFACRM_API_KEY)")
	ErrBranchIDRequired = errors.New("branch ID is required")
	ErrInvalidParam     = errors.New("invalid parameter, expected key=value")
	ErrResourceRequired = errors.New("resource name is required")
	ErrRecordIDRequired = errors.New("record ID is required")
	ErrAmountRequired   = errors.New("amount is required")
	ErrCustomerRequired = errors.New("customer ID is required")
)

// createClient builds an API client from viper configuration and selects the
// configured branch.
func createClient(ctx context.Context) (alfacrm.Client, error) {
	hostname := viper.GetString("hostname")
	if hostname == "" {
		return nil, ErrHostnameRequired
	}

	email := viper.GetString("email")
	if email == "" {
		return nil, ErrEmailRequired
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	config := &alfacrm.Config{
		Hostname: hostname,
		Email:    email,
		APIKey:   apiKey,
		Debug:    viper.GetBool("verbose"),
	}

	client, err := crmclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	if branch := viper.GetInt("branch"); branch != 0 {
		client.SetBranch(branch)
	}

	return client, nil
}

// parseParams converts key=value arguments into request parameters. Values
// that parse as JSON keep their JSON type, so is_study=1 becomes a number and
// teacher_ids=[1,2] a list; everything else stays a string.
func parseParams(args []string) (alfacrm.Params, error) {
	params := alfacrm.Params{}

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, arg)
		}

		var parsed interface{}
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			params[key] = parsed
		} else {
			params[key] = value
		}
	}

	return params, nil
}

// renderRecord prints a single record in the configured output format.
func renderRecord(record alfacrm.Record) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(record)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(record)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")

		for _, key := range sortedKeys(record) {
			_ = table.Append(key, formatValue(record[key]))
		}

		_ = table.Render()

		return nil
	}
}

// renderList prints a list result in the configured output format. Table
// columns are the union of the item fields, ID first.
func renderList(result *alfacrm.ListResult) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(result)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(result)
	default:
		if len(result.Items) == 0 {
			fmt.Println("No records found")

			return nil
		}

		columns := listColumns(result.Items)

		table := tablewriter.NewWriter(os.Stdout)
		headers := make([]interface{}, 0, len(columns))
		for _, column := range columns {
			headers = append(headers, column)
		}
		table.Header(headers...)

		for _, item := range result.Items {
			row := make([]interface{}, 0, len(columns))
			for _, column := range columns {
				row = append(row, formatValue(item[column]))
			}

			_ = table.Append(row...)
		}

		_ = table.Render()

		fmt.Printf("\nTotal: %d\n", result.Total)

		return nil
	}
}

func listColumns(items []alfacrm.Record) []string {
	seen := map[string]bool{}

	var columns []string

	for _, item := range items {
		for key := range item {
			if !seen[key] {
				seen[key] = true

				columns = append(columns, key)
			}
		}
	}

	sort.Strings(columns)

	// id leads when present
	for i, column := range columns {
		if column == "id" {
			copy(columns[1:i+1], columns[:i])
			columns[0] = "id"

			break
		}
	}

	return columns
}

func sortedKeys(record alfacrm.Record) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		if len(v) > constants.StringTruncationLength {
			return v[:constants.StringTruncationLength] + "..."
		}

		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case map[string]interface{}, []interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}

		return string(encoded)
	default:
		return fmt.Sprintf("%v", v)
	}
}
