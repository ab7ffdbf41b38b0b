package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Token lifecycle.
const (
	// TokenTTL is how long an issued API token stays valid.
	TokenTTL = 3600 * time.Second

	// TokenExpirySafetyMargin is subtracted from TokenTTL so a token is
	// renewed before the server-side expiry can race an in-flight request.
	TokenExpirySafetyMargin = 100 * time.Second
)

// Retry limits. Retries apply to transport-level failures only; HTTP status
// codes are never retried automatically.
const (
	// DefaultRetryMax disables transport retries unless configured.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API layout.
const (
	// APIPrefix is the fixed first path segment of every endpoint.
	APIPrefix = "v2api"

	// AuthLoginPath is the authentication endpoint, never branch-scoped.
	AuthLoginPath = "/v2api/auth/login"

	// TokenHeader carries the session token on every authenticated request.
	TokenHeader = "X-ALFACRM-TOKEN"
)

// Cache sizing.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Display limits.
const (
	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 80

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)
