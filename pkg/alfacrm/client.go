package alfacrm

import (
	"context"
	"time"
)

// ResourceClient exposes the operations of one API resource. Every call
// validates its input against the resource's declared schema before any
// network traffic happens.
type ResourceClient interface {
	// List fetches matching records. Unless the filter pins an explicit
	// "page", all pages are fetched and merged into one result.
	List(ctx context.Context, filter Params) (*ListResult, error)

	// Create adds a record and returns the server's representation of it.
	Create(ctx context.Context, attributes Params) (Record, error)

	// Update modifies the record with the given ID.
	Update(ctx context.Context, id int, attributes Params) (Record, error)

	// Delete removes the record with the given ID. Extra parameters some
	// resources require on deletion are passed through unvalidated.
	Delete(ctx context.Context, id int, extra Params) (Record, error)

	// Action invokes a custom action segment on the resource, such as
	// bonus-add or teach, with a raw request body.
	Action(ctx context.Context, action string, body Params) (Record, error)

	// Descriptor returns the resource's registration.
	Descriptor() *Descriptor
}

// Client is a branch-scoped API client. Resource accessors never fail; the
// returned clients report configuration problems on first use.
type Client interface {
	// SetBranch selects the branch whose data subsequent calls operate on.
	SetBranch(branchID int)

	// Branch reports the currently selected branch, zero when unset.
	Branch() int

	// Resource returns the client for any registered resource by name.
	Resource(name string) (ResourceClient, error)

	// Resources lists the registered resource names.
	Resources() []string

	Branches() ResourceClient
	Customers() ResourceClient
	CustomerGroups() ResourceClient
	GroupCustomers() ResourceClient
	Communications() ResourceClient
	CustomerTariffs() ResourceClient
	Groups() ResourceClient
	LeadRejects() ResourceClient
	Locations() ResourceClient
	Rooms() ResourceClient
	Subjects() ResourceClient
	StudyStatuses() ResourceClient
	LeadStatuses() ResourceClient
	LeadSources() ResourceClient
	Pays() ResourceClient
	Lessons() ResourceClient
	Bonuses() ResourceClient
	Logs() ResourceClient
	RegularLessons() ResourceClient
	Tariffs() ResourceClient
	Tasks() ResourceClient
	Teachers() ResourceClient
	TeacherRates() ResourceClient
	WorkingHours() ResourceClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds everything needed to build a Client.
//
// Hostname, Email, and APIKey are required. The hostname is normalized by
// trimming a trailing slash and adding "https://" when no scheme is present.
//
// Retries only cover transport-level failures. HTTP status codes are never
// retried automatically, with one exception handled separately: a 401 response
// triggers a single re-authentication and one repeat of the request.
type Config struct {
	// Hostname is the account's API host, e.g. "demo.s20.online".
	Hostname string

	// Email is the account email used for authentication.
	Email string

	// APIKey is the v2api key issued for the account.
	APIKey string

	// HTTPTimeout bounds each individual HTTP request. Zero means the
	// default request timeout.
	HTTPTimeout time.Duration

	// RetryMax is the number of transport-level retries. Zero disables them.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is set.
	Debug bool

	// Logger receives structured log output. Nil disables logging.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache, when set, stores index responses to spare repeat lookups of
	// slow-changing dictionaries. Nil disables caching.
	Cache Cache

	// CacheTTL bounds how long cached index responses stay fresh. Zero
	// means the default TTL.
	CacheTTL time.Duration
}
