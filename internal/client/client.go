// Package client provides the concrete branch-scoped API client.
package client

import (
	"fmt"
	"sync"
	"time"

	"github.com/alfawave-io/alfacrm/internal/auth"
	"github.com/alfawave-io/alfacrm/internal/constants"
	internalhttp "github.com/alfawave-io/alfacrm/internal/http"
	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
)

// Client implements alfacrm.Client. The branch selection is guarded so one
// client can be shared across goroutines.
type Client struct {
	config       *alfacrm.Config
	httpClient   *internalhttp.Client
	tokenManager auth.TokenManager
	registry     *alfacrm.Registry

	mu       sync.RWMutex
	branchID int

	cache    alfacrm.Cache
	cacheTTL time.Duration
}

// New creates a client from validated configuration. The baseURL must already
// be normalized to "https://host" form.
func New(baseURL string, config *alfacrm.Config) *Client {
	tokenManager := auth.NewLoginTokenManager(baseURL, config.Email, config.APIKey)

	opts := []internalhttp.Option{}
	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin == 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax == 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithHTTPTimeout(config.HTTPTimeout))
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = constants.DefaultCacheTTL
	}

	return &Client{
		config:       config,
		httpClient:   internalhttp.NewClient(baseURL, tokenManager, opts...),
		tokenManager: tokenManager,
		registry:     alfacrm.DefaultRegistry(),
		cache:        config.Cache,
		cacheTTL:     cacheTTL,
	}
}

// SetBranch selects the branch for subsequent branch-scoped calls.
func (c *Client) SetBranch(branchID int) {
	c.mu.Lock()
	c.branchID = branchID
	c.mu.Unlock()
}

// Branch reports the selected branch, zero when unset.
func (c *Client) Branch() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.branchID
}

// Resource returns the client for a registered resource.
func (c *Client) Resource(name string) (alfacrm.ResourceClient, error) {
	descriptor, err := c.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	return &resourceClient{parent: c, descriptor: descriptor}, nil
}

// Resources lists the registered resource names.
func (c *Client) Resources() []string {
	return c.registry.Names()
}

// mustResource backs the named accessors. Every name it is called with is
// registered by DefaultRegistry, so a failed lookup is a programming error.
func (c *Client) mustResource(name string) alfacrm.ResourceClient {
	resource, err := c.Resource(name)
	if err != nil {
		panic(fmt.Sprintf("client: resource %q not registered", name))
	}

	return resource
}

// Branches returns the branch resource client.
func (c *Client) Branches() alfacrm.ResourceClient { return c.mustResource("branch") }

// Customers returns the customer resource client.
func (c *Client) Customers() alfacrm.ResourceClient { return c.mustResource("customer") }

// CustomerGroups returns the client for a customer's group links.
func (c *Client) CustomerGroups() alfacrm.ResourceClient { return c.mustResource("customer-groups") }

// GroupCustomers returns the client for a group's customer links.
func (c *Client) GroupCustomers() alfacrm.ResourceClient { return c.mustResource("group-customers") }

// Communications returns the communication resource client.
func (c *Client) Communications() alfacrm.ResourceClient { return c.mustResource("communication") }

// CustomerTariffs returns the customer subscription resource client.
func (c *Client) CustomerTariffs() alfacrm.ResourceClient { return c.mustResource("customer-tariff") }

// Groups returns the group resource client.
func (c *Client) Groups() alfacrm.ResourceClient { return c.mustResource("group") }

// LeadRejects returns the lead rejection reason resource client.
func (c *Client) LeadRejects() alfacrm.ResourceClient { return c.mustResource("lead-reject") }

// Locations returns the location resource client.
func (c *Client) Locations() alfacrm.ResourceClient { return c.mustResource("location") }

// Rooms returns the room resource client.
func (c *Client) Rooms() alfacrm.ResourceClient { return c.mustResource("room") }

// Subjects returns the subject resource client.
func (c *Client) Subjects() alfacrm.ResourceClient { return c.mustResource("subject") }

// StudyStatuses returns the study status resource client.
func (c *Client) StudyStatuses() alfacrm.ResourceClient { return c.mustResource("study-status") }

// LeadStatuses returns the funnel stage resource client.
func (c *Client) LeadStatuses() alfacrm.ResourceClient { return c.mustResource("lead-status") }

// LeadSources returns the lead source resource client.
func (c *Client) LeadSources() alfacrm.ResourceClient { return c.mustResource("lead-source") }

// Pays returns the payment resource client.
func (c *Client) Pays() alfacrm.ResourceClient { return c.mustResource("pay") }

// Lessons returns the lesson resource client.
func (c *Client) Lessons() alfacrm.ResourceClient { return c.mustResource("lesson") }

// Bonuses returns the bonus resource client.
func (c *Client) Bonuses() alfacrm.ResourceClient { return c.mustResource("bonus") }

// Logs returns the change history resource client.
func (c *Client) Logs() alfacrm.ResourceClient { return c.mustResource("log") }

// RegularLessons returns the recurring lesson resource client.
func (c *Client) RegularLessons() alfacrm.ResourceClient { return c.mustResource("regular-lesson") }

// Tariffs returns the tariff resource client.
func (c *Client) Tariffs() alfacrm.ResourceClient { return c.mustResource("tariff") }

// Tasks returns the task resource client.
func (c *Client) Tasks() alfacrm.ResourceClient { return c.mustResource("task") }

// Teachers returns the teacher resource client.
func (c *Client) Teachers() alfacrm.ResourceClient { return c.mustResource("teacher") }

// TeacherRates returns the teacher rate resource client.
func (c *Client) TeacherRates() alfacrm.ResourceClient { return c.mustResource("teacher-rate") }

// WorkingHours returns the teacher schedule resource client.
func (c *Client) WorkingHours() alfacrm.ResourceClient { return c.mustResource("working-hours") }

var _ alfacrm.Client = (*Client)(nil)
