// Package alfacrm provides types, interfaces, and helpers for working with
// the ALFA CRM v2api.
//
// # Overview
//
// The alfacrm package defines the resource catalog (customers, teachers,
// lessons, pays, groups, and the rest), the input schemas guarding each
// operation, the error taxonomy, and the interfaces for branch-scoped
// resource clients. A concrete implementation is provided by the crmclient
// package, which wires configuration, transport, and authentication. Most
// consumers should import crmclient to construct a client and then interact
// with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/alfawave-io/alfacrm/pkg/alfacrm"
//	  "github.com/alfawave-io/alfacrm/pkg/crmclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := crmclient.New(ctx, &alfacrm.Config{
//	    Hostname: "demo.s20.online",
//	    Email:    "admin@example.com",
//	    APIKey:   "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  cli.SetBranch(1)
//
//	  customers, err := cli.Customers().List(ctx, alfacrm.Params{"is_study": 1})
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Validation
//
// Every operation input is checked against the resource's declared schema
// before any request is sent. Violations are collected into a ValidationError
// listing each offending field. Date fields are normalized to the wire format
// the API expects for that particular field, which varies between resources.
//
// # Pagination
//
// List fetches every page of a result set and merges them, unless the filter
// pins an explicit "page" value, in which case only that page is requested.
//
// # Errors
//
// API failures are mapped onto a small taxonomy: AuthenticationError,
// AccessDeniedError, NotFoundError, RateLimitError, and APIError for anything
// else the server reports, plus ConnectionError for transport failures and
// ValidationError and MissingBranchError for problems caught locally. Helpers
// such as IsNotFound and IsValidation make it easy to branch on them.
//
// # Caching
//
// A pluggable Cache abstraction can hold index responses of slow-changing
// dictionaries. Memory and NATS KV backends are provided, and CacheChain
// composes them into tiers.
package alfacrm
