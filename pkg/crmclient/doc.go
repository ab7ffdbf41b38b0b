// Package crmclient provides the primary entry point for constructing an
// ALFA CRM v2api client that implements the alfacrm.Client interface.
//
// It layers hostname normalization, HTTP transport, and token-based
// authentication on top of the resource catalog and types defined in the
// alfacrm package. Most applications should import crmclient to build a
// client, then use the returned alfacrm.Client to access resource-specific
// clients, for example Customers(), Lessons(), Pays(), etc.
//
// Quick start
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
//
//	  cli, err := crmclient.New(ctx, &alfacrm.Config{
//	    Hostname: "demo.s20.online",
//	    Email:    "admin@example.com",
//	    APIKey:   "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Most resources are branch-scoped; select a branch first.
//	  cli.SetBranch(1)
//
//	  customers, err := cli.Customers().List(ctx, alfacrm.Params{"is_study": 1})
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Helpers
//
// The package also provides the convenience constructor NewWithCredentials
// that wraps New with the appropriate configuration.
package crmclient
