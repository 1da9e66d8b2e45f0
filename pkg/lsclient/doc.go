// Package lsclient provides the entry point for constructing a Lemon Squeezy
// API client that implements the lemonsqueezy.Client interface.
//
// It wires configuration, the signed HTTP transport and the resource clients
// on top of the types defined in the lemonsqueezy package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
//	  "github.com/fivetwenty-io/lemonsqueezy/pkg/lsclient"
//	)
//
//	func example() {
//	  cli, err := lsclient.NewWithAPIKey(os.Getenv("LSQ_API_KEY"))
//	  if err != nil { log.Fatal(err) }
//
//	  orders, err := cli.Orders().List(context.Background(),
//	    lemonsqueezy.NewListOptions().WithPageSize(1, 25))
//	  if err != nil { log.Fatal(err) }
//
//	  for _, order := range orders.Data {
//	    log.Println(order.ID, order.Attributes.TotalFormatted)
//	  }
//	}
//
// # Errors
//
// API failures are returned as *lemonsqueezy.ResponseError. Bodies that match
// neither the expected document nor an error document are returned as
// *lemonsqueezy.UnknownError. Transport failures, including context
// cancellation, are returned wrapped with the operation name; use errors.Is
// and errors.As to inspect them.
package lsclient
