// Command storefront is a terminal client for the storefront API. It keeps
// the session, cart and selected store in a local store between runs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, c := newRootCmd()
	err := root.ExecuteContext(ctx)
	err = errors.Join(err, c.close())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
