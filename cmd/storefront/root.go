package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/core/config"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/notify"
)

type cli struct {
	app      *storefront.App
	printed  chan struct{}
	storage  string
	dbPath   string
	apiURL   string
	language string
	verbose  bool
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Terminal client for the storefront API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return c.open(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.storage, "storage", storefront.StorageSQLite, "local storage driver: memory, sqlite or redis")
	flags.StringVar(&c.dbPath, "db", "", "SQLite file (defaults to STOREFRONT_SQLITE_PATH)")
	flags.StringVar(&c.apiURL, "api", "", "API base URL (defaults to API_URL)")
	flags.StringVar(&c.language, "lang", "", "notification language: es or en")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newAuthCmds(c)...,
	)
	root.AddCommand(
		newProductsCmd(c),
		newCategoriesCmd(c),
		newStoresCmd(c),
		newOrdersCmd(c),
		newCartCmd(c),
		newCheckoutCmd(c),
	)
	return root, c
}

func (c *cli) open(cmd *cobra.Command) error {
	var cfg storefront.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("storage") || os.Getenv("STOREFRONT_STORAGE") == "" {
		cfg.Storage = c.storage
	}
	if c.dbPath != "" {
		cfg.SQLitePath = c.dbPath
	}
	if c.apiURL != "" {
		cfg.API.BaseURL = c.apiURL
	}
	if c.language != "" {
		cfg.Language = c.language
	}

	level := "error"
	if c.verbose {
		level = "debug"
	}
	log := logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevel(logger.ParseLevel(level)),
		logger.WithAttr(logger.Component("cli")),
	)

	app, err := storefront.New(cmd.Context(), cfg, storefront.WithLogger(log))
	if err != nil {
		return err
	}
	c.app = app

	c.printed = make(chan struct{})
	sub := app.Notifications().Subscribe(context.Background())
	go func() {
		defer close(c.printed)
		for msg := range sub.Receive(context.Background()) {
			printNotification(cmd.ErrOrStderr(), msg.Data)
		}
	}()

	return app.Bootstrap(cmd.Context())
}

// close releases the app and waits until every notification is printed.
func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	<-c.printed
	c.app = nil
	return err
}

func printNotification(w io.Writer, n notify.Notification) {
	if n.Description == "" {
		fmt.Fprintf(w, "[%s] %s\n", n.Kind, n.Title)
		return
	}
	fmt.Fprintf(w, "[%s] %s: %s\n", n.Kind, n.Title, n.Description)
}
