package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront/categories"
	"github.com/dmitrymomot/storefront/core/pagination"
	"github.com/dmitrymomot/storefront/model"
	"github.com/dmitrymomot/storefront/products"
	"github.com/dmitrymomot/storefront/stores"
)

type pageFlags struct {
	page     int
	limit    int
	search   string
	archived bool
}

func (p *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.page, "page", 1, "page number")
	cmd.Flags().IntVar(&p.limit, "limit", pagination.DefaultLimit, "items per page")
	cmd.Flags().StringVarP(&p.search, "search", "s", "", "search term")
	cmd.Flags().BoolVar(&p.archived, "archived", false, "include archived items")
}

func (p *pageFlags) options() []pagination.Option {
	return []pagination.Option{
		pagination.WithPage(p.page),
		pagination.WithLimit(p.limit),
	}
}

func newProductsCmd(c *cli) *cobra.Command {
	var (
		pf       pageFlags
		category int64
		store    int64
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products with stock in the selected store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := products.Filter{
				IncludeArchived: pf.archived,
				SearchTerm:      pf.search,
				CategoryID:      category,
				StoreID:         store,
			}
			list := c.app.ProductList(append(pf.options(), pagination.WithFilter(filter))...)
			defer list.Close()

			state := list.Fetch(cmd.Context())
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tSTATUS")
			for _, p := range state.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Price.StringFixed(2), stock(p), p.Status)
			}
			return footer(w, state.CurrentPage, state.TotalPages, state.TotalItems, state.Err)
		},
	}
	pf.register(cmd)
	cmd.Flags().Int64Var(&category, "category", 0, "category id")
	cmd.Flags().Int64Var(&store, "store", 0, "store id (defaults to the selected store)")
	cmd.AddCommand(newProductShowCmd(c))
	return cmd
}

func newProductShowCmd(c *cli) *cobra.Command {
	var admin bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var storeID *int64
			if sel, ok := c.app.Stores().SelectedStoreID(); ok && !admin {
				storeID = &sel
			}
			p, err := c.app.Products().Get(cmd.Context(), id, storeID, admin)
			if err != nil {
				return err
			}
			w := table(cmd.OutOrStdout())
			fmt.Fprintf(w, "ID\t%d\nNAME\t%s\nPRICE\t%s\nSKU\t%s\nCATEGORY\t%s\nSTOCK\t%s\n",
				p.ID, p.Name, p.Price.StringFixed(2), p.SKU, p.CategoryName, stock(p))
			for _, s := range p.StockByStore {
				fmt.Fprintf(w, "  %s\t%d\n", s.StoreName, s.Quantity)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&admin, "admin", false, "show stock for every store")
	return cmd
}

func newCategoriesCmd(c *cli) *cobra.Command {
	var pf pageFlags
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := categories.Filter{IncludeArchived: pf.archived, SearchTerm: pf.search}
			list := c.app.CategoryList(append(pf.options(), pagination.WithFilter(filter))...)
			defer list.Close()

			state := list.Fetch(cmd.Context())
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tSTATUS")
			for _, cat := range state.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\n", cat.ID, cat.Name, cat.Status)
			}
			return footer(w, state.CurrentPage, state.TotalPages, state.TotalItems, state.Err)
		},
	}
	pf.register(cmd)
	return cmd
}

func newStoresCmd(c *cli) *cobra.Command {
	var pf pageFlags
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "List stores; * marks the selected one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, _ := c.app.Auth().CurrentUser()
			filter := stores.Filter{IncludeArchived: pf.archived, SearchTerm: pf.search, IsAdmin: user.IsAdmin()}
			list := c.app.StoreList(append(pf.options(), pagination.WithFilter(filter))...)
			defer list.Close()

			state := list.Fetch(cmd.Context())
			selected, _ := c.app.Stores().SelectedStoreID()
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "\tID\tNAME\tSTATUS")
			for _, s := range state.Items {
				mark := ""
				if s.ID == selected {
					mark = "*"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", mark, s.ID, s.Name, s.Status)
			}
			return footer(w, state.CurrentPage, state.TotalPages, state.TotalItems, state.Err)
		},
	}
	pf.register(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "select <id|none>",
		Short: "Select the store used for stock and checkout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "none" {
				c.app.Stores().Select(cmd.Context(), nil)
				return nil
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c.app.Stores().Select(cmd.Context(), &id)
			return nil
		},
	})
	return cmd
}

func stock(p model.Product) string {
	if p.StockInSelectedStore != nil {
		return strconv.Itoa(*p.StockInSelectedStore)
	}
	return strconv.Itoa(p.TotalStock)
}

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func footer(w *tabwriter.Writer, page, pages, total int, errMsg string) error {
	if err := w.Flush(); err != nil {
		return err
	}
	if errMsg != "" {
		return errors.New(errMsg)
	}
	_, err := fmt.Fprintf(w, "page %d/%d, %d total\n", page, pages, total)
	if err != nil {
		return err
	}
	return w.Flush()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
