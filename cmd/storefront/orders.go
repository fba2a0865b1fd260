package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront/core/pagination"
	"github.com/dmitrymomot/storefront/model"
	"github.com/dmitrymomot/storefront/orders"
)

func newOrdersCmd(c *cli) *cobra.Command {
	var (
		pf       pageFlags
		status   string
		store    int64
		user     int64
		from, to string
	)
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders; customers only see their own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := orders.Filter{Status: status, SearchTerm: pf.search, StoreID: store, UserID: user}
			var err error
			if filter.StartDate, err = parseDate(from); err != nil {
				return err
			}
			if filter.EndDate, err = parseDate(to); err != nil {
				return err
			}

			list := c.app.OrderList(append(pf.options(), pagination.WithFilter(filter))...)
			defer list.Close()

			state := list.Fetch(cmd.Context())
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tDATE\tSTORE\tCUSTOMER\tTOTAL\tSTATUS")
			for _, o := range state.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					o.ID, o.CreatedAt.Format(time.DateOnly), o.StoreName, o.UserName, o.Total.StringFixed(2), o.Status)
			}
			return footer(w, state.CurrentPage, state.TotalPages, state.TotalItems, state.Err)
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&status, "status", orders.StatusAll, "pending, processing, shipped, delivered, cancelled or all")
	cmd.Flags().Int64Var(&store, "store", 0, "store id")
	cmd.Flags().Int64Var(&user, "user", 0, "user id (admins only)")
	cmd.Flags().StringVar(&from, "from", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "end date, YYYY-MM-DD")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				o, err := c.app.Orders().Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				w := table(cmd.OutOrStdout())
				fmt.Fprintf(w, "ORDER\t%d\nSTATUS\t%s\nSTORE\t%s\nTOTAL\t%s\n", o.ID, o.Status, o.StoreName, o.Total.StringFixed(2))
				for _, it := range o.Items {
					fmt.Fprintf(w, "  %s\t%d x %s\n", it.ProductName, it.Quantity, it.UnitPrice.StringFixed(2))
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "set-status <id> <status>",
			Short: "Change an order's status",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				o, err := c.app.Orders().UpdateStatus(cmd.Context(), id, model.OrderStatus(args[1]))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "order %d is %s\n", o.ID, o.Status)
				return nil
			},
		},
	)
	return cmd
}

func newCheckoutCmd(c *cli) *cobra.Command {
	var store int64
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart in the selected store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if store == 0 {
				sel, ok := c.app.Stores().SelectedStoreID()
				if !ok {
					return errors.New("no store selected; use --store or 'stores select'")
				}
				store = sel
			}
			order, err := c.app.Checkout().Checkout(cmd.Context(), store)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %d placed, total %s\n", order.ID, order.Total.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().Int64Var(&store, "store", 0, "store id (defaults to the selected store)")
	return cmd
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}
