package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCartCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := c.app.Cart().Items()
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL")
			for _, it := range items {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
					it.Product.ID, it.Product.Name, it.Quantity,
					it.Product.Price.StringFixed(2), it.Subtotal().StringFixed(2))
			}
			fmt.Fprintf(w, "\t\t%d\t\t%s\n", c.app.Cart().TotalItems(), c.app.Cart().TotalAmount().StringFixed(2))
			return w.Flush()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <product-id> [quantity]",
			Short: "Add a product",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				qty := 1
				if len(args) == 2 {
					if qty, err = strconv.Atoi(args[1]); err != nil {
						return fmt.Errorf("invalid quantity %q", args[1])
					}
				}
				var storeID *int64
				if sel, ok := c.app.Stores().SelectedStoreID(); ok {
					storeID = &sel
				}
				product, err := c.app.Products().Get(cmd.Context(), id, storeID, false)
				if err != nil {
					return err
				}
				return c.app.Cart().Add(cmd.Context(), product, qty)
			},
		},
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Remove a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return c.app.Cart().Remove(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "set-qty <product-id> <quantity>",
			Short: "Change a quantity; zero removes the line",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				qty, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid quantity %q", args[1])
				}
				return c.app.Cart().UpdateQuantity(cmd.Context(), id, qty)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Cart().Clear(cmd.Context())
			},
		},
	)
	return cmd
}
