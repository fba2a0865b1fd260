package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront/model"
)

var errNotSignedIn = errors.New("not signed in")

func newAuthCmds(c *cli) []*cobra.Command {
	var creds model.LoginCredentials
	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Auth().Login(cmd.Context(), creds)
		},
	}
	login.Flags().StringVarP(&creds.Email, "email", "e", "", "account email")
	login.Flags().StringVarP(&creds.Password, "password", "p", "", "account password")
	_ = login.MarkFlagRequired("email")
	_ = login.MarkFlagRequired("password")

	var data model.RegisterData
	register := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Auth().Register(cmd.Context(), data)
		},
	}
	register.Flags().StringVar(&data.Name, "name", "", "first name")
	register.Flags().StringVar(&data.ApellidoPaterno, "paternal", "", "paternal surname")
	register.Flags().StringVar(&data.ApellidoMaterno, "maternal", "", "maternal surname")
	register.Flags().StringVarP(&data.Email, "email", "e", "", "account email")
	register.Flags().StringVarP(&data.Password, "password", "p", "", "account password")
	for _, name := range []string{"name", "paternal", "maternal", "email", "password"} {
		_ = register.MarkFlagRequired(name)
	}

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.app.Auth().Logout(cmd.Context())
			return nil
		},
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, ok := c.app.Auth().CurrentUser()
			if !ok {
				return errNotSignedIn
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s %s\t%s\t%s\n",
				user.ID, user.Name, user.ApellidoPaterno, user.Email, user.Role)
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the device and local storage health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.app.Config()
			health := "ok"
			if err := c.app.Healthcheck(cmd.Context()); err != nil {
				health = err.Error()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "device\t%s\nstorage\t%s\nhealth\t%s\n",
				c.app.DeviceID(), cfg.Storage, health)
			return nil
		},
	}

	return []*cobra.Command{login, register, logout, whoami, status}
}
