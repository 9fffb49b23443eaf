package commands

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MrEthical07/gamewatch"
	"github.com/MrEthical07/gamewatch/router"
	"github.com/MrEthical07/gamewatch/view"
	"github.com/spf13/cobra"
)

func newRegisterCommand(e *env) *cobra.Command {
	var form view.RegisterForm

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := e.visit(ctx, router.RegisterPath); err != nil {
				return err
			}
			form.Password = password(form.Password)
			return e.app.Auth().Register(ctx, form)
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "display name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password (or GAMEWATCH_PASSWORD)")
	return cmd
}

func newLoginCommand(e *env) *cobra.Command {
	var form view.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := e.visit(ctx, router.LoginPath); err != nil {
				return err
			}
			form.Password = password(form.Password)
			return e.app.Auth().Login(ctx, form)
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password (or GAMEWATCH_PASSWORD)")
	return cmd
}

func newLogoutCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e.app.Session().Logout(cmd.Context())
			fmt.Fprintln(e.out, "logged out")
			return nil
		},
	}
}

func newWhoamiCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, ok := e.app.Session().Current()
			if !ok {
				fmt.Fprintln(e.out, "anonymous")
				return nil
			}
			w := table(e.out)
			fmt.Fprintf(w, "name\t%s\n", rec.DisplayName)
			fmt.Fprintf(w, "email\t%s\n", rec.Email)
			fmt.Fprintf(w, "email verified\t%s\n", yesNo(rec.EmailVerified))
			fmt.Fprintf(w, "notifications\t%s\n", yesNo(rec.NotificationsEnabled))
			if len(rec.Roles) > 0 {
				fmt.Fprintf(w, "roles\t%s\n", strings.Join(rec.Roles, ", "))
			}
			return w.Flush()
		},
	}
}

func newVerifyCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "verify TOKEN",
		Short: "Confirm the email address with the token from the verification link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := gamewatch.VerifyPath + "?" + url.Values{"token": {args[0]}}.Encode()
			return e.visit(cmd.Context(), target)
		},
	}
}

func newNavCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "nav [PATH]",
		Short: "Visit a page and print the navigation bar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := router.HomePath
			if len(args) == 1 {
				target = args[0]
			}
			if _, err := e.app.Router().Navigate(cmd.Context(), target); err != nil {
				return err
			}
			for _, entry := range e.app.Menu() {
				mark := " "
				if entry.Active {
					mark = "*"
				}
				fmt.Fprintf(e.out, "%s %-20s %s\n", mark, entry.Label, entry.Path)
			}
			return nil
		},
	}
}
