package commands

import (
	"errors"
	"fmt"

	"github.com/MrEthical07/gamewatch"
	"github.com/MrEthical07/gamewatch/view"
	"github.com/spf13/cobra"
)

var errNotConfirmed = errors.New("refusing to delete the account without --yes")

func newProfileCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the account",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := e.start(cmd.Context()); err != nil {
				return err
			}
			return e.visit(cmd.Context(), gamewatch.ProfilePath)
		},
	}

	cmd.AddCommand(
		newProfileUpdateCommand(e),
		newProfilePasswordCommand(e),
		newProfileNotificationsCommand(e),
		newProfileVerifyCommand(e),
		newProfileSearchesCommand(e),
		newProfileDeleteCommand(e),
	)
	return cmd
}

func newProfileUpdateCommand(e *env) *cobra.Command {
	var form view.DetailsForm

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change name and email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, _ := e.app.Session().Current()
			if form.Name == "" {
				form.Name = rec.DisplayName
			}
			if form.Email == "" {
				form.Email = rec.Email
			}
			return e.app.Profile().UpdateDetails(cmd.Context(), form)
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "new display name")
	cmd.Flags().StringVar(&form.Email, "email", "", "new email address")
	return cmd
}

func newProfilePasswordCommand(e *env) *cobra.Command {
	var form view.PasswordForm

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.app.Profile().ChangePassword(cmd.Context(), form)
		},
	}

	cmd.Flags().StringVar(&form.CurrentPassword, "current", "", "current password")
	cmd.Flags().StringVar(&form.NewPassword, "new", "", "new password")
	return cmd
}

func newProfileNotificationsCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Toggle price alert emails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.app.Profile().ToggleNotifications(cmd.Context())
		},
	}
}

func newProfileVerifyCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "request-verification",
		Short: "Send the email verification link again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.app.Profile().RequestVerification(cmd.Context())
		},
	}
}

func newProfileSearchesCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "searches",
		Short: "List past game searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			searches, err := e.app.Profile().SearchHistory(cmd.Context())
			if err != nil {
				return err
			}
			tw := table(e.out)
			fmt.Fprintln(tw, "GAME\tPLATFORM\tDATE")
			for _, s := range searches {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.GameName, s.Platform.Label(), view.FormatDate(s.Date))
			}
			return tw.Flush()
		},
	}
}

func newProfileDeleteCommand(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			return e.app.Profile().DeleteAccount(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}
