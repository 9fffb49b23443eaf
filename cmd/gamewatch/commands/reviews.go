package commands

import (
	"fmt"
	"strings"

	"github.com/MrEthical07/gamewatch"
	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/session"
	"github.com/MrEthical07/gamewatch/view"
	"github.com/spf13/cobra"
)

func newReviewsCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and moderate game reviews",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := e.start(cmd.Context()); err != nil {
				return err
			}
			return e.visit(cmd.Context(), gamewatch.ReviewsPath)
		},
	}

	show := func(r *api.Review, err error) error {
		if err != nil {
			return err
		}
		printReview(e.out, r)
		return nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show GAME",
			Short: "Show the review of a game",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := e.app.Reviews().Find(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if r == nil {
					fmt.Fprintln(e.out, "Nenhuma review encontrada.")
					if e.app.Reviews().CanModerate() {
						fmt.Fprintln(e.out, "Use 'gamewatch reviews generate' ou 'gamewatch reviews write' para criar uma.")
					}
					return nil
				}
				return show(r, nil)
			},
		},
		&cobra.Command{
			Use:   "generate GAME",
			Short: "Generate a review with AI (admin)",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return show(e.app.Reviews().Generate(cmd.Context(), strings.Join(args, " ")))
			},
		},
		&cobra.Command{
			Use:   "write GAME TEXT",
			Short: "Write a review (admin)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return show(e.app.Reviews().Create(cmd.Context(), args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "edit ID TEXT",
			Short: "Replace the text of a review (admin)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return show(e.app.Reviews().Edit(cmd.Context(), args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a review (admin)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return e.app.Reviews().Delete(cmd.Context(), args[0])
			},
		},
	)
	return cmd
}

func newUsersCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users (super admin)",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := e.start(cmd.Context()); err != nil {
				return err
			}
			return e.visit(cmd.Context(), gamewatch.UsersPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := table(e.out)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tVERIFIED\tROLES\tACTION")
			for _, u := range e.app.Users().List() {
				action := "toggle-admin -> " + strings.Join(view.NextRoles(u), ",")
				if u.HasRole(session.RoleSuperAdmin) {
					action = view.MsgNoActionAvailable
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					u.ID, u.Name, u.Email, yesNo(u.EmailVerified), strings.Join(u.Roles, ","), action)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle-admin ID",
		Short: "Grant or revoke ADMIN for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.app.Users().ToggleAdmin(cmd.Context(), args[0])
		},
	})
	return cmd
}
