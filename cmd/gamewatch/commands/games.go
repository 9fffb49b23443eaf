package commands

import (
	"fmt"
	"strings"

	"github.com/MrEthical07/gamewatch"
	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/router"
	"github.com/spf13/cobra"
)

func newGamesCommand(e *env) *cobra.Command {
	var (
		platform string
		add      string
	)

	cmd := &cobra.Command{
		Use:   "games QUERY",
		Short: "Search a store for games",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := api.ParsePlatform(platform)
			if err != nil {
				return err
			}
			if err := e.visit(ctx, router.HomePath); err != nil {
				return err
			}

			games, err := e.app.Games().Search(ctx, strings.Join(args, " "), p)
			if err != nil {
				return err
			}
			if add == "" {
				return printGames(e.out, games)
			}

			for _, g := range games {
				if g.Identifier == add {
					return e.app.Games().AddToWishlist(ctx, g)
				}
			}
			return fmt.Errorf("game %q not in the results", add)
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "steam", "store: steam or epic")
	cmd.Flags().StringVar(&add, "add", "", "add the result with this identifier to the wishlist")
	return cmd
}

func newWishlistCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show the wishlist",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := e.start(cmd.Context()); err != nil {
				return err
			}
			return e.visit(cmd.Context(), gamewatch.WishlistPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			wl := e.app.Wishlist()
			if games := wl.Games(); len(games) > 0 {
				if hint := wl.Hint(); hint != "" {
					fmt.Fprintln(e.out, hint)
				}
				return printGames(e.out, games)
			}
			fmt.Fprintln(e.out, "Sua lista de desejos está vazia.")
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "remove ID",
		Short: "Remove a game from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, ok := e.app.Wishlist().Find(args[0])
			if !ok {
				return fmt.Errorf("game %q not in the wishlist", args[0])
			}
			return e.app.Wishlist().Remove(cmd.Context(), game)
		},
	})
	return cmd
}
