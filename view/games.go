package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MrEthical07/gamewatch/api"
)

// ErrAlreadyWishlisted is returned when the game is already on the wishlist.
var ErrAlreadyWishlisted = errors.New("game already wishlisted")

// Games backs the game search page.
type Games struct {
	base

	mu       sync.Mutex
	query    string
	platform api.Platform
	results  []api.Game
}

func NewGames(d Deps) *Games {
	v := &Games{platform: api.PlatformSteam}
	v.init(d, "games")
	return v
}

// Search looks query up on platform. A blank query is ignored and returns nil.
func (v *Games) Search(ctx context.Context, query string, platform api.Platform) ([]api.Game, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	token, err := v.token()
	if err != nil {
		return nil, err
	}

	done := v.busy.begin()
	defer done()

	games, err := v.API.SearchGames(ctx, token, platform, query)
	if err != nil {
		return nil, v.fail(err, fmt.Sprintf(MsgGamesFailed, platform.Label()))
	}

	v.mu.Lock()
	v.query, v.platform, v.results = query, platform, games
	v.mu.Unlock()
	return games, nil
}

// Results returns the last successful search.
func (v *Games) Results() (query string, platform api.Platform, games []api.Game) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query, v.platform, append([]api.Game(nil), v.results...)
}

// AddToWishlist puts game on the wishlist.
func (v *Games) AddToWishlist(ctx context.Context, game api.Game) error {
	token, err := v.token()
	if err != nil {
		return err
	}

	platform := game.Platform
	if platform == "" {
		v.mu.Lock()
		platform = v.platform
		v.mu.Unlock()
	}

	done := v.busy.begin()
	defer done()

	err = v.API.AddToWishlist(ctx, token, api.WishlistGame{
		PlatformIdentifier: game.Identifier,
		Platform:           platform,
	})
	if err != nil {
		if errors.Is(err, api.ErrConflict) {
			return fmt.Errorf("%w: %w", ErrAlreadyWishlisted, v.reject(err, fmt.Sprintf(MsgWishlistDuplicate, game.Title)))
		}
		return v.fail(err, fmt.Sprintf(MsgWishlistAddFailed, game.Title))
	}

	v.Notify.Success(fmt.Sprintf(MsgWishlistAdded, game.Title))
	return nil
}
