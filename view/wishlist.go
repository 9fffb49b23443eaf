package view

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/router"
)

// Wishlist backs the wishlist page.
type Wishlist struct {
	base

	mu    sync.Mutex
	games []api.Game
}

func NewWishlist(d Deps) *Wishlist {
	v := &Wishlist{}
	v.init(d, "wishlist")
	return v
}

// Enter loads the wishlist when the page is shown.
func (v *Wishlist) Enter(ctx context.Context, _ router.Location) error {
	_, err := v.Load(ctx)
	return err
}

func (v *Wishlist) Load(ctx context.Context) ([]api.Game, error) {
	token, err := v.token()
	if err != nil {
		return nil, err
	}

	done := v.busy.begin()
	defer done()

	games, err := v.API.Wishlist(ctx, token)
	if err != nil {
		return nil, v.fail(err, MsgWishlistLoadFailed)
	}

	v.mu.Lock()
	v.games = games
	v.mu.Unlock()
	return slices.Clone(games), nil
}

// Games returns the games loaded so far.
func (v *Wishlist) Games() []api.Game {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]api.Game(nil), v.games...)
}

// Hint is the banner shown above a non-empty wishlist, or "".
func (v *Wishlist) Hint() string {
	rec, ok := v.Session.Current()
	if !ok {
		return ""
	}
	switch {
	case !rec.EmailVerified:
		return MsgVerifyForAlerts
	case !rec.NotificationsEnabled:
		return MsgEnableAlerts
	}
	return ""
}

// Remove drops game from the wishlist.
func (v *Wishlist) Remove(ctx context.Context, game api.Game) error {
	token, err := v.token()
	if err != nil {
		return err
	}

	done := v.busy.begin()
	defer done()

	err = v.API.RemoveFromWishlist(ctx, token, api.WishlistGame{
		PlatformIdentifier: game.Identifier,
		Platform:           game.Platform,
	})
	if err != nil {
		return v.fail(err, fmt.Sprintf(MsgWishlistRemoveFail, game.Title))
	}

	v.mu.Lock()
	v.games = slices.DeleteFunc(slices.Clone(v.games), func(g api.Game) bool {
		return g.Identifier == game.Identifier
	})
	v.mu.Unlock()

	v.Notify.Success(fmt.Sprintf(MsgWishlistRemoved, game.Title))
	return nil
}

// Find returns the loaded game with identifier id.
func (v *Wishlist) Find(id string) (api.Game, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, g := range v.games {
		if g.Identifier == id {
			return g, true
		}
	}
	return api.Game{}, false
}
