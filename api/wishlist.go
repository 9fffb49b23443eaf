package api

import (
	"context"
	"net/http"
)

// Wishlist lists the caller's wishlisted games with current prices.
func (c *Client) Wishlist(ctx context.Context, token string) ([]Game, error) {
	var out []Game
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/wishlist", Token: token}, &out)
	return out, err
}

// AddToWishlist adds game. A game already present is ErrConflict.
func (c *Client) AddToWishlist(ctx context.Context, token string, game WishlistGame) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/wishlist", Body: game, Token: token}, nil)
}

// RemoveFromWishlist removes game.
func (c *Client) RemoveFromWishlist(ctx context.Context, token string, game WishlistGame) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/wishlist", Body: game, Token: token}, nil)
}
