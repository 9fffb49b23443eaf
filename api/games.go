package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

type gameNameQuery struct {
	GameName string `url:"gameName"`
}

type createReviewBody struct {
	GameName string `json:"gameName"`
	Review   string `json:"review"`
}

type updateReviewBody struct {
	Review string `json:"review"`
}

// SearchGames looks name up on platform.
func (c *Client) SearchGames(ctx context.Context, token string, platform Platform, name string) ([]Game, error) {
	if _, err := ParsePlatform(string(platform)); err != nil {
		return nil, err
	}
	var out []Game
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/games/" + platform.segment(),
		Query:  gameNameQuery{GameName: name},
		Token:  token,
	}, &out)
	return out, err
}

// FindReview fetches the stored review for a game. A missing review is ErrNotFound.
func (c *Client) FindReview(ctx context.Context, token, gameName string) (Review, error) {
	var out Review
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/games/review",
		Query:  gameNameQuery{GameName: gameName},
		Token:  token,
	}, &out)
	return out, err
}

// GenerateReview asks the backend to produce a review with its language model.
func (c *Client) GenerateReview(ctx context.Context, token, gameName string) (Review, error) {
	var out Review
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/games/generate-review",
		Query:  gameNameQuery{GameName: gameName},
		Body:   struct{}{},
		Token:  token,
	}, &out)
	return out, err
}

// CreateReview stores a hand-written review. Admin only.
func (c *Client) CreateReview(ctx context.Context, token, gameName, content string) (Review, error) {
	var out Review
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/games/review",
		Body:   createReviewBody{GameName: gameName, Review: content},
		Token:  token,
	}, &out)
	return out, err
}

// UpdateReview replaces the content of review id. Admin only.
func (c *Client) UpdateReview(ctx context.Context, token, id, content string) (Review, error) {
	path, err := reviewPath(id)
	if err != nil {
		return Review{}, err
	}
	var out Review
	err = c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   updateReviewBody{Review: content},
		Token:  token,
	}, &out)
	return out, err
}

// DeleteReview removes review id. Admin only.
func (c *Client) DeleteReview(ctx context.Context, token, id string) error {
	path, err := reviewPath(id)
	if err != nil {
		return err
	}
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Token: token}, nil)
}

func reviewPath(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("api: invalid review id %q: %w", id, err)
	}
	return "/games/review/" + parsed.String(), nil
}
