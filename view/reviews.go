package view

import (
	"context"
	"errors"
	"strings"

	"github.com/MrEthical07/gamewatch/api"
)

// ErrNotAdmin is returned by review actions reserved to administrators.
var ErrNotAdmin = errors.New("admin role required")

// Reviews backs the reviews page. Anyone logged in can read and generate reviews;
// writing, editing and deleting need ADMIN or SUPER_ADMIN.
type Reviews struct {
	base
}

func NewReviews(d Deps) *Reviews {
	v := &Reviews{}
	v.init(d, "reviews")
	return v
}

// Find returns the review of gameName, or nil when the game has none.
func (v *Reviews) Find(ctx context.Context, gameName string) (*api.Review, error) {
	if strings.TrimSpace(gameName) == "" {
		return nil, nil
	}
	token, err := v.token()
	if err != nil {
		return nil, err
	}

	done := v.busy.begin()
	defer done()

	review, err := v.API.FindReview(ctx, token, gameName)
	if errors.Is(err, api.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, v.fail(err, MsgReviewFindFailed)
	}
	return &review, nil
}

// Generate asks the backend for a machine-written review.
func (v *Reviews) Generate(ctx context.Context, gameName string) (*api.Review, error) {
	if strings.TrimSpace(gameName) == "" {
		return nil, nil
	}
	token, err := v.token()
	if err != nil {
		return nil, err
	}

	done := v.busy.begin()
	defer done()

	review, err := v.API.GenerateReview(ctx, token, gameName)
	if err != nil {
		return nil, v.fail(err, MsgReviewGenerateFailed)
	}
	return &review, nil
}

// Create stores a review written by an administrator. Blank content is ignored.
func (v *Reviews) Create(ctx context.Context, gameName, content string) (*api.Review, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	token, err := v.adminToken()
	if err != nil {
		return nil, err
	}

	done := v.busy.begin()
	defer done()

	review, err := v.API.CreateReview(ctx, token, gameName, content)
	if err != nil {
		return nil, v.fail(err, MsgReviewCreateFailed)
	}
	v.Notify.Success(MsgReviewCreated)
	return &review, nil
}

// Edit replaces the content of review id. Blank content is ignored.
func (v *Reviews) Edit(ctx context.Context, id, content string) (*api.Review, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	token, err := v.adminToken()
	if err != nil {
		return nil, err
	}

	done := v.busy.begin()
	defer done()

	review, err := v.API.UpdateReview(ctx, token, id, content)
	if err != nil {
		return nil, v.fail(err, MsgReviewEditFailed)
	}
	v.Notify.Success(MsgReviewEdited)
	return &review, nil
}

// Delete removes review id.
func (v *Reviews) Delete(ctx context.Context, id string) error {
	token, err := v.adminToken()
	if err != nil {
		return err
	}

	done := v.busy.begin()
	defer done()

	if err := v.API.DeleteReview(ctx, token, id); err != nil {
		return v.fail(err, MsgReviewDeleteFailed)
	}
	v.Notify.Success(MsgReviewDeleted)
	return nil
}

// CanModerate reports whether the current user may write, edit and delete reviews.
func (v *Reviews) CanModerate() bool {
	rec, ok := v.Session.Current()
	return ok && rec.IsAdmin()
}

func (v *Reviews) adminToken() (string, error) {
	rec, ok := v.Session.Current()
	if !ok {
		return "", ErrNotAuthenticated
	}
	if !rec.IsAdmin() {
		return "", ErrNotAdmin
	}
	return rec.AuthToken, nil
}
