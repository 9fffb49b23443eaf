package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Platform is a storefront the backend can search.
type Platform string

const (
	PlatformSteam Platform = "STEAM"
	PlatformEpic  Platform = "EPIC"
)

// ParsePlatform accepts the wire name or the lower-case path segment.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STEAM":
		return PlatformSteam, nil
	case "EPIC":
		return PlatformEpic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// Label is the storefront name shown to users.
func (p Platform) Label() string {
	if p == PlatformEpic {
		return "Epic Games Store"
	}
	return "Steam"
}

func (p Platform) segment() string {
	return strings.ToLower(string(p))
}

// AuthData is the body of a successful login.
type AuthData struct {
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Token                string   `json:"token"`
	EmailVerified        bool     `json:"emailVerified"`
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	Roles                []string `json:"roles,omitempty"`
}

// Game is a search or wishlist entry. Prices are in BRL.
type Game struct {
	Identifier      string          `json:"identifier"`
	Title           string          `json:"title"`
	URL             string          `json:"url"`
	Image           string          `json:"image"`
	Platform        Platform        `json:"platform"`
	InitialPrice    decimal.Decimal `json:"initialPrice"`
	DiscountPrice   decimal.Decimal `json:"discountPrice"`
	DiscountPercent int             `json:"discountPercent"`
}

// Free reports whether the game has no price.
func (g Game) Free() bool {
	return g.InitialPrice.IsZero()
}

// Discounted reports whether the current price is below the original one.
func (g Game) Discounted() bool {
	return g.InitialPrice.GreaterThan(g.DiscountPrice)
}

// WishlistGame identifies a game on a platform for wishlist mutations.
type WishlistGame struct {
	PlatformIdentifier string   `json:"platformIdentifier"`
	Platform           Platform `json:"platform"`
}

// GameSearch is one entry of the user's search history.
type GameSearch struct {
	GameName string    `json:"gameName"`
	Platform Platform  `json:"platform"`
	Date     time.Time `json:"date"`
}

// Review is a game review, written by an admin or generated.
type Review struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	AIGenerated bool      `json:"aiGenerated"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Edited reports whether the review changed after creation.
func (r Review) Edited() bool {
	return !r.CreatedAt.Equal(r.UpdatedAt)
}

// User is a row of the admin user table.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	EmailVerified bool     `json:"emailVerified"`
	Roles         []string `json:"roles"`
}

// HasRole reports whether u carries role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
