package view

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/notify"
	"github.com/shopspring/decimal"
)

func TestSearchIgnoresBlankQuery(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())

	games, err := NewGames(h.deps).Search(context.Background(), "   ", api.PlatformSteam)
	if games != nil || err != nil {
		t.Fatalf("expected nothing, got %v %v", games, err)
	}
	if h.count(http.MethodGet, "/games/steam") != 0 {
		t.Fatal("blank query must not reach the API")
	}
}

func TestSearchFailureNamesStore(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())
	h.mux.HandleFunc("GET /games/epic", reply(http.StatusBadGateway, ""))

	_, err := NewGames(h.deps).Search(context.Background(), "fortnite", api.PlatformEpic)
	if !Reported(err) {
		t.Fatalf("expected reported failure, got %v", err)
	}
	if h.notices.Count(notify.LevelError, "Ocorreu um erro ao buscar os jogos da Epic Games Store.") != 1 {
		t.Fatalf("unexpected notices %+v", h.notices.Notices())
	}
}

func TestAddToWishlist(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())

	var got api.WishlistGame
	added := false
	h.mux.HandleFunc("POST /wishlist", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		if added {
			w.WriteHeader(http.StatusConflict)
			return
		}
		added = true
	})

	v := NewGames(h.deps)
	game := api.Game{Identifier: "620", Title: "Portal 2", Platform: api.PlatformSteam, InitialPrice: decimal.NewFromInt(10)}

	if err := v.AddToWishlist(context.Background(), game); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.PlatformIdentifier != "620" || got.Platform != api.PlatformSteam {
		t.Fatalf("unexpected body %+v", got)
	}
	if h.notices.Count(notify.LevelSuccess, "Portal 2 foi adicionado à sua lista de desejos!") != 1 {
		t.Fatalf("unexpected notices %+v", h.notices.Notices())
	}

	err := v.AddToWishlist(context.Background(), game)
	if !errors.Is(err, ErrAlreadyWishlisted) {
		t.Fatalf("expected ErrAlreadyWishlisted, got %v", err)
	}
	if h.notices.Count(notify.LevelError, "Portal 2 já está na sua lista de desejos.") != 1 {
		t.Fatalf("unexpected notices %+v", h.notices.Notices())
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[string]string{
		"10":     "10,00",
		"5.5":    "5,50",
		"36.99":  "36,99",
		"0":      "0,00",
		"3.999":  "3,999",
		"12.340": "12,34",
	}
	for in, want := range cases {
		if got := FormatPrice(decimal.RequireFromString(in)); got != want {
			t.Fatalf("FormatPrice(%s) = %q, want %q", in, got, want)
		}
	}
}
