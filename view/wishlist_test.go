package view

import (
	"context"
	"net/http"
	"testing"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/notify"
	"github.com/MrEthical07/gamewatch/router"
)

func TestWishlistEnterAndRemove(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())
	h.mux.HandleFunc("GET /wishlist", reply(http.StatusOK,
		`[{"identifier":"620","title":"Portal 2","platform":"STEAM","initialPrice":36.99,"discountPrice":36.99},
		  {"identifier":"abc","title":"Alan Wake 2","platform":"EPIC","initialPrice":199.9,"discountPrice":99.95,"discountPercent":50}]`))
	h.mux.HandleFunc("DELETE /wishlist", reply(http.StatusOK, "Game successfully removed from the wishlist."))

	v := NewWishlist(h.deps)
	if err := v.Enter(context.Background(), router.MustLocation("/wishlist")); err != nil {
		t.Fatalf("enter: %v", err)
	}
	if len(v.Games()) != 2 {
		t.Fatalf("expected 2 games, got %d", len(v.Games()))
	}
	if v.Hint() != MsgVerifyForAlerts {
		t.Fatalf("unexpected hint %q", v.Hint())
	}

	game, ok := v.Find("abc")
	if !ok {
		t.Fatal("expected to find abc")
	}
	if err := v.Remove(context.Background(), game); err != nil {
		t.Fatalf("remove: %v", err)
	}
	games := v.Games()
	if len(games) != 1 || games[0].Identifier != "620" {
		t.Fatalf("unexpected remaining games %+v", games)
	}
	if h.notices.Count(notify.LevelSuccess, "Alan Wake 2 foi removido da sua lista de desejos.") != 1 {
		t.Fatalf("unexpected notices %+v", h.notices.Notices())
	}
}

func TestWishlistRemoveLeavesLoadedSliceAlone(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())
	h.mux.HandleFunc("GET /wishlist", reply(http.StatusOK,
		`[{"identifier":"620","title":"Portal 2","platform":"STEAM"},{"identifier":"abc","title":"Alan Wake 2","platform":"EPIC"}]`))
	h.mux.HandleFunc("DELETE /wishlist", reply(http.StatusOK, ""))

	v := NewWishlist(h.deps)
	loaded, err := v.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := v.Remove(context.Background(), loaded[0]); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if len(loaded) != 2 || loaded[0].Identifier != "620" || loaded[1].Identifier != "abc" {
		t.Fatalf("loaded slice changed under the caller: %+v", loaded)
	}
	if games := v.Games(); len(games) != 1 || games[0].Identifier != "abc" {
		t.Fatalf("unexpected remaining games %+v", games)
	}
}

func TestWishlistRemoveFailureKeepsGame(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())
	h.mux.HandleFunc("GET /wishlist", reply(http.StatusOK, `[{"identifier":"620","title":"Portal 2","platform":"STEAM"}]`))
	h.mux.HandleFunc("DELETE /wishlist", reply(http.StatusInternalServerError, ""))

	v := NewWishlist(h.deps)
	if _, err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	err := v.Remove(context.Background(), api.Game{Identifier: "620", Title: "Portal 2", Platform: api.PlatformSteam})
	if !Reported(err) || len(v.Games()) != 1 {
		t.Fatalf("expected failure with game kept, got %v %+v", err, v.Games())
	}
	if h.notices.Count(notify.LevelError, "Ocorreu um erro ao remover Portal 2 da sua lista de desejos.") != 1 {
		t.Fatalf("unexpected notices %+v", h.notices.Notices())
	}
}
