package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func exerciseSlot(t *testing.T, slot Slot) {
	t.Helper()
	ctx := context.Background()

	if _, err := slot.Load(ctx); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected empty slot, got %v", err)
	}
	if err := slot.Save(ctx, []byte(`{"token":"t1"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := slot.Save(ctx, []byte(`{"token":"t2"}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := slot.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"token":"t2"}` {
		t.Fatalf("unexpected slot content %s", got)
	}
	if err := slot.Erase(ctx); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := slot.Erase(ctx); err != nil {
		t.Fatalf("second erase: %v", err)
	}
	if _, err := slot.Load(ctx); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected empty slot after erase, got %v", err)
	}
}

func TestMemorySlot(t *testing.T) {
	exerciseSlot(t, NewMemorySlot())
}

func TestFileSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "authData.json")
	exerciseSlot(t, NewFileSlot(path))
}

func TestFileSlotPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authData.json")
	slot := NewFileSlot(path)
	if err := slot.Save(context.Background(), []byte(`{"token":"t1"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600, got %o", perm)
	}
}

func newRedisSlotTest(t *testing.T) (*RedisSlot, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return NewRedisSlot(rdb, "gamewatch", DefaultSlotKey, 0), mr
}

func TestRedisSlot(t *testing.T) {
	slot, _ := newRedisSlotTest(t)
	exerciseSlot(t, slot)
}

func TestRedisSlotKeyAndTTL(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	slot := NewRedisSlot(rdb, "kiosk", "", time.Hour)
	if slot.Key() != "kiosk:authData" {
		t.Fatalf("unexpected key %q", slot.Key())
	}
	if err := slot.Save(context.Background(), []byte(`{"token":"t1"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ttl := mr.TTL("kiosk:authData"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}
}

func TestRedisSlotUnavailable(t *testing.T) {
	slot, mr := newRedisSlotTest(t)
	mr.Close()

	if _, err := slot.Load(context.Background()); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
}

func TestStoreRoundTripThroughRedis(t *testing.T) {
	slot, _ := newRedisSlotTest(t)
	ctx := context.Background()

	first := newTestStore(t, &fakeBackend{record: scenarioRecord()}, slot)
	if err := first.Login(ctx, "a@a.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	second := newTestStore(t, &fakeBackend{}, slot)
	if err := second.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	cur, ok := second.Current()
	if !ok || !cur.Equal(scenarioRecord()) {
		t.Fatalf("expected rehydrated record, got %+v ok=%v", cur, ok)
	}
}
