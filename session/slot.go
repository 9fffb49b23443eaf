package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// DefaultSlotKey is the key under which the session record is persisted.
const DefaultSlotKey = "authData"

// ErrSlotEmpty is returned by Slot.Load when nothing is persisted.
var ErrSlotEmpty = errors.New("session slot empty")

// ErrSlotUnavailable wraps failures of the storage behind a slot.
var ErrSlotUnavailable = errors.New("session slot unavailable")

// Slot is a single durable key-value cell holding the serialized session record.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Erase(ctx context.Context) error
}

// MemorySlot keeps the record in process memory. It is used by tests and by ephemeral
// clients that must not leave credentials on disk.
type MemorySlot struct {
	mu   sync.Mutex
	data []byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (m *MemorySlot) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemorySlot) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *MemorySlot) Erase(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

// FileSlot persists the record as a single file readable only by the current user.
type FileSlot struct {
	path string
	mu   sync.Mutex
}

// NewFileSlot returns a slot stored at path. Parent directories are created on Save.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// DefaultFilePath returns <user config dir>/gamewatch/<key>.json.
func DefaultFilePath(key string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if key == "" {
		key = DefaultSlotKey
	}
	return filepath.Join(dir, "gamewatch", key+".json"), nil
}

func (f *FileSlot) Path() string {
	return f.path
}

func (f *FileSlot) Load(context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	if len(data) == 0 {
		return nil, ErrSlotEmpty
	}
	return data, nil
}

// Save writes to a temporary file in the same directory and renames it over the slot.
func (f *FileSlot) Save(_ context.Context, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, ".authdata-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return nil
}

func (f *FileSlot) Erase(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return nil
}
