package router

import "sync"

// History is a browser-like stack of visited locations.
type History struct {
	mu      sync.Mutex
	entries []Location
	index   int
}

func NewHistory() *History {
	return &History{index: -1}
}

// Push appends loc after the current entry, dropping any forward entries.
func (h *History) Push(loc Location) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries[:h.index+1], loc)
	h.index = len(h.entries) - 1
}

// Replace overwrites the current entry, or pushes when History is empty.
func (h *History) Replace(loc Location) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index < 0 {
		h.entries = append(h.entries[:0], loc)
		h.index = 0
		return
	}
	h.entries[h.index] = loc
}

// Back moves to the previous entry. It reports false at the start of History.
func (h *History) Back() (Location, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index <= 0 {
		return Location{}, false
	}
	h.index--
	return h.entries[h.index], true
}

func (h *History) Current() (Location, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index < 0 {
		return Location{}, false
	}
	return h.entries[h.index], true
}

// Entries returns the stack up to and including the current entry.
func (h *History) Entries() []Location {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Location(nil), h.entries[:h.index+1]...)
}
