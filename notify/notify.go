// Package notify delivers short user-facing messages, the toasts of the web client.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Level distinguishes success notices from failure notices.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier shows a message to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Notice is one delivered message.
type Notice struct {
	Level   Level
	Message string
}

// Console writes one line per notice.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Success(msg string) { c.write("✔", msg) }
func (c *Console) Error(msg string)   { c.write("✖", msg) }

func (c *Console) write(mark, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s %s\n", mark, msg)
}

// Recorder keeps every notice in memory.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *Recorder) Error(msg string)   { r.add(LevelError, msg) }

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Level: level, Message: msg})
}

// Notices returns a copy of everything recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Count returns how many times msg was recorded at level.
func (r *Recorder) Count(level Level, msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, notice := range r.notices {
		if notice.Level == level && notice.Message == msg {
			n++
		}
	}
	return n
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Multi fans a notice out to several notifiers.
type Multi []Notifier

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}
