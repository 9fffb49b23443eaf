package router

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ErrInvalidLocation is returned for targets that are not in-app paths.
var ErrInvalidLocation = errors.New("invalid location")

// Location is an in-app path plus its query parameters.
type Location struct {
	Path  string
	Query url.Values
}

// ParseLocation accepts "/path?query". Absolute URLs are rejected.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{Path: HomePath}, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	if u.IsAbs() || u.Host != "" {
		return Location{}, fmt.Errorf("%w: %q is not an in-app path", ErrInvalidLocation, raw)
	}
	p := u.Path
	if p == "" {
		p = HomePath
	}
	if !strings.HasPrefix(p, "/") {
		return Location{}, fmt.Errorf("%w: %q must start with /", ErrInvalidLocation, raw)
	}
	return Location{Path: path.Clean(p), Query: u.Query()}, nil
}

// MustLocation is ParseLocation for constant targets.
func MustLocation(raw string) Location {
	loc, err := ParseLocation(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// Get returns the first value of key.
func (l Location) Get(key string) string {
	return l.Query.Get(key)
}

func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}
