package router

import "fmt"

// Mode is the session requirement of a route.
type Mode int

const (
	// AuthenticatedOnly routes need a session; anonymous visitors go to LoginPath.
	AuthenticatedOnly Mode = iota + 1
	// UnauthenticatedOnly routes are for anonymous visitors; logged-in users go to HomePath.
	UnauthenticatedOnly
)

const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"
	HomePath     = "/"
)

func (m Mode) String() string {
	switch m {
	case AuthenticatedOnly:
		return "authenticated_only"
	case UnauthenticatedOnly:
		return "unauthenticated_only"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func (m Mode) valid() bool {
	return m == AuthenticatedOnly || m == UnauthenticatedOnly
}

// Decision is the outcome of the guard. Redirect is set iff Allow is false.
type Decision struct {
	Allow    bool
	Redirect string
}

// Decide is the guard truth table. An unknown mode is treated as AuthenticatedOnly.
func Decide(mode Mode, authenticated bool) Decision {
	if mode == UnauthenticatedOnly {
		if authenticated {
			return Decision{Redirect: HomePath}
		}
		return Decision{Allow: true}
	}
	if !authenticated {
		return Decision{Redirect: LoginPath}
	}
	return Decision{Allow: true}
}
