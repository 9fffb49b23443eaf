package gamewatch

import "github.com/MrEthical07/gamewatch/router"

const (
	WishlistPath = "/wishlist"
	ReviewsPath  = "/reviews"
	ProfilePath  = "/profile"
	UsersPath    = "/users"
	VerifyPath   = "/auth/verify"

	// ExpiredLoginPath is where an invalidated session is sent.
	ExpiredLoginPath = router.LoginPath + "?expired=true"
)

// DefaultRoutes is the route table of the application without Enter hooks. Unknown
// paths render the games search, which needs a session.
func DefaultRoutes() []router.Route {
	return []router.Route{
		{Pattern: router.HomePath, Name: "games", Mode: router.AuthenticatedOnly},
		{Pattern: WishlistPath, Name: "wishlist", Mode: router.AuthenticatedOnly},
		{Pattern: ReviewsPath, Name: "reviews", Mode: router.AuthenticatedOnly},
		{Pattern: ProfilePath, Name: "profile", Mode: router.AuthenticatedOnly},
		{Pattern: UsersPath, Name: "users", Mode: router.AuthenticatedOnly},
		{Pattern: VerifyPath, Name: "verify", Mode: router.AuthenticatedOnly},
		{Pattern: router.LoginPath, Name: "login", Mode: router.UnauthenticatedOnly},
		{Pattern: router.RegisterPath, Name: "register", Mode: router.UnauthenticatedOnly},
		{Pattern: router.Fallback, Name: "games", Mode: router.AuthenticatedOnly},
	}
}
