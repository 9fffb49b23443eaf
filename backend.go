package gamewatch

import (
	"context"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/session"
)

// authBackend lets the session store talk to the auth endpoints.
type authBackend struct {
	client *api.Client
}

func (b authBackend) Register(ctx context.Context, name, email, password string) error {
	return b.client.Register(ctx, name, email, password)
}

func (b authBackend) Login(ctx context.Context, email, password string) (session.Record, error) {
	data, err := b.client.Login(ctx, email, password)
	if err != nil {
		return session.Record{}, err
	}
	return recordFromAuth(data), nil
}

func recordFromAuth(d api.AuthData) session.Record {
	return session.Record{
		DisplayName:          d.Name,
		Email:                d.Email,
		AuthToken:            d.Token,
		EmailVerified:        d.EmailVerified,
		NotificationsEnabled: d.NotificationsEnabled,
		Roles:                session.NewRoles(d.Roles...),
	}
}
