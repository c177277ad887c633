package auth

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator verifica usuario/contraseña y devuelve el principal o error.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (Principal, error)
}
