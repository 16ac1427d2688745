package commands

import (
	"context"

	"hall-booking/internal/pkg/config"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/pkg/jwt"
	"hall-booking/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (string, error)
}

// authCommandsImpl authenticates the single back-office operator whose
// credentials come from configuration, not a user table.
type authCommandsImpl struct {
	operator config.OperatorConfig
	jwt      *jwt.Service
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		operator: cfg.Operator,
		jwt:      jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, email, plainPassword string) (string, error) {
	if email != a.operator.Email {
		return "", ErrInvalidCredentials
	}
	if err := password.Compare(a.operator.PasswordHash, plainPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(email)
	if err != nil {
		return "", errs.Wrap(err, "failed to sign token")
	}
	return token, nil
}
