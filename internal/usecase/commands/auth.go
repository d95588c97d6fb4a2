package commands

//go:generate mockgen -source=auth.go -destination=../../testutil/mock/commandsmock/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/pkg/password"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	AccountID uuid.UUID
	Role      account.Role
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	// Login accepts a username or an email. Unknown logins and wrong passwords fail the same way.
	Login(ctx context.Context, login, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens shared.TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, tokens shared.TokenIssuer) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens}
}

func (a *authCommandsImpl) Login(ctx context.Context, login, pass string) (*LoginResult, error) {
	creds, err := auth.NewCredentials(login, pass)
	if err != nil {
		return nil, err
	}

	var acc *account.Account
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Accounts().FindByLogin(ctx, creds.Login())
		if err != nil {
			return orNotFound(err, auth.ErrInvalidCredentials)
		}
		acc = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := password.ComparePassword(acc.PasswordHash(), creds.Password()); err != nil {
		slog.WarnContext(ctx, "login rejected", "account_id", acc.ID())
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.GenerateToken(acc.ID(), acc.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{AccountID: acc.ID(), Role: acc.Role(), Token: token, ExpiresAt: expiresAt}, nil
}
