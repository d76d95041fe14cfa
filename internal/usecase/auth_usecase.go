package usecase

import (
	"context"
	"errors"

	"skill-ledger/internal/pkg/jwt"
	"skill-ledger/internal/repository"
	ucauth "skill-ledger/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (repository.Account, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (repository.Account, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	accounts repository.AccountRepository
	jwt      jwt.Service
}

func NewAuthUsecase(accounts repository.AccountRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(accounts), accounts: accounts, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (repository.Account, string, string, error) {
	acc, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return repository.Account{}, "", "", err
	}
	return u.issueTokens(acc)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (repository.Account, string, string, error) {
	acc, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return repository.Account{}, "", "", err
	}
	return u.issueTokens(acc)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) || claims.TokenType != jwt.TokenTypeRefresh {
		return "", "", ErrInvalidRefreshToken
	}

	acc, err := u.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Principal)
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(acc.ID, acc.Principal)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, newRefresh, nil
}

func (u *Auth) issueTokens(acc repository.Account) (repository.Account, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Principal)
	if err != nil {
		return repository.Account{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(acc.ID, acc.Principal)
	if err != nil {
		return repository.Account{}, "", "", ErrInternal
	}
	return acc, access, refresh, nil
}
