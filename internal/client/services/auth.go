// Package services contains the application services of the tourplanner
// client. They sit between the CLI and the API client, adding the local
// cache: token persistence, offline fallbacks and draft snapshots.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tourplanner/internal/client/api"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tourplanner/internal/common"
	"github.com/dmitrijs2005/tourplanner/internal/dbx"
	"github.com/dmitrijs2005/tourplanner/internal/logging"
)

// AuthService manages the API token pair.
//
// Contract:
//   - Login: exchange a refresh token for a fresh pair and persist it.
//   - Restore: load a persisted pair into the client without network access.
//   - Logout: forget the pair locally.
//   - OnTokens: persist a pair refreshed by the client in the background.
type AuthService interface {
	Login(ctx context.Context, refreshToken string) error
	Restore(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
	LoggedIn() bool
	OnTokens(t api.Tokens)
}

// TokenClient is the part of api.Client the auth service drives.
type TokenClient interface {
	SetTokens(t api.Tokens)
	Tokens() api.Tokens
	Refresh(ctx context.Context) error
}

type authService struct {
	client TokenClient
	db     *sql.DB
	logger logging.Logger
}

func NewAuthService(client TokenClient, db *sql.DB, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{client: client, db: db, logger: logger}
}

func (a *authService) Login(ctx context.Context, refreshToken string) error {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return common.ErrRefreshTokenMissing
	}

	a.client.SetTokens(api.Tokens{RefreshToken: refreshToken})
	if err := a.client.Refresh(ctx); err != nil {
		a.client.SetTokens(api.Tokens{})
		return fmt.Errorf("login error: %w", err)
	}
	if err := a.saveTokens(ctx, a.client.Tokens()); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}
	return nil
}

// saveTokens writes both tokens in a single transaction.
func (a *authService) saveTokens(ctx context.Context, t api.Tokens) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyAccessToken, []byte(t.AccessToken)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyRefreshToken, []byte(t.RefreshToken))
	})
}

func (a *authService) Restore(ctx context.Context) (bool, error) {
	repo := metadata.NewSQLiteRepository(a.db)
	refresh, err := repo.Get(ctx, metadata.KeyRefreshToken)
	if err != nil {
		return false, err
	}
	if len(refresh) == 0 {
		return false, nil
	}
	access, err := repo.Get(ctx, metadata.KeyAccessToken)
	if err != nil {
		return false, err
	}
	a.client.SetTokens(api.Tokens{AccessToken: string(access), RefreshToken: string(refresh)})
	return true, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetTokens(api.Tokens{})
	return metadata.NewSQLiteRepository(a.db).Delete(ctx, metadata.KeyAccessToken, metadata.KeyRefreshToken)
}

func (a *authService) LoggedIn() bool {
	return a.client.Tokens().RefreshToken != ""
}

func (a *authService) OnTokens(t api.Tokens) {
	ctx := context.Background()
	if err := a.saveTokens(ctx, t); err != nil {
		a.logger.Error(ctx, "failed to persist refreshed tokens", "error", err)
	}
}
