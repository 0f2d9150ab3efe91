package cli

import (
	"context"
	"fmt"
	"strings"
)

// Login authenticates with a refresh token given as argument or typed at a
// hidden prompt.
func (a *App) Login(ctx context.Context, args []string) error {
	var token string
	if len(args) > 0 {
		token = args[0]
	} else {
		secret, err := a.src.ReadSecret("Refresh token: ")
		if err != nil {
			return err
		}
		token = strings.TrimSpace(string(secret))
	}
	return a.login(ctx, token)
}

func (a *App) login(ctx context.Context, token string) error {
	if err := a.authService.Login(ctx, token); err != nil {
		return err
	}
	a.logger.Info(ctx, "logged in")
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout forgets the tokens. The draft and the cache stay.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
