package session

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginMessage authenticates an account against the storefront API
type LoginMessage struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (m LoginMessage) Type() string { return string(KindLogin) }

// Validate will run validation rules
func (m LoginMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(
			&m.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&m.Password,
			validation.Required,
		),
	)
}

// LoginResult is the login fulfilled payload
type LoginResult struct {
	Token  string
	User   User
	Claims *TokenClaims
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (m LoginMessage) execute(ctx context.Context, deps *commandDeps) (any, error) {
	var resp loginResponse
	if err := deps.transport.Post(ctx, "/api/auth/login", m, &resp); err != nil {
		return nil, err
	}

	// Side effects on fulfillment: persist the credential and install it on
	// the shared context so subsequent calls go out authenticated. Logout
	// clears the context again.
	if resp.Token != "" {
		if err := deps.tokens.Write(resp.Token); err != nil {
			deps.logger.Error("failed to persist session token: %v", err)
		}
		deps.credentials.Set(resp.Token)
	}

	return LoginResult{
		Token:  resp.Token,
		User:   resp.User,
		Claims: DecodeToken(resp.Token),
	}, nil
}
