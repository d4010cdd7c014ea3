package session

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// RegisterMessage creates a new storefront account
type RegisterMessage struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (m RegisterMessage) Type() string { return string(KindRegister) }

// Validate will validate the payload
func (m RegisterMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&m.Password, validation.Required, validation.Length(8, 100)),
	)
}

// MessageResult is the fulfilled payload for commands whose success is an
// informational message: register, forgot-password, reset-password
type MessageResult struct {
	Msg string `json:"msg"`
}

func (m RegisterMessage) execute(ctx context.Context, deps *commandDeps) (any, error) {
	var resp MessageResult
	if err := deps.transport.Post(ctx, "/api/auth/register", m, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
