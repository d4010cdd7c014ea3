package session

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// ForgotPasswordMessage starts a password recovery flow for the given email
type ForgotPasswordMessage struct {
	Email string `json:"email"`
}

func (m ForgotPasswordMessage) Type() string { return string(KindForgotPassword) }

// Validate will run validation rules
func (m ForgotPasswordMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Email, validation.Required, is.Email),
	)
}

func (m ForgotPasswordMessage) execute(ctx context.Context, deps *commandDeps) (any, error) {
	var resp MessageResult
	if err := deps.transport.Post(ctx, "/api/password/forgotPassword", m, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
