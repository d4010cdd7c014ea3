package session

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ResetPasswordMessage finalizes a recovery flow with the emailed reset code
type ResetPasswordMessage struct {
	Password  string `json:"password"`
	ResetCode string `json:"forgotPasswordCode"`
}

func (m ResetPasswordMessage) Type() string { return string(KindResetPassword) }

// Validate will run validation rules
func (m ResetPasswordMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&m.ResetCode, validation.Required),
	)
}

func (m ResetPasswordMessage) execute(ctx context.Context, deps *commandDeps) (any, error) {
	var resp MessageResult
	if err := deps.transport.Post(ctx, "/api/password/resetPassword", m, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
