package session

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
)

// DeleteUserMessage removes an account from the roster (admin only)
type DeleteUserMessage struct {
	UserID string `json:"userId"`
}

func (m DeleteUserMessage) Type() string { return string(KindDeleteUser) }

// Validate will run validation rules
func (m DeleteUserMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.UserID, validation.Required),
	)
}

// DeletedUser is the delete fulfilled payload: the removed id echoed back,
// the API sends no body worth keeping
type DeletedUser string

func (m DeleteUserMessage) execute(ctx context.Context, deps *commandDeps) (any, error) {
	if err := deps.transport.Delete(ctx, "/api/users/admin/deleteUser/"+m.UserID); err != nil {
		return nil, err
	}
	return DeletedUser(m.UserID), nil
}
