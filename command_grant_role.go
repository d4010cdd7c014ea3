package session

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
)

// GrantRoleMessage changes an account's role (admin only)
type GrantRoleMessage struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

func (m GrantRoleMessage) Type() string { return string(KindGrantRole) }

// Validate will run validation rules
func (m GrantRoleMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.UserID, validation.Required),
		validation.Field(&m.Role, validation.Required, validation.In(RoleUser, RoleAdmin)),
	)
}

// RoleGranted is the grant-role fulfilled payload carrying the updated entry
type RoleGranted struct {
	User User
}

type grantRoleResponse struct {
	User User `json:"user"`
}

func (m GrantRoleMessage) execute(ctx context.Context, deps *commandDeps) (any, error) {
	var resp grantRoleResponse
	if err := deps.transport.Put(ctx, "/api/users/admin/role", m, &resp); err != nil {
		return nil, err
	}
	return RoleGranted{User: resp.User}, nil
}
