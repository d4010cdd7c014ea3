package session

import (
	"context"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"
)

// UpdateUserMessage applies a partial profile edit to an account
type UpdateUserMessage struct {
	UserID string    `json:"userId"`
	Patch  UserPatch `json:"userInfo"`
}

func (m UpdateUserMessage) Type() string { return string(KindUpdateUser) }

// Validate will run validation rules
func (m UpdateUserMessage) Validate() error {
	if m.Patch.IsEmpty() {
		return ErrEmptyPatch
	}
	return validation.ValidateStruct(&m,
		validation.Field(&m.UserID, validation.Required),
	)
}

// UserUpdated is the update fulfilled payload. User always carries the
// updated roster entry. Profile is only populated when the response wrapped
// the account in a {user} envelope; the reducer assigns the logged profile
// from it either way, so a bare-shaped response clears the profile. That
// mirrors the web client this replaces, see DESIGN.md before normalizing.
type UserUpdated struct {
	User    User
	Profile *User
}

func (m UpdateUserMessage) execute(ctx context.Context, deps *commandDeps) (any, error) {
	var raw json.RawMessage
	if err := deps.transport.Put(ctx, "/api/users/profile/"+m.UserID, m.Patch, &raw); err != nil {
		return nil, err
	}

	var envelope struct {
		User *User `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.User != nil {
		return UserUpdated{User: *envelope.User, Profile: envelope.User}, nil
	}

	var bare User
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, transportError(err, "/api/users/profile/"+m.UserID)
	}

	return UserUpdated{User: bare}, nil
}
