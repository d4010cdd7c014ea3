package session

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
)

// FetchUserMessage retrieves a single account by id
type FetchUserMessage struct {
	UserID string `json:"userId"`
}

func (m FetchUserMessage) Type() string { return string(KindFetchUser) }

// Validate will run validation rules
func (m FetchUserMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.UserID, validation.Required),
	)
}

// FetchedUser is the fetch-one fulfilled payload
type FetchedUser User

type fetchUserResponse struct {
	User User `json:"user"`
}

func (m FetchUserMessage) execute(ctx context.Context, deps *commandDeps) (any, error) {
	var resp fetchUserResponse
	if err := deps.transport.Get(ctx, "/api/users/"+m.UserID, &resp); err != nil {
		return nil, err
	}
	return FetchedUser(resp.User), nil
}
