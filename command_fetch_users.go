package session

import "context"

// FetchUsersMessage retrieves the full administrator roster
type FetchUsersMessage struct{}

func (m FetchUsersMessage) Type() string { return string(KindFetchUsers) }

// Validate will run validation rules
func (m FetchUsersMessage) Validate() error { return nil }

// UserList is the fetch-all fulfilled payload, replacing the roster wholesale
type UserList []User

type fetchUsersResponse struct {
	Users []User `json:"users"`
}

func (m FetchUsersMessage) execute(ctx context.Context, deps *commandDeps) (any, error) {
	var resp fetchUsersResponse
	if err := deps.transport.Get(ctx, "/api/users/admin/getAllUsers", &resp); err != nil {
		return nil, err
	}

	users := resp.Users
	if users == nil {
		users = []User{}
	}

	return UserList(users), nil
}
