package session

// State is the single shared representation of who is logged in, the roster
// visible to an administrator, and the outcome of the last account operation.
// The store owns the canonical value, consumers only ever see snapshots.
type State struct {
	// Users is the administrator-visible roster, at most one entry per ID
	Users []User
	// LoggedIn and LoggedOut are independent flags. They are not enforced
	// mutually exclusive, see the design notes before merging them.
	LoggedIn  bool
	LoggedOut bool
	// IsLoading is true strictly while a command is in its pending phase
	IsLoading bool
	// Error holds the last normalized failure message. A later success does
	// not clear it.
	Error string
	// Message holds the last informational payload (e.g. password-reset
	// confirmation). Like Error, it survives unrelated operations.
	Message string
	// DecodedUser is derived once at store construction from the persisted
	// token, overwritten only by login and logout
	DecodedUser *TokenClaims
	// LoggedUser is the authenticated account's profile
	LoggedUser *User
	// UserRole caches the authenticated account's role
	UserRole Role
	// IsEditForm and PopUp are local UI toggles
	IsEditForm bool
	PopUp      bool
}

// clone returns a snapshot the caller can hold without aliasing the roster
// slice owned by the store
func (s State) clone() State {
	next := s
	if s.Users != nil {
		next.Users = make([]User, len(s.Users))
		copy(next.Users, s.Users)
	}
	if s.LoggedUser != nil {
		user := *s.LoggedUser
		next.LoggedUser = &user
	}
	return next
}

// FindUser returns the roster entry with the given id
func (s State) FindUser(id string) (User, bool) {
	for _, user := range s.Users {
		if user.ID == id {
			return user, true
		}
	}
	return User{}, false
}

// initialState builds the logged-out shape. The token codec runs eagerly,
// exactly once, before the store accepts any event.
func initialState(tokens TokenStore) State {
	var decoded *TokenClaims
	if tokens != nil {
		if raw, ok := tokens.Read(); ok {
			decoded = DecodeToken(raw)
		}
	}

	return State{
		Users:       []User{},
		DecodedUser: decoded,
	}
}
